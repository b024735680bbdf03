package reporting

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
)

func TestWriteSubmissionsCSV(t *testing.T) {
	date := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("with location and checkbox answers", func(t *testing.T) {
		submissions := []surveyTypes.SubmissionView{
			{
				FormData: map[string]interface{}{
					"Status": "ok",
					"Tools":  []interface{}{"gps", "camera"},
				},
				Location: &surveyTypes.GeoLocation{Latitude: 48.2, Longitude: 16.37},
				Date:     date,
			},
			{
				FormData: map[string]interface{}{
					"Status": "blocked",
				},
				Date: date.AddDate(0, 0, 1),
			},
		}

		var buf bytes.Buffer
		if err := WriteSubmissionsCSV(&buf, submissions); err != nil {
			t.Fatal(err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 3 {
			t.Fatalf("unexpected record count: %d", len(records))
		}

		header := records[0]
		if header[0] != "date" || header[1] != "latitude" || header[2] != "longitude" {
			t.Errorf("unexpected header: %v", header)
		}

		statusCol := -1
		toolsCol := -1
		for i, col := range header {
			switch col {
			case "Status":
				statusCol = i
			case "Tools":
				toolsCol = i
			}
		}
		if statusCol < 0 || toolsCol < 0 {
			t.Fatalf("question columns missing: %v", header)
		}

		if records[1][statusCol] != "ok" {
			t.Errorf("unexpected status cell: %q", records[1][statusCol])
		}
		if records[1][toolsCol] != "gps; camera" {
			t.Errorf("unexpected tools cell: %q", records[1][toolsCol])
		}
		if records[1][1] != "48.2" {
			t.Errorf("unexpected latitude cell: %q", records[1][1])
		}

		// second row has no location and no Tools answer
		if records[2][1] != "" || records[2][2] != "" {
			t.Errorf("missing location should render empty cells: %v", records[2])
		}
		if records[2][toolsCol] != "" {
			t.Errorf("missing answer should render empty cell: %q", records[2][toolsCol])
		}
	})

	t.Run("column order is stable across runs", func(t *testing.T) {
		submissions := []surveyTypes.SubmissionView{
			{
				FormData: map[string]interface{}{
					"Zone":     "north",
					"Access":   "road",
					"Duration": 4,
					"Notes":    "dry season",
				},
				Date: date,
			},
			{
				FormData: map[string]interface{}{
					"Budget": 120,
				},
				Date: date,
			},
		}

		for i := 0; i < 20; i++ {
			var buf bytes.Buffer
			if err := WriteSubmissionsCSV(&buf, submissions); err != nil {
				t.Fatal(err)
			}
			records, err := csv.NewReader(&buf).ReadAll()
			if err != nil {
				t.Fatal(err)
			}
			want := []string{"date", "latitude", "longitude", "Access", "Duration", "Notes", "Zone", "Budget"}
			header := records[0]
			if len(header) != len(want) {
				t.Fatalf("unexpected header: %v", header)
			}
			for col := range want {
				if header[col] != want[col] {
					t.Fatalf("unexpected header order on run %d: %v", i, header)
				}
			}
		}
	})

	t.Run("with no submissions", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteSubmissionsCSV(&buf, nil); err != nil {
			t.Fatal(err)
		}
		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 1 {
			t.Fatalf("expected header only, got: %v", records)
		}
	})
}

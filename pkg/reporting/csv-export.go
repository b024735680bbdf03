package reporting

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
)

const (
	csvColumnDate      = "date"
	csvColumnLatitude  = "latitude"
	csvColumnLongitude = "longitude"

	multiValueSeparator = "; "
)

// WriteSubmissionsCSV renders the filtered submission set as CSV: one row
// per submission, one column per question text (union over all rows, in
// first-seen order with keys within a submission sorted alphabetically)
// plus date and location columns. Checkbox answers are joined into a
// single cell.
func WriteSubmissionsCSV(w io.Writer, submissions []surveyTypes.SubmissionView) error {
	questions := []string{}
	seen := map[string]struct{}{}
	for _, sub := range submissions {
		for _, key := range sortedQuestionKeys(sub.FormData) {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			questions = append(questions, key)
		}
	}

	writer := csv.NewWriter(w)

	header := append([]string{csvColumnDate, csvColumnLatitude, csvColumnLongitude}, questions...)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, sub := range submissions {
		row := make([]string, 0, len(header))
		row = append(row, sub.Date.Format(time.RFC3339))
		if sub.Location != nil {
			row = append(row,
				strconv.FormatFloat(sub.Location.Latitude, 'f', -1, 64),
				strconv.FormatFloat(sub.Location.Longitude, 'f', -1, 64),
			)
		} else {
			row = append(row, "", "")
		}

		for _, question := range questions {
			value, ok := sub.FormData[question]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, formatCSVCell(value))
		}

		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatCSVCell(value interface{}) string {
	switch val := value.(type) {
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, multiValueSeparator)
	case []string:
		return strings.Join(val, multiValueSeparator)
	}
	return FormatValue(value)
}

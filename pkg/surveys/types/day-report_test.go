package types

import (
	"testing"
)

func TestCheckDayReportDateFormat(t *testing.T) {
	cases := []struct {
		name string
		date string
		want bool
	}{
		{"calendar day", "2024-01-05", true},
		{"leap day", "2024-02-29", true},
		{"empty string", "", false},
		{"not a date", "yesterday", false},
		{"month out of range", "2024-13-05", false},
		{"day out of range", "2024-01-40", false},
		{"wrong separator", "05.01.2024", false},
		{"timestamp instead of day", "2024-01-05T10:00:00Z", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CheckDayReportDateFormat(c.date); got != c.want {
				t.Errorf("unexpected result for %q: %v", c.date, got)
			}
		})
	}
}

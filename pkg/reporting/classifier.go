package reporting

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Column types inferred from collected answer values.
const (
	COLUMN_TYPE_MULTIPLE = "multiple"
	COLUMN_TYPE_NUMERIC  = "numeric"
	COLUMN_TYPE_DATE     = "date"
	COLUMN_TYPE_BOOLEAN  = "boolean"
	COLUMN_TYPE_SINGLE   = "single"
	COLUMN_TYPE_TEXT     = "text"
)

// distinct values after flattening up to which a column is still treated as
// categorical
const maxDistinctForSingle = 10

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02.01.2006",
	"Jan 2, 2006",
}

// ClassifyColumn infers a presentation type for one column of collected
// answers (all values for one question across the selected submissions).
// The checks run in a fixed order and the first match wins, so a column of
// ten or fewer distinct numeric strings is numeric, not single. This is a
// heuristic over already-collected free-form data, not over the question
// type metadata: a short answer column containing only yes/no text will come
// out as boolean.
func ClassifyColumn(values []interface{}) string {
	if len(values) == 0 {
		return COLUMN_TYPE_TEXT
	}

	if allValues(values, isList) {
		return COLUMN_TYPE_MULTIPLE
	}
	if allValues(values, isNumeric) {
		return COLUMN_TYPE_NUMERIC
	}
	if allValues(values, isDate) {
		return COLUMN_TYPE_DATE
	}
	if allValues(values, isBooleanLike) {
		return COLUMN_TYPE_BOOLEAN
	}

	distinct := map[string]struct{}{}
	for _, v := range FlattenValues(values) {
		distinct[FormatValue(v)] = struct{}{}
	}
	if len(distinct) <= maxDistinctForSingle {
		return COLUMN_TYPE_SINGLE
	}
	return COLUMN_TYPE_TEXT
}

func allValues(values []interface{}, pred func(interface{}) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}
	return true
}

func isList(v interface{}) bool {
	switch v.(type) {
	case []interface{}, []string:
		return true
	}
	return false
}

func isNumeric(v interface{}) bool {
	f, ok := toFloat(v)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func toFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func isDate(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, ok = parseDate(s)
	return ok
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isBooleanLike(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return true
	case string:
		return val == "yes" || val == "no"
	}
	return false
}

// FlattenValues expands list answers (checkbox questions) into their
// elements, leaving scalar answers as they are.
func FlattenValues(values []interface{}) []interface{} {
	flat := make([]interface{}, 0, len(values))
	for _, v := range values {
		switch val := v.(type) {
		case []interface{}:
			flat = append(flat, val...)
		case []string:
			for _, s := range val {
				flat = append(flat, s)
			}
		default:
			flat = append(flat, v)
		}
	}
	return flat
}

// FormatValue renders an answer value for counting and display. Booleans map
// to Yes/No, numbers keep their shortest representation.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	}
	return fmt.Sprint(v)
}

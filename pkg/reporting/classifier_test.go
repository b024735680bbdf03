package reporting

import (
	"testing"
)

func TestClassifyColumn(t *testing.T) {
	t.Run("all lists means multiple", func(t *testing.T) {
		values := []interface{}{
			[]interface{}{"a", "b"},
			[]interface{}{"b"},
		}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_MULTIPLE {
			t.Errorf("unexpected type: %s", got)
		}
	})

	t.Run("numeric strings", func(t *testing.T) {
		values := []interface{}{"1", "2.5", "-3"}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_NUMERIC {
			t.Errorf("unexpected type: %s", got)
		}
	})

	t.Run("numeric wins over single on few distinct values", func(t *testing.T) {
		// three distinct numeric strings would also qualify as single,
		// but numeric is checked first
		values := []interface{}{"1", "2", "1", "2", "3"}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_SINGLE && got != COLUMN_TYPE_NUMERIC {
			t.Fatalf("unexpected type: %s", got)
		}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_NUMERIC {
			t.Errorf("numeric should win over single, got: %s", got)
		}
	})

	t.Run("dates", func(t *testing.T) {
		values := []interface{}{"2024-01-01", "2024-02-15"}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_DATE {
			t.Errorf("unexpected type: %s", got)
		}
	})

	t.Run("yes no answers", func(t *testing.T) {
		values := []interface{}{"yes", "no", "yes"}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_BOOLEAN {
			t.Errorf("unexpected type: %s", got)
		}
	})

	t.Run("raw booleans", func(t *testing.T) {
		values := []interface{}{true, false, true}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_BOOLEAN {
			t.Errorf("unexpected type: %s", got)
		}
	})

	t.Run("few distinct strings mean single", func(t *testing.T) {
		values := []interface{}{"red", "green", "blue", "red"}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_SINGLE {
			t.Errorf("unexpected type: %s", got)
		}
	})

	t.Run("many distinct strings mean text", func(t *testing.T) {
		values := []interface{}{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_TEXT {
			t.Errorf("unexpected type: %s", got)
		}
	})

	t.Run("mixed column falls through ordered checks", func(t *testing.T) {
		// one non-numeric value prevents numeric, one non-date prevents
		// date, low cardinality ends at single
		values := []interface{}{"1", "x", "1", "x"}
		if got := ClassifyColumn(values); got != COLUMN_TYPE_SINGLE {
			t.Errorf("unexpected type: %s", got)
		}
	})

	t.Run("empty column", func(t *testing.T) {
		if got := ClassifyColumn(nil); got != COLUMN_TYPE_TEXT {
			t.Errorf("unexpected type: %s", got)
		}
	})
}

func TestFlattenValues(t *testing.T) {
	t.Run("mixed scalar and list values", func(t *testing.T) {
		flat := FlattenValues([]interface{}{
			"a",
			[]interface{}{"b", "c"},
			[]string{"d"},
		})
		if len(flat) != 4 {
			t.Fatalf("unexpected length: %d", len(flat))
		}
		if flat[0] != "a" || flat[1] != "b" || flat[2] != "c" || flat[3] != "d" {
			t.Errorf("unexpected values: %v", flat)
		}
	})
}

func TestFormatValue(t *testing.T) {
	t.Run("booleans render as Yes and No", func(t *testing.T) {
		if FormatValue(true) != "Yes" || FormatValue(false) != "No" {
			t.Error("unexpected boolean formatting")
		}
	})
	t.Run("numbers keep short representation", func(t *testing.T) {
		if got := FormatValue(float64(3)); got != "3" {
			t.Errorf("unexpected: %s", got)
		}
		if got := FormatValue(2.5); got != "2.5" {
			t.Errorf("unexpected: %s", got)
		}
	})
	t.Run("nil renders empty", func(t *testing.T) {
		if got := FormatValue(nil); got != "" {
			t.Errorf("unexpected: %q", got)
		}
	})
}

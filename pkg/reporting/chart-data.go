package reporting

import (
	"fmt"
	"sort"

	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
)

// ChartPoint is one aggregated data point for a question chart.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ChartGroup is the aggregated, chart-ready view of one question column.
// Text columns carry no data points, they are listed but not charted.
type ChartGroup struct {
	Question string       `json:"question"`
	Type     string       `json:"type"`
	Data     []ChartPoint `json:"data,omitempty"`
}

// sortedQuestionKeys returns the form data keys of one submission in a
// stable order, map iteration alone would reshuffle columns between runs.
func sortedQuestionKeys(formData map[string]interface{}) []string {
	keys := make([]string, 0, len(formData))
	for key := range formData {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// BuildChartGroups collects per-question answer columns from the submissions
// and aggregates each into chart data according to its inferred column type.
// Question order follows first appearance across submissions, keys within a
// submission sorted alphabetically.
func BuildChartGroups(submissions []surveyTypes.SubmissionView) []ChartGroup {
	questions := []string{}
	columns := map[string][]interface{}{}

	for _, sub := range submissions {
		for _, key := range sortedQuestionKeys(sub.FormData) {
			if _, ok := columns[key]; !ok {
				questions = append(questions, key)
			}
			columns[key] = append(columns[key], sub.FormData[key])
		}
	}

	groups := make([]ChartGroup, 0, len(questions))
	for _, question := range questions {
		values := columns[question]
		colType := ClassifyColumn(values)

		group := ChartGroup{
			Question: question,
			Type:     colType,
		}

		switch colType {
		case COLUMN_TYPE_MULTIPLE, COLUMN_TYPE_BOOLEAN, COLUMN_TYPE_SINGLE:
			group.Data = countValues(FlattenValues(values))
		case COLUMN_TYPE_NUMERIC:
			group.Data = numericSeries(values)
		case COLUMN_TYPE_DATE:
			group.Data = countPerDay(values)
		}
		groups = append(groups, group)
	}
	return groups
}

// countValues tallies occurrences, keeping first-seen order stable.
func countValues(values []interface{}) []ChartPoint {
	order := []string{}
	counts := map[string]float64{}
	for _, v := range values {
		name := FormatValue(v)
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	points := make([]ChartPoint, 0, len(order))
	for _, name := range order {
		points = append(points, ChartPoint{Name: name, Value: counts[name]})
	}
	return points
}

func numericSeries(values []interface{}) []ChartPoint {
	points := make([]ChartPoint, 0, len(values))
	for i, v := range values {
		f, ok := toFloat(v)
		if !ok {
			continue
		}
		points = append(points, ChartPoint{
			Name:  fmt.Sprintf("#%d", i+1),
			Value: f,
		})
	}
	return points
}

func countPerDay(values []interface{}) []ChartPoint {
	order := []string{}
	counts := map[string]float64{}
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		t, ok := parseDate(s)
		if !ok {
			continue
		}
		day := t.Format("2006-01-02")
		if _, ok := counts[day]; !ok {
			order = append(order, day)
		}
		counts[day]++
	}

	points := make([]ChartPoint, 0, len(order))
	for _, day := range order {
		points = append(points, ChartPoint{Name: day, Value: counts[day]})
	}
	return points
}

package apihandlers

import (
	"testing"

	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
)

func TestCheckQuestions(t *testing.T) {
	cases := []struct {
		name      string
		questions []surveyTypes.Question
		wantErr   bool
	}{
		{"empty question list", []surveyTypes.Question{}, false},
		{"text question", []surveyTypes.Question{
			{Text: "How is the site?", Type: surveyTypes.QUESTION_TYPE_SHORT},
		}, false},
		{"date question", []surveyTypes.Question{
			{Text: "Visit date", Type: surveyTypes.QUESTION_TYPE_DATE},
		}, false},
		{"option question with options", []surveyTypes.Question{
			{Text: "Access", Type: surveyTypes.QUESTION_TYPE_DROPDOWN, Options: []string{"road", "trail"}},
		}, false},
		{"missing question text", []surveyTypes.Question{
			{Type: surveyTypes.QUESTION_TYPE_SHORT},
		}, true},
		{"unknown question type", []surveyTypes.Question{
			{Text: "How is the site?", Type: "rating"},
		}, true},
		{"multiple choice without options", []surveyTypes.Question{
			{Text: "Status", Type: surveyTypes.QUESTION_TYPE_MULTIPLE},
		}, true},
		{"checkbox without options", []surveyTypes.Question{
			{Text: "Tools", Type: surveyTypes.QUESTION_TYPE_CHECKBOX},
		}, true},
		{"dropdown without options", []surveyTypes.Question{
			{Text: "Access", Type: surveyTypes.QUESTION_TYPE_DROPDOWN},
		}, true},
		{"invalid question after valid ones", []surveyTypes.Question{
			{Text: "How is the site?", Type: surveyTypes.QUESTION_TYPE_SHORT},
			{Text: "Tools", Type: surveyTypes.QUESTION_TYPE_CHECKBOX},
		}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := checkQuestions(c.questions)
			if c.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !c.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

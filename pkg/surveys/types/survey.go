package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	QUESTION_TYPE_SHORT    = "short"
	QUESTION_TYPE_LONG     = "long"
	QUESTION_TYPE_MULTIPLE = "multiple"
	QUESTION_TYPE_CHECKBOX = "checkbox"
	QUESTION_TYPE_DROPDOWN = "dropdown"
	QUESTION_TYPE_DATE     = "date"
)

type SurveyTemplate struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TemplateID     string             `bson:"templateId" json:"templateId"`
	Name           string             `bson:"name" json:"name"`
	Questions      []Question         `bson:"questions" json:"questions"`
	AdminID        string             `bson:"adminId" json:"adminId"`
	AssignedAgents []string           `bson:"assignedAgents" json:"assignedAgents"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Question struct {
	Text    string   `bson:"text" json:"text"`
	Type    string   `bson:"type" json:"type"`
	Options []string `bson:"options,omitempty" json:"options,omitempty"`
}

// QuestionTypeRequiresOptions tells if a question type only makes sense with a
// predefined option list.
func QuestionTypeRequiresOptions(qType string) bool {
	return qType == QUESTION_TYPE_MULTIPLE || qType == QUESTION_TYPE_CHECKBOX || qType == QUESTION_TYPE_DROPDOWN
}

func IsValidQuestionType(qType string) bool {
	switch qType {
	case QUESTION_TYPE_SHORT, QUESTION_TYPE_LONG, QUESTION_TYPE_MULTIPLE,
		QUESTION_TYPE_CHECKBOX, QUESTION_TYPE_DROPDOWN, QUESTION_TYPE_DATE:
		return true
	}
	return false
}

// IsAssignedTo checks if the agent appears in the template's assigned set.
func (t SurveyTemplate) IsAssignedTo(agentID string) bool {
	for _, id := range t.AssignedAgents {
		if id == agentID {
			return true
		}
	}
	return false
}

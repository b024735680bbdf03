package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayReport is a free-text report, at most one per (templateId, agentId, date).
// The date has calendar-day granularity and is stored as a "YYYY-MM-DD" string.
type DayReport struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AdminID    string             `bson:"adminId" json:"adminId"`
	AgentID    string             `bson:"agentId" json:"agentId"`
	TemplateID string             `bson:"templateId" json:"templateId"`
	FormName   string             `bson:"formName" json:"formName"`
	Date       string             `bson:"date" json:"date"`
	ReportData string             `bson:"reportData" json:"reportData"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt  time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

const dayReportDateLayout = "2006-01-02"

// CheckDayReportDateFormat validates the calendar-day string.
func CheckDayReportDateFormat(date string) bool {
	_, err := time.Parse(dayReportDateLayout, date)
	return err == nil
}

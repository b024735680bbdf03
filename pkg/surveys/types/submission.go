package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Submission struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	AdminID    string                 `bson:"adminId" json:"adminId"`
	AgentID    string                 `bson:"agentId" json:"agentId"`
	TemplateID string                 `bson:"templateId" json:"templateId"`
	FormName   string                 `bson:"formName" json:"formName"`
	Date       time.Time              `bson:"date" json:"date"`
	FormData   map[string]interface{} `bson:"formData" json:"formData"`
	Location   *GeoLocation           `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt  time.Time              `bson:"createdAt" json:"createdAt"`
}

// GeoLocation is the agent's position at submission time. Optional, the
// submission is accepted without it when the location capability was
// unavailable or denied.
type GeoLocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// SubmissionView is the reduced shape returned to admins when querying
// filtered submissions: the caller already knows the identity filter, so only
// the payload fields are included.
type SubmissionView struct {
	FormData map[string]interface{} `bson:"formData" json:"formData"`
	Location *GeoLocation           `bson:"location,omitempty" json:"location,omitempty"`
	Date     time.Time              `bson:"date" json:"date"`
}

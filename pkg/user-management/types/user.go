package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	USER_ROLE_ADMIN = "ADMIN"
	USER_ROLE_AGENT = "AGENT"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`

	// AdminID references the admin that created this user, only set for agents.
	AdminID string `bson:"adminId,omitempty" json:"adminId,omitempty"`

	// Organisation profile, collected at admin signup.
	PhoneNo          string `bson:"Phone_No,omitempty" json:"Phone_No,omitempty"`
	OrganisationName string `bson:"Organisation_Name,omitempty" json:"Organisation_Name,omitempty"`
	OrganisationType string `bson:"Organisation_type,omitempty" json:"Organisation_type,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == USER_ROLE_ADMIN
}

func (u User) IsAgent() bool {
	return u.Role == USER_ROLE_AGENT
}

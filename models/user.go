package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser        = "user"
	RoleParticipant = "participant"
	RoleOrganizer   = "organizer"
)

// AssignableRoles are the roles an organizer may grant through the dashboard.
var AssignableRoles = []string{RoleOrganizer, RoleUser}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	LastLogIn time.Time          `bson:"last_log_in,omitempty" json:"last_log_in,omitempty"`
}

func (u *User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// ValidAssignableRole reports whether role may be set via the role-grant endpoint.
func ValidAssignableRole(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}

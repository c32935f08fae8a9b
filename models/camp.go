package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Camp struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CampName               string             `bson:"campName" json:"campName"`
	Image                  string             `bson:"image,omitempty" json:"image,omitempty"`
	DateTime               string             `bson:"dateTime" json:"dateTime"`
	Location               string             `bson:"location" json:"location"`
	HealthcareProfessional string             `bson:"healthcareProfessional" json:"healthcareProfessional"`
	Fees                   float64            `bson:"campFees" json:"campFees"`
	Description            string             `bson:"description,omitempty" json:"description,omitempty"`
	ParticipantCount       int                `bson:"participantCount" json:"participantCount"`
	OrganizerEmail         string             `bson:"organizerEmail" json:"organizerEmail"`
	CreationDate           time.Time          `bson:"creation_date,omitempty" json:"creation_date,omitempty"`
}

func (c *Camp) Validate() error {
	if c.CampName == "" {
		return fmt.Errorf("campName is required")
	}
	if c.DateTime == "" {
		return fmt.Errorf("dateTime is required")
	}
	if c.Location == "" {
		return fmt.Errorf("location is required")
	}
	if c.HealthcareProfessional == "" {
		return fmt.Errorf("healthcareProfessional is required")
	}
	if c.Fees < 0 {
		return fmt.Errorf("campFees cannot be negative")
	}
	return nil
}

// CampUpdate is the fixed field subset the organizer dashboard may replace.
type CampUpdate struct {
	CampName               string `bson:"campName" json:"campName"`
	Image                  string `bson:"image" json:"image"`
	DateTime               string `bson:"dateTime" json:"dateTime"`
	Location               string `bson:"location" json:"location"`
	HealthcareProfessional string `bson:"healthcareProfessional" json:"healthcareProfessional"`
}

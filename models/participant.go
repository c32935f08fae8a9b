package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status axis
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Confirmation status axis
const (
	ConfirmationPending   = "pending"
	ConfirmationConfirmed = "confirmed"
)

// Registration status axis
const (
	StatusPending = "pending"
	StatusActive  = "active"
)

// Participant is a registration row linking a user to a camp. The three status
// fields are independent axes; see ConfirmTransition for the rules tying the
// first two together.
type Participant struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ParticipantEmail   string             `bson:"participantEmail" json:"participantEmail"`
	ParticipantName    string             `bson:"participantName" json:"participantName"`
	Age                int                `bson:"age,omitempty" json:"age,omitempty"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender             string             `bson:"gender,omitempty" json:"gender,omitempty"`
	EmergencyContact   string             `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	CampID             string             `bson:"campId" json:"campId"`
	CampName           string             `bson:"campName" json:"campName"`
	CampFees           float64            `bson:"campFees" json:"campFees"`
	PaymentStatus      string             `bson:"paymentStatus" json:"paymentStatus"`
	ConfirmationStatus string             `bson:"confirmationStatus" json:"confirmationStatus"`
	Status             string             `bson:"status" json:"status"`
	PaymentIntentID    string             `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	JoinedAt           time.Time          `bson:"joinedAt,omitempty" json:"joinedAt,omitempty"`
	UpdatedAt          time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (p *Participant) Validate() error {
	if p.ParticipantEmail == "" {
		return fmt.Errorf("participantEmail is required")
	}
	if p.ParticipantName == "" {
		return fmt.Errorf("participantName is required")
	}
	if p.CampID == "" {
		return fmt.Errorf("campId is required")
	}
	if p.CampName == "" {
		return fmt.Errorf("campName is required")
	}
	return nil
}

// ValidStatus reports whether s is an allowed registration status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusActive
}

// ConfirmTransition checks whether a registration may move to "confirmed".
// Payment has to be completed first, and confirmation happens once.
func ConfirmTransition(p *Participant) error {
	if p.PaymentStatus != PaymentPaid {
		return fmt.Errorf("cannot confirm: payment not completed")
	}
	if p.ConfirmationStatus == ConfirmationConfirmed {
		return fmt.Errorf("participant already confirmed")
	}
	return nil
}

package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of one successful charge.
type Payment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ParticipantID    primitive.ObjectID `bson:"participantId" json:"participantId"`
	ParticipantEmail string             `bson:"participantEmail" json:"participantEmail"`
	ParticipantName  string             `bson:"participantName" json:"participantName"`
	CampID           primitive.ObjectID `bson:"campId" json:"campId"`
	CampName         string             `bson:"campName" json:"campName"`
	Amount           int64              `bson:"amount" json:"amount"`
	PaymentIntentID  string             `bson:"paymentIntentId" json:"paymentIntentId"`
	PaymentMethod    string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	Status           string             `bson:"status" json:"status"`
	PaidAtString     string             `bson:"paid_at_string" json:"paid_at_string"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// PaymentRequest is the client payload for recording a completed charge.
type PaymentRequest struct {
	ParticipantID    string `json:"participantId"`
	ParticipantEmail string `json:"participantEmail"`
	ParticipantName  string `json:"participantName"`
	CampID           string `json:"campId"`
	CampName         string `json:"campName"`
	Amount           int64  `json:"amount"`
	PaymentIntentID  string `json:"paymentIntentId"`
	PaymentMethod    string `json:"paymentMethod"`
}

func (p *PaymentRequest) Validate() error {
	if p.ParticipantID == "" {
		return fmt.Errorf("participantId is required")
	}
	if p.ParticipantEmail == "" {
		return fmt.Errorf("participantEmail is required")
	}
	if p.PaymentIntentID == "" {
		return fmt.Errorf("paymentIntentId is required")
	}
	if p.Amount < 1 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

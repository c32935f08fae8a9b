package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is immutable once submitted.
type Feedback struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ParticipantID    primitive.ObjectID `bson:"participantId" json:"participantId"`
	ParticipantName  string             `bson:"participantName" json:"participantName"`
	ParticipantEmail string             `bson:"participantEmail" json:"participantEmail"`
	CampID           primitive.ObjectID `bson:"campId" json:"campId"`
	CampName         string             `bson:"campName" json:"campName"`
	Rating           float64            `bson:"rating" json:"rating"`
	Feedback         string             `bson:"feedback" json:"feedback"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// FeedbackRequest is the client payload; rating arrives as a number or a
// numeric string depending on the form, so it is coerced before validation.
type FeedbackRequest struct {
	ParticipantID    string      `json:"participantId"`
	ParticipantName  string      `json:"participantName"`
	ParticipantEmail string      `json:"participantEmail"`
	CampID           string      `json:"campId"`
	CampName         string      `json:"campName"`
	Rating           interface{} `json:"rating"`
	Feedback         string      `json:"feedback"`
}

func (f *FeedbackRequest) Validate() error {
	if f.Rating == nil || f.Feedback == "" {
		return fmt.Errorf("rating and feedback required")
	}
	return nil
}

// CoerceRating turns the submitted rating into a float in [1,5].
func CoerceRating(v interface{}) (float64, error) {
	var rating float64
	switch n := v.(type) {
	case float64:
		rating = n
	case int:
		rating = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("rating must be numeric")
		}
		rating = parsed
	default:
		return 0, fmt.Errorf("rating must be numeric")
	}
	if rating < 1 || rating > 5 {
		return 0, fmt.Errorf("rating must be between 1 and 5")
	}
	return rating, nil
}

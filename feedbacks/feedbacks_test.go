package feedbacks

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSubmitFeedbackRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"rating":`},
		{"missing rating", `{"feedback":"great camp","participantId":"507f1f77bcf86cd799439011","campId":"507f1f77bcf86cd799439012"}`},
		{"missing text", `{"rating":5,"participantId":"507f1f77bcf86cd799439011","campId":"507f1f77bcf86cd799439012"}`},
		{"rating out of range", `{"rating":9,"feedback":"x","participantId":"507f1f77bcf86cd799439011","campId":"507f1f77bcf86cd799439012"}`},
		{"non-numeric rating", `{"rating":"five","feedback":"x","participantId":"507f1f77bcf86cd799439011","campId":"507f1f77bcf86cd799439012"}`},
		{"malformed participant id", `{"rating":4,"feedback":"x","participantId":"nope","campId":"507f1f77bcf86cd799439012"}`},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("POST", "/feedbacks", strings.NewReader(tt.body))
		rec := httptest.NewRecorder()

		SubmitFeedback(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tt.name, rec.Code)
		}
	}
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.4444, 4.4},
		{4.45, 4.5},
		{4.96, 5.0},
		{0, 0},
		{3, 3},
	}

	for _, tt := range tests {
		if got := RoundRating(tt.in); got != tt.want {
			t.Errorf("RoundRating(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

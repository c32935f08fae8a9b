package payments

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateIntentRejectsBadAmount(t *testing.T) {
	for name, body := range map[string]string{
		"invalid json": `{"amountInCents":`,
		"zero":         `{"amountInCents":0}`,
		"negative":     `{"amountInCents":-100}`,
		"missing":      `{}`,
	} {
		req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(body))
		rec := httptest.NewRecorder()

		CreateIntent(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestGetByParticipantRequiresEmail(t *testing.T) {
	for _, url := range []string{"/payments", "/payments/users", "/payments?email="} {
		req := httptest.NewRequest("GET", url, nil)
		rec := httptest.NewRecorder()

		GetByParticipant(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", url, rec.Code)
		}
	}
}

func TestRecordPaymentRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"participantId":`},
		{"missing participant", `{"paymentIntentId":"pi_1","participantEmail":"a@b.com","amount":2500}`},
		{"missing intent", `{"participantId":"507f1f77bcf86cd799439011","participantEmail":"a@b.com","amount":2500}`},
		{"zero amount", `{"participantId":"507f1f77bcf86cd799439011","participantEmail":"a@b.com","paymentIntentId":"pi_1"}`},
		{"malformed participant id", `{"participantId":"nope","participantEmail":"a@b.com","paymentIntentId":"pi_1","campId":"507f1f77bcf86cd799439012","amount":2500}`},
		{"malformed camp id", `{"participantId":"507f1f77bcf86cd799439011","participantEmail":"a@b.com","paymentIntentId":"pi_1","campId":"nope","amount":2500}`},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("POST", "/payments", strings.NewReader(tt.body))
		rec := httptest.NewRecorder()

		RecordPayment(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tt.name, rec.Code)
		}
	}
}

func TestRecordPaymentRejectsUnverifiedIntent(t *testing.T) {
	orig := VerifyIntent
	var checkedIntent string
	var checkedAmount int64
	VerifyIntent = func(intentID string, amount int64) error {
		checkedIntent = intentID
		checkedAmount = amount
		return fmt.Errorf("intent not succeeded")
	}
	defer func() { VerifyIntent = orig }()

	body := fmt.Sprintf(
		`{"participantId":"%s","participantEmail":"a@b.com","campId":"%s","paymentIntentId":"pi_123","amount":2500}`,
		primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(),
	)
	req := httptest.NewRequest("POST", "/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	RecordPayment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unverified intent, got %d", rec.Code)
	}
	if checkedIntent != "pi_123" || checkedAmount != 2500 {
		t.Errorf("verifier called with (%q, %d), want (pi_123, 2500)", checkedIntent, checkedAmount)
	}
}

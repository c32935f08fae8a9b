package participants

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"participantEmail":`},
		{"missing email", `{"participantName":"A","campId":"x","campName":"Camp"}`},
		{"missing camp", `{"participantEmail":"a@b.com","participantName":"A"}`},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("POST", "/participants", strings.NewReader(tt.body))
		rec := httptest.NewRecorder()

		Register(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tt.name, rec.Code)
		}
	}
}

func TestGetByIDMalformedID(t *testing.T) {
	req := withURLParam(httptest.NewRequest("GET", "/participants/bad", nil), "id", "bad")
	rec := httptest.NewRecorder()

	GetByID(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	for _, status := range []string{"confirmed", "paid", "", "Active"} {
		req := withURLParam(
			httptest.NewRequest("PATCH", "/participants/"+id+"/status", strings.NewReader(`{"status":"`+status+`"}`)),
			"id", id,
		)
		rec := httptest.NewRecorder()

		UpdateStatus(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status %q: expected 400, got %d", status, rec.Code)
		}
	}
}

func TestUpdateStatusMalformedID(t *testing.T) {
	req := withURLParam(
		httptest.NewRequest("PATCH", "/participants/bad/status", strings.NewReader(`{"status":"active"}`)),
		"id", "bad",
	)
	rec := httptest.NewRecorder()

	UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestConfirmMalformedID(t *testing.T) {
	req := withURLParam(httptest.NewRequest("PATCH", "/organizer/confirm/bad", nil), "id", "bad")
	rec := httptest.NewRecorder()

	Confirm(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSanitizeProfilePatch(t *testing.T) {
	patch := map[string]interface{}{
		"participantName":    "New Name",
		"phone":              "0123456789",
		"participantEmail":   "attacker@example.com",
		"status":             "active",
		"paymentStatus":      "paid",
		"confirmationStatus": "confirmed",
		"_id":                "ffffffffffffffffffffffff",
	}

	clean := SanitizeProfilePatch(patch)

	for _, forbidden := range []string{"participantEmail", "status", "paymentStatus", "confirmationStatus", "_id"} {
		if _, ok := clean[forbidden]; ok {
			t.Errorf("field %q survived sanitization", forbidden)
		}
	}
	if clean["participantName"] != "New Name" || clean["phone"] != "0123456789" {
		t.Error("benign fields were dropped")
	}
}

func TestGetAnalyticsRequiresEmail(t *testing.T) {
	req := httptest.NewRequest("GET", "/analytics/participant", nil)
	rec := httptest.NewRecorder()

	GetAnalytics(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestListForOrganizerRequiresEmail(t *testing.T) {
	req := httptest.NewRequest("GET", "/organizer/participants", nil)
	rec := httptest.NewRecorder()

	ListForOrganizer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

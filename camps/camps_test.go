package camps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetCampDetailsMalformedID(t *testing.T) {
	for _, id := range []string{"not-hex", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		req := withURLParam(httptest.NewRequest("GET", "/camp-details/"+id, nil), "campId", id)
		rec := httptest.NewRecorder()

		GetCampDetails(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("id %q: expected 400, got %d", id, rec.Code)
		}
	}
}

func TestUpdateCampMalformedID(t *testing.T) {
	body := strings.NewReader(`{"campName":"x"}`)
	req := withURLParam(httptest.NewRequest("PUT", "/orgDashboard/update-camp/bad", body), "campId", "bad")
	rec := httptest.NewRecorder()

	UpdateCamp(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteCampMalformedID(t *testing.T) {
	req := withURLParam(httptest.NewRequest("DELETE", "/delete-camp/bad", nil), "campId", "bad")
	rec := httptest.NewRecorder()

	DeleteCamp(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreateCampRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"campName":`},
		{"missing name", `{"dateTime":"2026-09-01","location":"Dhaka","healthcareProfessional":"Dr. A"}`},
		{"missing location", `{"campName":"Camp","dateTime":"2026-09-01","healthcareProfessional":"Dr. A"}`},
		{"negative fees", `{"campName":"Camp","dateTime":"2026-09-01","location":"Dhaka","healthcareProfessional":"Dr. A","campFees":-5}`},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("POST", "/addCamps", strings.NewReader(tt.body))
		rec := httptest.NewRecorder()

		CreateCamp(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tt.name, rec.Code)
		}
	}
}

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		url       string
		wantSkip  int64
		wantLimit int64
	}{
		{"/feedbacks", 0, 10},
		{"/feedbacks?page=3&limit=20", 40, 20},
		{"/feedbacks?page=0&limit=-5", 0, 10},
		{"/feedbacks?limit=9999", 0, 100},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		skip, limit := ParsePagination(r, 10, 100)
		if skip != tt.wantSkip || limit != tt.wantLimit {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", tt.url, skip, limit, tt.wantSkip, tt.wantLimit)
		}
	}
}

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithJSON(rec, http.StatusOK, M{"ok": true})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["ok"] != true {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, http.StatusNotFound, "Camp not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["message"] != "Camp not found" {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

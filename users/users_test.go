package users

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

func TestRegisterUserRejectsBadPayload(t *testing.T) {
	for name, body := range map[string]string{
		"invalid json":  `{"email":`,
		"missing email": `{"name":"No Email"}`,
	} {
		req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
		rec := httptest.NewRecorder()

		RegisterUser(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestUpdateUserRoleMalformedID(t *testing.T) {
	req := withURLParam(
		httptest.NewRequest("PATCH", "/organizer/users/bad/make-organizer", strings.NewReader(`{"role":"organizer"}`)),
		"id", "bad",
	)
	rec := httptest.NewRecorder()

	UpdateUserRole(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	for _, role := range []string{"admin", "participant", "", "ORGANIZER"} {
		req := withURLParam(
			httptest.NewRequest("PATCH", "/organizer/users/"+id+"/make-organizer", strings.NewReader(`{"role":"`+role+`"}`)),
			"id", id,
		)
		rec := httptest.NewRecorder()

		UpdateUserRole(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("role %q: expected 400, got %d", role, rec.Code)
		}
	}
}

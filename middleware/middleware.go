package middleware

import (
	"context"
	"net/http"
	"strings"

	"medicamp/db"
	"medicamp/globals"
	"medicamp/ident"
	"medicamp/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Verifier is the identity collaborator used by Authenticate. Overridable for
// tests.
var Verifier ident.Verifier = ident.NewJWTVerifier()

// Authenticate extracts the bearer token, verifies it, and stores the verified
// email in the request context. 401 for a missing or malformed credential,
// 403 when verification fails.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			http.Error(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		identity, err := Verifier.Verify(r.Context(), parts[1])
		if err != nil {
			http.Error(w, "forbidden access", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), globals.EmailKey, identity.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireOrganizer resolves the verified email to its user document and
// rejects callers whose role is not organizer. Must run after Authenticate.
func RequireOrganizer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := r.Context().Value(globals.EmailKey).(string)
		if !ok || email == "" {
			http.Error(w, "forbidden access", http.StatusForbidden)
			return
		}

		var user models.User
		err := db.UserCollection.FindOne(r.Context(), bson.M{"email": email}).Decode(&user)
		if err != nil || user.Role != models.RoleOrganizer {
			http.Error(w, "forbidden access", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), globals.RoleKey, user.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetEmailFromRequest returns the verified email set by Authenticate, or "".
func GetEmailFromRequest(r *http.Request) string {
	email, ok := r.Context().Value(globals.EmailKey).(string)
	if !ok {
		return ""
	}
	return email
}

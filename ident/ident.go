package ident

import (
	"context"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified caller identity attached to guarded requests.
type Identity struct {
	Email string
	Name  string
}

// Verifier resolves a bearer token to a verified identity. The production
// implementation validates tokens minted by the identity provider; tests
// substitute their own.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 tokens against a shared secret.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier() *JWTVerifier {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key" // Replace with a secure secret key
	}
	return &JWTVerifier{secret: []byte(secret)}
}

func NewJWTVerifierWithSecret(secret []byte) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("token carries no email")
	}
	return &Identity{Email: claims.Email, Name: claims.Name}, nil
}

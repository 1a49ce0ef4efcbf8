package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestPassthroughIssuer(t *testing.T) {
	svc := NewService([]byte("test-secret"), 5*time.Hour)
	issuer := &PassthroughIssuer{Tokens: svc}

	// Whatever the client sends is signed verbatim, role included.
	tokenStr, err := issuer.Issue(context.Background(), jwt.MapClaims{
		"email": "anyone@example.com",
		"role":  "admin",
	})
	assert.NoError(t, err)

	decoded, err := svc.Verify(tokenStr)
	assert.NoError(t, err)
	assert.Equal(t, "anyone@example.com", decoded["email"])
	assert.Equal(t, "admin", decoded["role"])
}

func TestCredentialIssuerRejectsIncompleteClaims(t *testing.T) {
	svc := NewService([]byte("test-secret"), 5*time.Hour)
	// Users is nil: these cases must be rejected before any lookup.
	issuer := &CredentialIssuer{Tokens: svc}

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{name: "empty claims", claims: jwt.MapClaims{}},
		{name: "missing password", claims: jwt.MapClaims{"email": "a@b.c"}},
		{name: "missing email", claims: jwt.MapClaims{"password": "hunter2"}},
		{name: "non-string fields", claims: jwt.MapClaims{"email": 1, "password": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Issue(context.Background(), tt.claims)
			assert.ErrorIs(t, err, ErrBadCredentials)
		})
	}
}

package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte("test-secret"), 5*time.Hour)

	claims := jwt.MapClaims{
		"email": "patient@example.com",
		"name":  "Pat Ient",
	}

	tokenStr, err := svc.Issue(claims)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenStr)

	decoded, err := svc.Verify(tokenStr)
	assert.NoError(t, err)
	assert.Equal(t, "patient@example.com", decoded["email"])
	assert.Equal(t, "Pat Ient", decoded["name"])
	assert.Contains(t, decoded, "exp")

	// The caller's map must not pick up the exp claim.
	assert.NotContains(t, claims, "exp")
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService([]byte("test-secret"), -time.Minute)

	tokenStr, err := svc.Issue(jwt.MapClaims{"email": "patient@example.com"})
	assert.NoError(t, err)

	_, err = svc.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTampered(t *testing.T) {
	svc := NewService([]byte("test-secret"), 5*time.Hour)

	tokenStr, err := svc.Issue(jwt.MapClaims{"email": "patient@example.com"})
	assert.NoError(t, err)

	// Flip one byte somewhere in the payload section.
	raw := []byte(tokenStr)
	raw[len(raw)/2] ^= 0x01

	_, err = svc.Verify(string(raw))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService([]byte("secret-a"), 5*time.Hour)
	verifier := NewService([]byte("secret-b"), 5*time.Hour)

	tokenStr, err := issuer.Issue(jwt.MapClaims{"email": "patient@example.com"})
	assert.NoError(t, err)

	_, err = verifier.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService([]byte("test-secret"), 5*time.Hour)

	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestIssueWithoutSecret(t *testing.T) {
	svc := NewService(nil, 5*time.Hour)

	_, err := svc.Issue(jwt.MapClaims{"email": "patient@example.com"})
	assert.Error(t, err)
}

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Error taxonomy for bearer-token failures. Missing maps to a request
// with no Authorization header at all; the other two come out of Verify.
var (
	ErrTokenMissing = errors.New("authorization token missing")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Service signs and verifies HS256 bearer tokens. The secret and TTL are
// injected at construction instead of read from the environment, so the
// process carries exactly one signing identity.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl}
}

// Issue signs the given claims with an expiry of now+TTL. The caller's
// map is copied, never mutated.
func (s *Service) Issue(claims jwt.MapClaims) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token secret is not configured")
	}

	signed := jwt.MapClaims{}
	for k, v := range claims {
		signed[k] = v
	}
	signed["exp"] = jwt.NewNumericDate(time.Now().Add(s.ttl))

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, signed)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token and returns its decoded claims.
// Expired tokens fail with ErrTokenExpired; any other failure (bad
// signature, malformed payload, non-HMAC algorithm) is ErrTokenInvalid.
func (s *Service) Verify(tokenStr string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !t.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

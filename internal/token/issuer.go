package token

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harilala/medibook-api/internal/models"
	"github.com/harilala/medibook-api/internal/utils"
)

// ErrBadCredentials is returned by issuers that refuse to sign a token
// for the presented identity.
var ErrBadCredentials = errors.New("invalid credentials")

// A ClaimsIssuer decides which claims a token request is entitled to
// before the claims are signed.
type ClaimsIssuer interface {
	Issue(ctx context.Context, claims jwt.MapClaims) (string, error)
}

// PassthroughIssuer signs whatever the client sent as-is: the request
// body becomes the decoded identity, with no credential check. This is
// the default policy and it is weak; clients of the original API depend
// on it, so it stays until they move to the credential issuer.
type PassthroughIssuer struct {
	Tokens *Service
}

func (i *PassthroughIssuer) Issue(_ context.Context, claims jwt.MapClaims) (string, error) {
	return i.Tokens.Issue(claims)
}

// CredentialIssuer verifies an email/password pair against the users
// collection before issuing, and shapes the signed claims server-side.
// Enabled with AUTH_MODE=credential.
type CredentialIssuer struct {
	Tokens *Service
	Users  *mongo.Collection
}

func (i *CredentialIssuer) Issue(ctx context.Context, claims jwt.MapClaims) (string, error) {
	email, _ := claims["email"].(string)
	password, _ := claims["password"].(string)
	if email == "" || password == "" {
		return "", ErrBadCredentials
	}

	var user models.User
	err := i.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrBadCredentials
		}
		return "", err
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrBadCredentials
	}

	return i.Tokens.Issue(jwt.MapClaims{
		"email": user.Email,
		"role":  string(user.Role),
	})
}

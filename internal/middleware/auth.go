package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harilala/medibook-api/internal/token"
)

// Context keys set for downstream handlers.
const (
	ClaimsKey       = "claims"
	DecodedEmailKey = "decodedEmail"
)

// Auth gates protected routes behind a bearer token. The token is taken
// as the second whitespace-delimited field of the Authorization header;
// the scheme prefix is discarded without being validated. On success the
// decoded claims are attached to the gin context.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, token.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		c.Set(ClaimsKey, claims)
		if email, ok := claims["email"].(string); ok {
			c.Set(DecodedEmailKey, email)
		}

		c.Next()
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/harilala/medibook-api/internal/token"
)

// IssueToken handles POST /jwt. The request body is an arbitrary claims
// payload; what the active issuer does with it depends on AUTH_MODE (the
// default passthrough issuer signs it unchanged).
func (h *Handler) IssueToken(c *gin.Context) {
	var claims jwt.MapClaims
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	tokenStr, err := h.Issuer.Issue(c.Request.Context(), claims)
	if err != nil {
		if errors.Is(err, token.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenStr})
}

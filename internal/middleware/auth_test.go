package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/harilala/medibook-api/internal/token"
)

func setupRouter(tokens *token.Service) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	handlerRan := false
	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(DecodedEmailKey)})
	})
	return r, &handlerRan
}

func TestAuthMiddleware(t *testing.T) {
	tokens := token.NewService([]byte("test-secret"), 5*time.Hour)

	valid, err := tokens.Issue(jwt.MapClaims{"email": "patient@example.com"})
	assert.NoError(t, err)

	expired, err := token.NewService([]byte("test-secret"), -time.Minute).
		Issue(jwt.MapClaims{"email": "patient@example.com"})
	assert.NoError(t, err)

	foreign, err := token.NewService([]byte("other-secret"), 5*time.Hour).
		Issue(jwt.MapClaims{"email": "patient@example.com"})
	assert.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: 401},
		{name: "no token after scheme", header: "Bearer", wantStatus: 401},
		{name: "invalid token", header: "Bearer not-a-token", wantStatus: 401},
		{name: "wrong secret", header: "Bearer " + foreign, wantStatus: 401},
		{name: "expired token", header: "Bearer " + expired, wantStatus: 401},
		{name: "valid token", header: "Bearer " + valid, wantStatus: 200},
		// The scheme prefix is discarded without validation.
		{name: "unchecked scheme", header: "Token " + valid, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, handlerRan := setupRouter(tokens)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus == 200, *handlerRan, "handler must run only on success")
			if tt.wantStatus == 200 {
				assert.Contains(t, w.Body.String(), "patient@example.com")
			} else {
				assert.Contains(t, w.Body.String(), "message")
			}
		})
	}
}

func TestAuthMiddlewareExpiredMessage(t *testing.T) {
	tokens := token.NewService([]byte("test-secret"), 5*time.Hour)
	expired, err := token.NewService([]byte("test-secret"), -time.Minute).
		Issue(jwt.MapClaims{"email": "patient@example.com"})
	assert.NoError(t, err)

	r, _ := setupRouter(tokens)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}

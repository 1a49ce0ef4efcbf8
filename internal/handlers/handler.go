package handlers

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harilala/medibook-api/internal/services"
	"github.com/harilala/medibook-api/internal/token"
)

// Handler carries the collaborators every endpoint needs: the database
// handle opened in main, the active claims issuer, and the notification
// service. All handler functions are methods on this struct.
type Handler struct {
	DB              *mongo.Database
	Issuer          token.ClaimsIssuer
	NotificationSvc *services.NotificationService
}

func NewHandler(db *mongo.Database, issuer token.ClaimsIssuer, notificationSvc *services.NotificationService) *Handler {
	return &Handler{
		DB:              db,
		Issuer:          issuer,
		NotificationSvc: notificationSvc,
	}
}

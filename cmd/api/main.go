package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harilala/medibook-api/internal/handlers"
	"github.com/harilala/medibook-api/internal/middleware"
	"github.com/harilala/medibook-api/internal/services"
	"github.com/harilala/medibook-api/internal/token"
)

// Tokens issued by /jwt are good for five hours.
const tokenTTL = 5 * time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// --- Database connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}
	db := client.Database(os.Getenv("MONGO_DATABASE"))
	log.Println("Successfully connected to MongoDB!")

	// --- Token service and claims issuer ---
	tokens := token.NewService([]byte(secret), tokenTTL)
	var issuer token.ClaimsIssuer = &token.PassthroughIssuer{Tokens: tokens}
	if os.Getenv("AUTH_MODE") == "credential" {
		issuer = &token.CredentialIssuer{Tokens: tokens, Users: db.Collection("users")}
		log.Println("Credential-verified token issuance enabled.")
	}

	notificationSvc := services.NewNotificationService()
	h := handlers.NewHandler(db, issuer, notificationSvc)

	// --- Gin router ---
	r := gin.Default()
	r.Use(cors.Default())

	auth := middleware.Auth(tokens)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "medibook server is running")
	})
	r.POST("/jwt", h.IssueToken)

	r.POST("/users", h.CreateUser)
	r.GET("/users", auth, h.GetUsers)
	r.DELETE("/users/:id", h.DeleteUser)
	r.GET("/users/admin/:email", auth, h.CheckAdmin)
	r.PUT("/users/admin/:id", h.PromoteUser)

	r.POST("/doctors", h.CreateDoctor)
	r.GET("/doctors", h.GetDoctors)
	r.GET("/doctors/top-rated", h.GetTopRatedDoctors)
	r.GET("/doctors/:id", h.GetDoctorByID)

	r.POST("/appointments", h.CreateAppointment)
	r.GET("/appointments/:email", h.GetAppointmentsByEmail)
	r.DELETE("/appointments/:id", h.DeleteAppointment)

	r.POST("/assistant", auth, h.AskAssistant)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}

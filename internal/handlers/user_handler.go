package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harilala/medibook-api/internal/middleware"
	"github.com/harilala/medibook-api/internal/models"
)

// CreateUser inserts a self-registered user. There is no uniqueness
// check on email; registering twice simply creates two records.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result, err := h.DB.Collection("users").InsertOne(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetUsers(c *gin.Context) {
	cursor, err := h.DB.Collection("users").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch users"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var users []models.User
	if err = cursor.All(c.Request.Context(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to decode users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}

	c.JSON(http.StatusOK, users)
}

// DeleteUser removes a user by id. Deleting an id that no longer exists
// is not an error; the raw result reports a zero deleted count.
func (h *Handler) DeleteUser(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user ID"})
		return
	}

	result, err := h.DB.Collection("users").DeleteOne(c.Request.Context(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckAdmin answers whether the user behind :email holds the admin
// role. Self-scoped: a caller may only ask about the email carried in
// their own token. An unknown user is simply not an admin.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	decodedEmail, exists := c.Get(middleware.DecodedEmailKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}
	if decodedEmail != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	var user models.User
	err := h.DB.Collection("users").FindOne(c.Request.Context(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, gin.H{"admin": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to find user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.Role.IsAdmin()})
}

// PromoteUser sets role=admin on the user behind :id, upserting when the
// id is unknown.
func (h *Handler) PromoteUser(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user ID"})
		return
	}

	filter := bson.M{"_id": objID}
	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	opts := options.Update().SetUpsert(true)

	result, err := h.DB.Collection("users").UpdateOne(c.Request.Context(), filter, update, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update user role"})
		return
	}

	c.JSON(http.StatusOK, result)
}

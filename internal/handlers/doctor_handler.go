package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harilala/medibook-api/internal/models"
)

// doctorEmailTaken reports whether a doctor record already exists for
// the given email. One doctor per email is the intended invariant.
func doctorEmailTaken(ctx context.Context, doctors *mongo.Collection, email string) (bool, error) {
	err := doctors.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	doctors := h.DB.Collection("doctors")
	taken, err := doctorEmailTaken(c.Request.Context(), doctors, doctor.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to check existing doctor"})
		return
	}
	if taken {
		c.JSON(http.StatusForbidden, gin.H{"message": "a doctor with this email already exists"})
		return
	}

	result, err := doctors.InsertOne(c.Request.Context(), doctor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create doctor"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// buildDoctorSearchPipeline builds the listing pipeline. The sort stage
// always comes first: sort=asc orders by ascending rating, anything else
// descending. The match stage is appended only when a search term is
// present, so the filter runs over the already-ordered set.
func buildDoctorSearchPipeline(sortOrder, search string) []bson.M {
	dir := -1
	if sortOrder == "asc" {
		dir = 1
	}

	pipeline := []bson.M{
		{"$sort": bson.M{"rating": dir}},
	}

	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		pipeline = append(pipeline, bson.M{"$match": bson.M{"$or": []bson.M{
			{"specialization": regex},
			{"doctorName": regex},
		}}})
	}

	return pipeline
}

func (h *Handler) GetDoctors(c *gin.Context) {
	pipeline := buildDoctorSearchPipeline(c.Query("sort"), c.Query("search"))

	cursor, err := h.DB.Collection("doctors").Aggregate(c.Request.Context(), pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch doctors"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var doctors []models.Doctor
	if err = cursor.All(c.Request.Context(), &doctors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to decode doctors"})
		return
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}

	c.JSON(http.StatusOK, doctors)
}

// topRatedDoctorsPipeline returns the eight best-rated doctors, trimmed
// to the card fields the landing page renders.
func topRatedDoctorsPipeline() []bson.M {
	return []bson.M{
		{"$sort": bson.M{"rating": -1}},
		{"$limit": 8},
		{"$project": bson.M{
			"_id":            0,
			"doctorName":     1,
			"specialization": 1,
			"rating":         1,
			"experience":     1,
			"image":          1,
		}},
	}
}

func (h *Handler) GetTopRatedDoctors(c *gin.Context) {
	cursor, err := h.DB.Collection("doctors").Aggregate(c.Request.Context(), topRatedDoctorsPipeline())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch top rated doctors"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var doctors []bson.M
	if err = cursor.All(c.Request.Context(), &doctors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to decode doctors"})
		return
	}
	if doctors == nil {
		doctors = make([]bson.M, 0)
	}

	c.JSON(http.StatusOK, doctors)
}

// GetDoctorByID answers the full doctor record, or null when the id is
// unknown.
func (h *Handler) GetDoctorByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid doctor ID"})
		return
	}

	var doctor models.Doctor
	err = h.DB.Collection("doctors").FindOne(c.Request.Context(), bson.M{"_id": objID}).Decode(&doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch doctor"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}

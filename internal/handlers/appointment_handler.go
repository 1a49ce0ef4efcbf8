package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harilala/medibook-api/internal/models"
)

// CreateAppointment books an appointment. doctorId is stored as the hex
// string the client sent; no referential check happens at write time.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var apt models.Appointment
	if err := c.ShouldBindJSON(&apt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result, err := h.DB.Collection("appointments").InsertOne(c.Request.Context(), apt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create appointment"})
		return
	}

	h.NotificationSvc.SendAppointmentConfirmationSMS(&apt)

	c.JSON(http.StatusOK, result)
}

// appointmentsByEmailPipeline matches a patient's appointments and joins
// each one to its doctor. The unwind stage flattens the lookup array and
// drops appointments whose doctorId resolves to nothing.
func appointmentsByEmailPipeline(email string) []bson.M {
	return []bson.M{
		{"$match": bson.M{"email": email}},
		{"$addFields": bson.M{
			"doctorObjectId": bson.M{"$toObjectId": "$doctorId"},
		}},
		{"$lookup": bson.M{
			"from":         "doctors",
			"localField":   "doctorObjectId",
			"foreignField": "_id",
			"as":           "doctor",
		}},
		{"$unwind": "$doctor"},
	}
}

func (h *Handler) GetAppointmentsByEmail(c *gin.Context) {
	pipeline := appointmentsByEmailPipeline(c.Param("email"))

	cursor, err := h.DB.Collection("appointments").Aggregate(c.Request.Context(), pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch appointments"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var appointments []bson.M
	if err = cursor.All(c.Request.Context(), &appointments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to decode appointments"})
		return
	}
	if appointments == nil {
		appointments = make([]bson.M, 0)
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid appointment ID"})
		return
	}

	result, err := h.DB.Collection("appointments").DeleteOne(c.Request.Context(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete appointment"})
		return
	}

	c.JSON(http.StatusOK, result)
}

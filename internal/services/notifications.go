package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/harilala/medibook-api/internal/models"
)

// NotificationService sends booking confirmations over SMS via Textbelt.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SendAppointmentConfirmationSMS notifies the patient that their booking
// went through. Fire-and-forget: failures are logged, never surfaced to
// the booking request.
func (s *NotificationService) SendAppointmentConfirmationSMS(apt *models.Appointment) {
	if apt.Phone == "" {
		log.Println("SMS not sent: appointment has no phone number.")
		return
	}

	smsBody := fmt.Sprintf(
		"Appointment confirmed for %s on %s at %s.",
		apt.PatientName,
		apt.AppointmentDate,
		apt.Slot,
	)

	// Send in a goroutine so it doesn't block the API response
	go sendSmsWithTextbelt(apt.Phone, smsBody)
}

func sendSmsWithTextbelt(phone, message string) {
	// Textbelt free key allows 1 SMS per day.
	textbeltKey := os.Getenv("TEXTBELT_API_KEY")

	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     textbeltKey,
	})

	resp, err := http.Post("https://textbelt.com/text", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		log.Printf("Failed to send Textbelt request for number %s: %v", phone, err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	success, _ := result["success"].(bool)
	if !success {
		errorMsg, _ := result["error"].(string)
		log.Printf("Failed to send SMS via Textbelt to %s. Reason: %s", phone, errorMsg)
	} else {
		log.Printf("Successfully sent SMS via Textbelt to %s", phone)
	}
}

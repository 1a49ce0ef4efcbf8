package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Request/response shapes for the Gemini generateContent REST API. The
// API is called directly over HTTP; there is no SDK in the dependency
// tree for this.

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
			Role  string       `json:"role"`
		} `json:"content"`
	} `json:"candidates"`
}

const assistantPrompt = `You are the booking assistant for the MediBook
appointment platform. Answer questions about finding a doctor by
specialization, booking or cancelling an appointment, and checking
existing bookings. If asked for medical advice, respond that you cannot
give medical advice and suggest booking an appointment with a doctor.
Keep answers short and polite.`

// AskAssistant relays a patient question to the Gemini API with the
// booking-assistant instructions prepended.
func (h *Handler) AskAssistant(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "expecting {\"message\": \"...\"}"})
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	url := "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent?key=" + apiKey

	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: assistantPrompt}}},
			{Role: "model", Parts: []geminiPart{{Text: "Understood. I will only help with finding doctors and managing bookings."}}},
			{Role: "user", Parts: []geminiPart{{Text: req.Message}}},
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to build assistant request"})
		return
	}

	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to build assistant request"})
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "assistant service unavailable"})
		return
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to read assistant response"})
		return
	}
	if httpResp.StatusCode != http.StatusOK {
		log.Printf("Gemini error response: %s", respBody)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "assistant service returned an error"})
		return
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to parse assistant response"})
		return
	}

	if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
		c.JSON(http.StatusOK, gin.H{"message": resp.Candidates[0].Content.Parts[0].Text})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"message": "assistant returned an empty response"})
}

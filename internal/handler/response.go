package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/voice-concierge/internal/dto"
)

// APIResponse describes the envelope used by the operational endpoints.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Speak resolves a webhook call with a sentence for speech synthesis.
// Webhook responses are always 200; failures surface as spoken text, not
// status codes.
func Speak(c echo.Context, sentence string) error {
	return c.JSON(http.StatusOK, dto.WebhookResponse{Response: sentence})
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	payload := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	return c.JSON(status, payload)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := APIResponse{
		Status:  "error",
		Message: message,
	}
	return c.JSON(status, payload)
}

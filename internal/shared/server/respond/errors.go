package respond

import (
	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/telemetry"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error logs the failure and aborts with a JSON error body.
func Error(c *gin.Context, status int, errText, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"error":      errText,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   errText,
		Message: message,
	})
}

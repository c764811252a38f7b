package http

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint replies with, matching the
// upstream API: {error, status, message, data}.
type Response struct {
	Error   bool   `json:"error"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// RespondWithSuccess sends a success envelope, optionally with data.
func RespondWithSuccess(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, Response{
		Error:   false,
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// RespondWithError sends a failure envelope.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Error:   true,
		Status:  "failure",
		Message: message,
	})
}

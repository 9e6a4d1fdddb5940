package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`   // error code (see codes.go)
	Message string `json:"message"` // human-readable message
}

// RespondWithError writes the standard error envelope.
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// Shorthand helpers for the common responses.

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

// Forbidden is used for duplicate-link and duplicate-hex conflicts. The
// Shopify admin client treats 403 as "already applied", so conflicts keep
// that status rather than 409.
func Forbidden(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusForbidden, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error. Please try again later"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// ValidationError reports missing required fields alongside the envelope.
type ValidationError struct {
	Error    string   `json:"error"`
	Message  string   `json:"message"`
	Required []string `json:"required,omitempty"`
}

// RespondWithRequiredFields rejects a request missing required fields,
// naming every field the caller must supply.
func RespondWithRequiredFields(c *gin.Context, required []string) {
	c.JSON(http.StatusBadRequest, ValidationError{
		Error:    ValidationRequired,
		Message:  "Missing required fields",
		Required: required,
	})
}

package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo carries a parsed error code and message.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError translates GORM and Postgres driver errors into an error code
// and a message safe to return to the caller. Constraint names from the
// migration are matched by substring, same as the raw driver text.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Internal server error"}
	}

	errStr := err.Error()
	errLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	// Unique constraint violation (Postgres 23505, SQLite "UNIQUE constraint failed")
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		return parseDuplicateKeyError(errLower)
	}

	// Foreign key constraint violation (23503)
	if strings.Contains(errLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "Referenced catalog entry does not exist",
		}
	}

	// Not null constraint violation (23502)
	if strings.Contains(errLower, "null value") && strings.Contains(errLower, "not-null constraint") {
		return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
	}

	// Network errors from asset fetches or S3
	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "Failed to reach an external service. Please try again later",
		}
	}

	return ErrorInfo{Code: InternalServerError, Message: defaultMessage(context)}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	switch {
	case strings.Contains(errLower, "hex_value"):
		return ErrorInfo{Code: CatalogColorExists, Message: "Color already exists"}
	case strings.Contains(errLower, "idx_product_image"):
		return ErrorInfo{Code: ConfigDuplicateLink, Message: "Image is already configured for this product"}
	case strings.Contains(errLower, "idx_product_text_color"):
		return ErrorInfo{Code: ConfigDuplicateLink, Message: "Text color is already configured for this product"}
	case strings.Contains(errLower, "idx_product_bg_color"):
		return ErrorInfo{Code: ConfigDuplicateLink, Message: "Background color is already configured for this product"}
	case strings.Contains(errLower, "idx_product_shape"):
		return ErrorInfo{Code: ConfigDuplicateLink, Message: "Shape is already configured for this product"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "Record already exists"}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)
	switch {
	case strings.Contains(contextLower, "color"):
		return "Color not found"
	case strings.Contains(contextLower, "image"):
		return "Image not found"
	case strings.Contains(contextLower, "shape"):
		return "Shape not found"
	case strings.Contains(contextLower, "configuration"):
		return "Product configuration not found"
	}
	return "Requested record not found"
}

func defaultMessage(context string) string {
	contextLower := strings.ToLower(context)
	switch {
	case strings.Contains(contextLower, "create"):
		return "Failed to create record. Please try again later"
	case strings.Contains(contextLower, "update"):
		return "Failed to update record. Please try again later"
	case strings.Contains(contextLower, "delete"):
		return "Failed to delete record. Please try again later"
	case strings.Contains(contextLower, "render"):
		return "Failed to render the preview image. Please try again later"
	}
	return "Internal server error. Please try again later"
}

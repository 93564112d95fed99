package errors

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// ValidationError represents validation errors
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined error types for common scenarios
var (
	// 400 Bad Request
	ErrInvalidRequest   = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrValidationFailed = New(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed")
	ErrMissingFile      = New(http.StatusBadRequest, "MISSING_FILE", "No report file uploaded")

	// 413 Payload Too Large
	ErrUploadTooLarge = New(http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE", "Upload exceeds the size limit")

	// 422 Unprocessable Entity
	ErrUndecodableDocument = New(http.StatusUnprocessableEntity, "UNDECODABLE_DOCUMENT", "Document bytes match no accepted encoding")

	// 500 Internal Server Error
	ErrInternalServer = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
	ErrExportFailed   = New(http.StatusInternalServerError, "EXPORT_FAILED", "Workbook export failed")
)

// InvalidRequestWithError creates an invalid request error with details
func InvalidRequestWithError(err error) *APIError {
	return NewWithDetails(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format", err.Error())
}

// ErrValidation creates a validation error with field details
func ErrValidation(field, message string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", ValidationError{
		Field:   field,
		Message: message,
	})
}

// UndecodableDocumentError reports which uploaded document failed decoding
func UndecodableDocumentError(filename string, err error) *APIError {
	return NewWithDetails(http.StatusUnprocessableEntity, "UNDECODABLE_DOCUMENT",
		fmt.Sprintf("Document %s matches no accepted encoding", filename), err.Error())
}

// ExportError creates an export failure error with details
func ExportError(err error) *APIError {
	return NewWithDetails(http.StatusInternalServerError, "EXPORT_FAILED", "Workbook export failed", err.Error())
}

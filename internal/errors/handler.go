package errors

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// ErrorHandler provides centralized error handling for the HTTP layer.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError logs the error and responds with its APIError form. Plain
// errors become a generic 500.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = NewWithDetails(http.StatusInternalServerError,
			"INTERNAL_SERVER_ERROR", "Internal server error", err.Error())
	}

	render.Render(w, r, apiErr)
}

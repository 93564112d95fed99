package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpirscli/internal/shared/testutil"
)

func TestAPIErrorRender(t *testing.T) {
	apiErr := UndecodableDocumentError("report.txt", fmt.Errorf("bad bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
	rec := httptest.NewRecorder()

	h := NewErrorHandler(testutil.DiscardLogger())
	h.HandleError(rec, req, apiErr)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNDECODABLE_DOCUMENT")
	assert.Contains(t, rec.Body.String(), "report.txt")
}

func TestHandleErrorWrapsPlainErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h := NewErrorHandler(testutil.DiscardLogger())
	h.HandleError(rec, req, fmt.Errorf("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_SERVER_ERROR")
}

func TestHandleErrorUnwrapsWrappedAPIError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrapped := fmt.Errorf("context: %w", ErrMissingFile)

	h := NewErrorHandler(testutil.DiscardLogger())
	h.HandleError(rec, req, wrapped)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_FILE")
}

func TestErrValidationDetails(t *testing.T) {
	apiErr := ErrValidation("override_date", "must be YYYY-MM-DD")
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	details, ok := apiErr.Details.(ValidationError)
	require.True(t, ok)
	assert.Equal(t, "override_date", details.Field)
}

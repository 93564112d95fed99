package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "gpirscli/internal/errors"
	"gpirscli/internal/exporter"
	"gpirscli/internal/services"
)

// defaultMaxUploadBytes caps the multipart payload when no limit is
// configured.
const defaultMaxUploadBytes = 32 << 20

// convertRequest carries the validated form fields of a conversion upload.
type convertRequest struct {
	OverrideDate string `validate:"omitempty,datetime=2006-01-02"`
}

// ConvertHandler handles document conversion HTTP requests.
type ConvertHandler struct {
	service      *services.ConvertService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
	maxUpload    int64
}

// NewConvertHandler creates a new conversion handler.
func NewConvertHandler(service *services.ConvertService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxUpload int64) *ConvertHandler {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	return &ConvertHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "convert_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
		maxUpload:    maxUpload,
	}
}

// Routes returns the conversion routes.
func (h *ConvertHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Convert)
	r.Post("/xlsx", h.ConvertToWorkbook)

	return r
}

// Convert handles POST /api/convert.
// Accepts one or more plain-text reports as multipart "files" parts and
// returns the parsed records plus per-document summaries as JSON.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	inputs, opts, err := h.parseUpload(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	result, err := h.service.Convert(r.Context(), inputs, opts)
	if err != nil {
		h.errorHandler.HandleError(w, r, h.mapServiceError(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

// ConvertToWorkbook handles POST /api/convert/xlsx.
// Same input as Convert but streams the generated workbook back as an
// attachment named per the export convention.
func (h *ConvertHandler) ConvertToWorkbook(w http.ResponseWriter, r *http.Request) {
	inputs, opts, err := h.parseUpload(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	result, err := h.service.Convert(r.Context(), inputs, opts)
	if err != nil {
		h.errorHandler.HandleError(w, r, h.mapServiceError(err))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, result.Filename))

	if err := exporter.StreamWorkbook(w, result.Records); err != nil {
		h.logger.ErrorContext(r.Context(), "workbook streaming failed",
			slog.String("error", err.Error()))
	}
}

// parseUpload decodes the multipart body into service inputs and options.
func (h *ConvertHandler) parseUpload(r *http.Request) ([]services.DocumentInput, services.ConvertOptions, error) {
	var opts services.ConvertOptions

	r.Body = http.MaxBytesReader(nil, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.Is(err, multipart.ErrMessageTooLarge) || errors.As(err, &maxBytesErr) {
			return nil, opts, apierrors.ErrUploadTooLarge
		}
		return nil, opts, apierrors.InvalidRequestWithError(err)
	}

	req := convertRequest{OverrideDate: r.FormValue("override_date")}
	if err := h.validate.Struct(req); err != nil {
		return nil, opts, apierrors.ErrValidation("override_date", "must be a YYYY-MM-DD date")
	}
	opts.OverrideDate = req.OverrideDate

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		return nil, opts, apierrors.ErrMissingFile
	}

	inputs := make([]services.DocumentInput, 0, len(files))
	for _, fh := range files {
		data, err := readUploadedFile(fh)
		if err != nil {
			return nil, opts, apierrors.InvalidRequestWithError(err)
		}
		inputs = append(inputs, services.DocumentInput{Name: fh.Filename, Data: data})
	}

	return inputs, opts, nil
}

func readUploadedFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	return io.ReadAll(f)
}

// mapServiceError translates service sentinel errors into API errors.
func (h *ConvertHandler) mapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrNoDocuments):
		return apierrors.ErrMissingFile
	case errors.Is(err, services.ErrAllDocumentsFailed):
		return apierrors.ErrUndecodableDocument
	default:
		return err
	}
}

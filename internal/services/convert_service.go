package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"gpirscli/internal/dataprocessing"
	"gpirscli/internal/exporter"
	"gpirscli/internal/infrastructure"
	"gpirscli/pkg/contracts/domain"
)

// DocumentInput is one uploaded or on-disk shortage report.
type DocumentInput struct {
	Name string
	Data []byte
}

// DocumentSummary describes how one document converted. Badge is the
// sanitized document number, falling back to the input name when the
// report carried no identifier.
type DocumentSummary struct {
	Name     string `json:"name"`
	DocNo    string `json:"doc_no"`
	Badge    string `json:"badge"`
	DateRcvd string `json:"date_rcvd"`
	Records  int    `json:"records"`
}

// DocumentFailure reports a document excluded from the batch because its
// bytes matched no accepted encoding.
type DocumentFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ConvertOptions selects the Date Rcvd source for a batch.
type ConvertOptions struct {
	// OverrideDate, when set (YYYY-MM-DD), is applied uniformly to every
	// record of every document instead of the dates parsed from headers.
	OverrideDate string
}

// ConvertResult is the outcome of one batch conversion.
type ConvertResult struct {
	Records   []domain.ShortageRecord `json:"records"`
	Documents []DocumentSummary       `json:"documents"`
	Failures  []DocumentFailure       `json:"failures,omitempty"`
	Filename  string                  `json:"filename"`
}

// ConvertService turns raw shortage report documents into one assembled
// record set.
type ConvertService struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *infrastructure.ConversionMetrics
	now     func() time.Time
}

// NewConvertService creates a conversion service. Tracer and metrics may
// be nil (CLI use); logging falls back to the default logger.
func NewConvertService(logger *slog.Logger, tracer trace.Tracer, metrics *infrastructure.ConversionMetrics) *ConvertService {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("convert")
	}
	return &ConvertService{
		logger:  logger.With(slog.String("component", "convert_service")),
		tracer:  tracer,
		metrics: metrics,
		now:     time.Now,
	}
}

// Convert processes a batch of documents sequentially: decode, metadata,
// parse, assemble, then merge into one ordered record set. Documents that
// fail decoding are excluded and reported; everything else degrades
// per-record rather than failing the batch.
func (s *ConvertService) Convert(ctx context.Context, inputs []DocumentInput, opts ConvertOptions) (*ConvertResult, error) {
	ctx, span := s.tracer.Start(ctx, "convert.batch",
		trace.WithAttributes(attribute.Int("documents", len(inputs))))
	defer span.End()

	if len(inputs) == 0 {
		return nil, ErrNoDocuments
	}

	now := s.now()
	result := &ConvertResult{}
	var batches [][]domain.ShortageRecord
	var badges, dates []string

	for _, input := range inputs {
		txt, err := dataprocessing.DecodeDocument(input.Data)
		if err != nil {
			s.logger.WarnContext(ctx, "document excluded: decode failed",
				slog.String("name", input.Name),
				slog.String("error", err.Error()))
			if s.metrics != nil {
				s.metrics.DecodeFailures.Add(ctx, 1)
			}
			result.Failures = append(result.Failures, DocumentFailure{
				Name:  input.Name,
				Error: err.Error(),
			})
			continue
		}

		meta := dataprocessing.ExtractMetadata(txt, now)
		if opts.OverrideDate != "" {
			meta.DateRcvd = opts.OverrideDate
		}

		records := dataprocessing.ParseDocument(txt, meta)
		batches = append(batches, records)

		badge := meta.DocNo
		if badge == "" {
			badge = input.Name
		}
		badges = append(badges, badge)
		dates = append(dates, meta.DateRcvd)

		result.Documents = append(result.Documents, DocumentSummary{
			Name:     input.Name,
			DocNo:    meta.DocNo,
			Badge:    badge,
			DateRcvd: meta.DateRcvd,
			Records:  len(records),
		})

		s.logger.InfoContext(ctx, "document converted",
			slog.String("name", input.Name),
			slog.String("doc_no", meta.DocNo),
			slog.String("date_rcvd", meta.DateRcvd),
			slog.Int("records", len(records)))

		if s.metrics != nil {
			s.metrics.DocumentsTotal.Add(ctx, 1)
			s.metrics.RecordsTotal.Add(ctx, int64(len(records)))
		}
	}

	if len(result.Documents) == 0 {
		return result, ErrAllDocumentsFailed
	}

	result.Records = dataprocessing.Merge(batches...)
	result.Filename = exporter.ExportFilename(badges, dates, opts.OverrideDate, now)

	span.SetAttributes(
		attribute.Int("records", len(result.Records)),
		attribute.Int("failures", len(result.Failures)),
	)

	return result, nil
}

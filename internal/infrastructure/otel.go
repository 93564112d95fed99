package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	ServiceName    = "gpirs-shortage-converter"
	ServiceVersion = "v1.0.0"
	MeterName      = "gpirscli"
)

// OTelConfig holds OpenTelemetry configuration.
type OTelConfig struct {
	TraceExporter string // "stdout", "none"
	EnableMetrics bool
	SampleRatio   float64
}

// OTelProviders holds the OpenTelemetry providers.
type OTelProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	PrometheusHTTP http.Handler
}

// DefaultOTelConfig returns the default observability configuration.
func DefaultOTelConfig() *OTelConfig {
	return &OTelConfig{
		TraceExporter: "stdout",
		EnableMetrics: true,
		SampleRatio:   1.0,
	}
}

// InitializeOTel sets up tracing and metrics providers.
func InitializeOTel(cfg *OTelConfig, logger *slog.Logger) (*OTelProviders, error) {
	if cfg == nil {
		cfg = DefaultOTelConfig()
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(ServiceVersion),
	)

	providers := &OTelProviders{}

	if cfg.TraceExporter == "stdout" {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.SampleRatio)),
		)
		providers.TracerProvider = tp
		providers.Tracer = tp.Tracer(MeterName, trace.WithInstrumentationVersion(ServiceVersion))
		otel.SetTracerProvider(tp)
	} else {
		providers.Tracer = otel.Tracer(MeterName)
	}

	if cfg.EnableMetrics {
		exporter, err := prometheus.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
		}
		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(exporter),
		)
		providers.MeterProvider = mp
		providers.Meter = mp.Meter(MeterName, metric.WithInstrumentationVersion(ServiceVersion))
		providers.PrometheusHTTP = promhttp.Handler()
		otel.SetMeterProvider(mp)
	} else {
		providers.Meter = otel.Meter(MeterName)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("OpenTelemetry initialized",
		slog.String("trace_exporter", cfg.TraceExporter),
		slog.Bool("metrics_enabled", cfg.EnableMetrics))

	return providers, nil
}

// ConversionMetrics are the application-specific instruments recorded by
// the conversion service.
type ConversionMetrics struct {
	DocumentsTotal metric.Int64Counter
	RecordsTotal   metric.Int64Counter
	DecodeFailures metric.Int64Counter
}

// CreateConversionMetrics creates the conversion instruments.
func CreateConversionMetrics(meter metric.Meter) (*ConversionMetrics, error) {
	documents, err := meter.Int64Counter(
		"conversion_documents_total",
		metric.WithDescription("Total number of shortage report documents processed"),
	)
	if err != nil {
		return nil, err
	}

	records, err := meter.Int64Counter(
		"conversion_records_total",
		metric.WithDescription("Total number of shortage records extracted"),
	)
	if err != nil {
		return nil, err
	}

	decodeFailures, err := meter.Int64Counter(
		"conversion_decode_failures_total",
		metric.WithDescription("Total number of documents rejected by the decoder"),
	)
	if err != nil {
		return nil, err
	}

	return &ConversionMetrics{
		DocumentsTotal: documents,
		RecordsTotal:   records,
		DecodeFailures: decodeFailures,
	}, nil
}

// Shutdown flushes and stops the providers.
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	if p.TracerProvider != nil {
		if err := p.TracerProvider.Shutdown(ctx); err != nil {
			return err
		}
	}
	if p.MeterProvider != nil {
		return p.MeterProvider.Shutdown(ctx)
	}
	return nil
}

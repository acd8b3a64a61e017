// Package otel configures the OpenTelemetry tracer provider from the standard
// OTEL_* environment variables.
package otel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"mdlib/internal/logging"
)

// ServiceVersion is reported as service.version on every span.
const ServiceVersion = "1.0.0"

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// settings is the subset of OTEL_* variables the library honours.
type settings struct {
	disabled    bool
	serviceName string
	protocol    string
	endpoint    string
	sampler     string
	samplerArg  string
}

func settingsFromEnv() settings {
	s := settings{
		disabled:    os.Getenv("OTEL_SDK_DISABLED") == "true",
		serviceName: getEnv("OTEL_SERVICE_NAME", "mdlib"),
		protocol:    getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
		endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"),
		sampler:     getEnv("OTEL_TRACES_SAMPLER", "parentbased_traceidratio"),
		samplerArg:  getEnv("OTEL_TRACES_SAMPLER_ARG", "1.0"),
	}
	if s.endpoint == "" {
		s.endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	return s
}

// Init installs the W3C propagators and, unless disabled, an OTLP tracer
// provider. Exporter failures degrade to the global no-op provider; only
// resource errors are returned.
func Init(ctx context.Context, log zerolog.Logger) (ShutdownFunc, error) {
	log = logging.Component(log, "tracing")
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	cfg := settingsFromEnv()
	if cfg.disabled {
		log.Info().Str("event", "tracing_configured").Bool("tracing_enabled", false).Msg("tracing disabled")
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.serviceName),
			semconv.ServiceVersion(ServiceVersion),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if errors.Is(err, resource.ErrPartialResource) {
		// Some detectors (process owner, host id) fail in minimal containers.
		log.Warn().Str("event", "tracing_resource_partial").Err(err).Msg("tracing resource incomplete")
	} else if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := newExporter(ctx, cfg.protocol)
	if err != nil {
		log.Error().Str("event", "tracing_init_failed").Err(err).Msg("tracing exporter unavailable")
		return noopShutdown, nil
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(newSampler(cfg.sampler, cfg.samplerArg)),
	)
	otel.SetTracerProvider(tp)

	log.Info().
		Str("event", "tracing_configured").
		Bool("tracing_enabled", true).
		Str("otlp_protocol", cfg.protocol).
		Str("otlp_endpoint", cfg.endpoint).
		Str("sampler", cfg.sampler).
		Str("sampler_arg", cfg.samplerArg).
		Msg("tracing enabled")

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case "grpc":
		return otlptracegrpc.New(ctx)
	case "http/protobuf":
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func newSampler(name, arg string) trace.Sampler {
	switch name {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(parseRatio(arg))
	case "parentbased_always_on":
		return trace.ParentBased(trace.AlwaysSample())
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(parseRatio(arg)))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}

// parseRatio reads a sampling ratio, defaulting to 1 when unset or malformed.
func parseRatio(arg string) float64 {
	ratio, err := strconv.ParseFloat(arg, 64)
	if err != nil || ratio < 0 || ratio > 1 {
		return 1.0
	}
	return ratio
}

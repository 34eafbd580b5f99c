// Package telemetry provides OpenTelemetry tracing for game runs.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "sorcerer"
	serviceVersion = "0.2.0"
)

// Config controls trace export. Unset fields fall back to the standard
// OTEL_EXPORTER_OTLP_* variables read by the exporter.
type Config struct {
	Enabled  bool              `env:"TELEMETRY"`
	Endpoint string            `env:"TELEMETRY_ENDPOINT"`
	Headers  map[string]string `env:"TELEMETRY_HEADERS"`

	// Honeycomb shortcut, used when no endpoint is given.
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_DATASET" envDefault:"sorcerer"`
}

const honeycombEndpoint = "https://api.honeycomb.io"

// exporterOptions resolves the endpoint and headers to export to.
func (c Config) exporterOptions() []otlptracehttp.Option {
	endpoint, headers := c.Endpoint, c.Headers
	if endpoint == "" && c.HoneycombAPIKey != "" {
		endpoint = honeycombEndpoint
		headers = map[string]string{"x-honeycomb-team": c.HoneycombAPIKey}
		if c.HoneycombDataset != "" {
			headers["x-honeycomb-dataset"] = c.HoneycombDataset
		}
	}

	var opts []otlptracehttp.Option
	if endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	}
	if len(headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(headers))
	}
	return opts
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter.
// When telemetry is disabled the global provider is left as the no-op
// default and the returned shutdown does nothing.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, cfg.exporterOptions()...)
	if err != nil {
		return nil, err
	}

	// Own resource rather than merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}

// Package trace wires OpenTelemetry tracing for ecoleta. Export is enabled
// only when OTEL_EXPORTER_OTLP_ENDPOINT is set; otherwise a no-op tracer is
// handed out so callers never need to nil-check.
package trace

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName is the tracer name used for every ecoleta span.
const InstrumentationName = "ecoleta/ibge"

// Provider owns the SDK tracer provider. A nil *Provider is valid and hands
// out no-op tracers.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPProvider creates an OTLP/HTTP provider if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
// OTEL_SERVICE_NAME overrides serviceName.
func NewOTLPProvider(ctx context.Context, serviceName string) (*Provider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	var opt otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		opt = otlptracehttp.WithEndpointURL(endpoint)
	} else {
		opt = otlptracehttp.WithEndpoint(endpoint)
	}
	exporter, err := otlptracehttp.New(ctx, opt, otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}

	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		serviceName = name
	}
	return NewProvider(sdktrace.WithBatcher(exporter), serviceName), nil
}

// NewProvider builds a Provider around an arbitrary span processor.
// Tests pass a synchronous processor over an in-memory exporter.
func NewProvider(opt sdktrace.TracerProviderOption, serviceName string) *Provider {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(InstrumentationName),
	}
}

// Tracer returns the ecoleta tracer, or a no-op tracer when disabled.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return NoopTracer()
	}
	return p.tracer
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() oteltrace.Tracer {
	return noop.NewTracerProvider().Tracer(InstrumentationName)
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Attrs maps short lookup attribute names into the ecoleta.* namespace.
func Attrs(kv map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(kv))
	for k, v := range kv {
		var key string
		switch k {
		case "uf":
			key = "ecoleta.region.code"
		case "city":
			key = "ecoleta.locality.name"
		case "request_id":
			key = "ecoleta.request.id"
		case "url":
			key = "http.url"
		default:
			key = "ecoleta." + k
		}
		attrs = append(attrs, attribute.String(key, v))
	}
	return attrs
}

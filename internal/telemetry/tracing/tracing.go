package tracing

import (
	"fmt"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("gymlog-backend")

// HoneycombSetup configures the global otel provider to export to honeycomb.
// The returned func flushes and shuts the exporter down.
func HoneycombSetup(serviceName string) (func(), error) {
	bsp := honeycomb.NewBaggageSpanProcessor()

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
		otelconfig.WithSpanProcessor(bsp),
	)
	if err != nil {
		return nil, fmt.Errorf("configure open telemetry: %w", err)
	}

	return otelShutdown, nil
}

// InstrumentRedis adds a tracing hook to the redis client.
func InstrumentRedis(rdb *redis.Client) {
	rdb.AddHook(redisotel.NewTracingHook())
}

// EndSpanWithErrCheck marks the span as failed when err is set, then ends it.
// Meant to be deferred with a pointer to a named error return.
func EndSpanWithErrCheck(span trace.Span, err *error) {
	if err != nil && *err != nil {
		span.SetStatus(codes.Error, (*err).Error())
		span.RecordError(*err)
	}
	span.End()
}

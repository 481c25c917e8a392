package infra

import (
	"context"
	"encoding/binary"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type TelemetryRessources struct {
	TracerProvider    trace.TracerProvider
	Tracer            trace.Tracer
	TextMapPropagator propagation.TextMapPropagator
}

func NoopTelemetry() TelemetryRessources {
	return TelemetryRessources{
		TracerProvider:    noop.NewTracerProvider(),
		Tracer:            noop.NewTracerProvider().Tracer(""),
		TextMapPropagator: nil,
	}
}

// InitTelemetry exports spans over OTLP/gRPC, configured by the standard OTEL_EXPORTER_OTLP_* variables.
func InitTelemetry(ctx context.Context, configuration TelemetryConfiguration, apiVersion string) (TelemetryRessources, error) {
	if !configuration.Enabled {
		return NoopTelemetry(), nil
	}

	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return TelemetryRessources{}, errors.Wrap(err, "otlptracegrpc.New error")
	}

	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(configuration.ApplicationName),
			semconv.ServiceVersion(apiVersion),
		),
	)
	if err != nil {
		return TelemetryRessources{}, errors.Wrap(err, "resource.New error")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(RouteSampler{SamplingMap: configuration.SamplingMap}),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	propagators := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagators)

	return TelemetryRessources{
		TracerProvider:    tp,
		Tracer:            tp.Tracer(configuration.ApplicationName),
		TextMapPropagator: propagators,
	}, nil
}

type SpanKind int

const DEFAULT_SAMPLING_RATE = 0.3

const (
	SpanOther SpanKind = iota
	SpanHttpIngress
	SpanDatabaseQuery
)

var defaultRoutePrefixSampling = map[string]float64{
	"/liveness": 0.0,
	"/metrics":  0.0,
	"/charts":   1.0,
}

type RouteSampler struct {
	SamplingMap TelemetrySamplingMap
}

func (RouteSampler) Description() string {
	return "orgcharts-route-sampler"
}

func (rs RouteSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	var (
		kind     SpanKind
		value    string
		prob     = DEFAULT_SAMPLING_RATE
		decision = sdktrace.Drop
	)

	psc := trace.SpanContextFromContext(p.ParentContext)

	// A child of a dropped span is dropped too.
	if psc.HasTraceID() && !psc.IsSampled() {
		return sdktrace.NeverSample().ShouldSample(p)
	}

	for _, attr := range p.Attributes {
		if attr.Key == semconv.HTTPRouteKey {
			kind = SpanHttpIngress
			value = attr.Value.AsString()
			break
		}
		if attr.Key == semconv.DBQueryTextKey {
			kind = SpanDatabaseQuery
			value = attr.Value.AsString()
			break
		}
	}

rates:
	switch kind {
	case SpanHttpIngress:
		for prefix, prefixProb := range rs.SamplingMap.HttpRoutes {
			if strings.HasPrefix(value, prefix) {
				prob = prefixProb
				break rates
			}
		}
		for prefix, prefixProb := range defaultRoutePrefixSampling {
			if strings.HasPrefix(value, prefix) {
				prob = prefixProb
				break rates
			}
		}

	case SpanDatabaseQuery:
		if strings.HasPrefix(p.Name, "prepare ") {
			prob = 0.0
			break rates
		}
		if psc.IsSampled() {
			prob = 1.0
		}

	default:
		if ratio, ok := rs.SamplingMap.SpanNames[p.Name]; ok {
			prob = ratio
			break rates
		}
		if p.Name == "pool.acquire" {
			prob = 0.0
			break rates
		}
		prob = 1.0
	}

	traceId := binary.BigEndian.Uint64(p.TraceID[:8])
	if prob >= 1.0 || traceId < uint64(prob*float64(math.MaxUint64)) {
		decision = sdktrace.RecordAndSample
	}

	return sdktrace.SamplingResult{
		Decision:   decision,
		Attributes: p.Attributes,
		Tracestate: psc.TraceState(),
	}
}

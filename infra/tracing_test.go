package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

func samplingParams(traceIdFirstByte byte, name string, attrs ...attribute.KeyValue) sdktrace.SamplingParameters {
	var traceId trace.TraceID
	traceId[0] = traceIdFirstByte
	return sdktrace.SamplingParameters{
		ParentContext: context.Background(),
		TraceID:       traceId,
		Name:          name,
		Attributes:    attrs,
	}
}

func TestRouteSampler_LivenessIsNeverSampled(t *testing.T) {
	sampler := RouteSampler{}
	result := sampler.ShouldSample(samplingParams(0x00, "GET /liveness",
		semconv.HTTPRouteKey.String("/liveness")))

	assert.Equal(t, sdktrace.Drop, result.Decision)
}

func TestRouteSampler_ChartsAreAlwaysSampled(t *testing.T) {
	sampler := RouteSampler{}
	result := sampler.ShouldSample(samplingParams(0xfe, "POST /charts",
		semconv.HTTPRouteKey.String("/charts")))

	assert.Equal(t, sdktrace.RecordAndSample, result.Decision)
}

func TestRouteSampler_ConfiguredRouteOverridesDefault(t *testing.T) {
	sampler := RouteSampler{SamplingMap: TelemetrySamplingMap{
		HttpRoutes: map[string]float64{"/charts": 0.0},
	}}
	result := sampler.ShouldSample(samplingParams(0x00, "POST /charts",
		semconv.HTTPRouteKey.String("/charts")))

	assert.Equal(t, sdktrace.Drop, result.Decision)
}

func TestRouteSampler_PoolAcquireIsDropped(t *testing.T) {
	sampler := RouteSampler{}
	result := sampler.ShouldSample(samplingParams(0x00, "pool.acquire"))

	assert.Equal(t, sdktrace.Drop, result.Decision)
}

func TestPgConfig_GetConnectionString(t *testing.T) {
	config := PgConfig{
		Hostname: "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		Database: "orgcharts",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret database=orgcharts sslmode=prefer",
		config.GetConnectionString())

	config.ConnectionString = "postgres://u:p@db:5432/orgcharts"
	assert.Equal(t, "postgres://u:p@db:5432/orgcharts", config.GetConnectionString())
}

package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown := InitTracer(Options{Enabled: false})
	assert.NoError(t, shutdown(context.Background()))
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SAMPLE_RATIO", "0.25")

	opts := OptionsFromEnv()
	assert.True(t, opts.Enabled)
	assert.Equal(t, "localhost:4318", opts.Endpoint)
	assert.Equal(t, 0.25, opts.SampleRatio)
}

func TestOptionsFromEnvIgnoresBadRatio(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("OTEL_SAMPLE_RATIO", "3")

	opts := OptionsFromEnv()
	assert.False(t, opts.Enabled)
	assert.Equal(t, 1.0, opts.SampleRatio)
}

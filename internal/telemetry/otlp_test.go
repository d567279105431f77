package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	p, err := NewProvider(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)

	// nil provider is usable
	assert.NotNil(t, p.Tracer("test"))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_Enabled(t *testing.T) {
	for _, endpoint := range []string{"localhost:4318", "http://localhost:4318"} {
		t.Run(endpoint, func(t *testing.T) {
			t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
			t.Setenv("OTEL_SERVICE_NAME", "myarticles-test")

			p, err := NewProvider(context.Background())
			require.NoError(t, err)
			require.NotNil(t, p)

			_, span := p.Tracer("test").Start(context.Background(), "noop")
			assert.True(t, span.SpanContext().IsValid())
			span.End()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			// The collector is absent; only shutdown completing matters.
			_ = p.Shutdown(ctx)
		})
	}
}

package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("requires a service name", func(t *testing.T) {
		_, err := Init(context.Background(), Config{})
		assert.Error(t, err)
	})

	t.Run("rejects unknown exporters", func(t *testing.T) {
		_, err := Init(context.Background(), Config{ServiceName: "test", Exporter: "zipkin"})
		assert.Error(t, err)
	})

	t.Run("no-op exporter records spans", func(t *testing.T) {
		shutdown, err := Init(context.Background(), Config{ServiceName: "test", Exporter: ExporterNone, SampleRatio: 1})
		require.NoError(t, err)
		defer func() { _ = shutdown(context.Background()) }()

		_, span := StartSpan(context.Background(), "unit")
		defer span.End()
		assert.True(t, span.SpanContext().IsValid())
		assert.True(t, span.IsRecording())
	})
}

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()
}

func TestExporterOptions(t *testing.T) {
	assert.Empty(t, Config{}.exporterOptions())
	assert.Len(t, Config{Endpoint: "http://localhost:4318"}.exporterOptions(), 1)
	assert.Len(t, Config{HoneycombAPIKey: "key", HoneycombDataset: "sorcerer"}.exporterOptions(), 2)
	assert.Len(t, Config{Endpoint: "http://collector:4318", Headers: map[string]string{"a": "b"}, HoneycombAPIKey: "ignored"}.exporterOptions(), 2)
}

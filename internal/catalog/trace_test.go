package catalog_test

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	return recorder
}

// lastSpanStatus returns the status of the most recent ended span called name.
func lastSpanStatus(t *testing.T, recorder *tracetest.SpanRecorder, name string) otelcodes.Code {
	t.Helper()

	ended := recorder.Ended()
	for i := len(ended) - 1; i >= 0; i-- {
		if ended[i].Name() == name {
			return ended[i].Status().Code
		}
	}

	t.Fatalf("no %q span recorded", name)
	return otelcodes.Unset
}

func TestCreateSubjectSpan(t *testing.T) {
	recorder := recordSpans(t)
	_, catalogCtx := setupTestDatabase(t)
	ctx := context.Background()

	_, err := catalogCtx.CreateSubject(ctx, "Chemistry", "CHEM")
	require.NoError(t, err)
	assert.Equal(t, otelcodes.Ok, lastSpanStatus(t, recorder, "CreateSubject"))

	_, err = catalogCtx.CreateSubject(ctx, "Chemistry", "CHEM2")
	require.ErrorIs(t, err, defs.ErrDuplicateSubject)
	assert.Equal(t, otelcodes.Error, lastSpanStatus(t, recorder, "CreateSubject"))
}

package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/madrun/internal/adapters/telemetry"
	"go.trai.ch/madrun/internal/core/ports"
	"go.trai.ch/madrun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
	var _ sdktrace.SpanProcessor = (*telemetry.Bridge)(nil)
}

func TestOTelTracer_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(recorder), "test")

	_, span := tracer.Start(context.Background(), "compile")
	span.SetAttribute("command", "odin build src/")
	span.SetAttribute("exit_code", 0)
	span.SetAttribute("sanitize", true)
	span.SetAttribute("flags", []string{"-sanitize:memory"})
	span.SetAttribute("other", struct{}{})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "compile", ended[0].Name())
	assert.Len(t, ended[0].Attributes(), 5)
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
}

func TestOTelSpan_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(recorder), "test")

	_, span := tracer.Start(context.Background(), "run")
	span.RecordError(nil)
	span.RecordError(errors.New("target program failed"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "target program failed", ended[0].Status().Description)
}

func TestBridge_LogsSpanLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var messages []string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	}).Times(2)

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(telemetry.NewBridge(mockLogger)), "test")
	_, span := tracer.Start(context.Background(), "prepare")
	span.SetAttribute("path", "target")
	span.End()

	require.Len(t, messages, 2)
	assert.Equal(t, "prepare started", messages[0])
	assert.True(t, strings.HasPrefix(messages[1], "prepare finished in "), messages[1])
	assert.True(t, strings.HasSuffix(messages[1], "(path=target)"), messages[1])
}

func TestBridge_LogsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var last string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { last = msg }).Times(2)

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(telemetry.NewBridge(mockLogger)), "test")
	_, span := tracer.Start(context.Background(), "compile")
	span.RecordError(errors.New("build failed"))
	span.End()

	assert.True(t, strings.HasPrefix(last, "compile failed after "), last)
}

func TestBridge_NilLogger(_ *testing.T) {
	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(telemetry.NewBridge(nil)), "test")
	_, span := tracer.Start(context.Background(), "run")
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/madrun/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to report finished phases to a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(s.Name() + " started")
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	msg := fmt.Sprintf("%s finished in %s", s.Name(), elapsed)
	if s.Status().Code == codes.Error {
		msg = fmt.Sprintf("%s failed after %s", s.Name(), elapsed)
	}

	if attrs := s.Attributes(); len(attrs) > 0 {
		pairs := make([]string, 0, len(attrs))
		for _, kv := range attrs {
			pairs = append(pairs, string(kv.Key)+"="+kv.Value.Emit())
		}
		slices.Sort(pairs)
		msg += " (" + strings.Join(pairs, " ") + ")"
	}

	b.logger.Debug(msg)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

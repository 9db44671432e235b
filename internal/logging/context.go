package logging

import (
	"context"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// traceIDKey is the context key for the per-invocation trace ID.
type traceIDKey struct{}

// FromContext returns the logger attached to ctx, or a disabled logger when
// none was attached. Library code should always log through this so callers
// control destination and level.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ContextWithTraceID stores a trace ID on the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID on ctx, or "" when absent.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace ID already on ctx, or mints a new
// ULID. ULIDs sort by creation time, which keeps interleaved log files
// greppable in invocation order.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0) //nolint:gosec // Trace IDs are not security sensitive.
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

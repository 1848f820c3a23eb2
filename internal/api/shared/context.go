package shared

import (
	"context"

	"github.com/google/uuid"
)

// traceIDKey is the private context key for request trace IDs.
type traceIDKey struct{}

// SetTraceID adds a fresh trace ID to the context. It is used to correlate
// log lines and error responses belonging to one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, traceIDKey{}, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDKey{}).(string)
	if !ok {
		return ""
	}
	return traceID
}

package types

import (
	"context"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// ContextKey is the type for values stored on the request context.
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
)

// GenerateRequestID returns a new lexicographically sortable request ID.
func GenerateRequestID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return "req_" + ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}

// SetRequestID stores the request ID on the context.
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

// GetRequestID returns the request ID from the context, or the empty string.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}

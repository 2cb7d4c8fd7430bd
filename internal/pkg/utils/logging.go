package utils

import (
	"context"

	"platform-client/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// EnsureRequestID returns ctx untouched when it already carries a request id,
// otherwise attaches a freshly generated one.
func EnsureRequestID(ctx context.Context) context.Context {
	if GetRequestID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, GenerateRequestID())
}

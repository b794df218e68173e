package requestcontext

import "context"

type ctxKey struct{}

// WithRequestID returns a context carrying the request id so outbound
// collaborator calls can forward it
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID returns the request id carried by the context, or an empty
// string when none is set
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

package ctxutil

import "context"

type traceDataKey struct{}

// TraceData carries the per-request identifiers attached by the HTTP layer.
type TraceData struct {
	RequestID string
	TraceID   string
}

func WithTraceData(ctx context.Context, data TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, data)
}

func GetTraceData(ctx context.Context) (TraceData, bool) {
	if ctx == nil {
		return TraceData{}, false
	}
	data, ok := ctx.Value(traceDataKey{}).(TraceData)
	return data, ok
}

// Default returns context.Background() when ctx is nil.
func Default(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

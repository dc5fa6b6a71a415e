package service

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches a correlation id to the context so log lines
// written further down the pipeline can be tied back to one request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the correlation id attached by WithRequestID, or ""
// when none was set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// logTag formats the correlation id as a log-line suffix. Callers without
// an id (the warm command, tests) get an empty suffix.
func logTag(ctx context.Context) string {
	if id := RequestID(ctx); id != "" {
		return " | request_id=" + id
	}
	return ""
}

package logging

import (
	"context"
)

type contextKey struct{}

var logDataKey = contextKey{}

// ContextWithLogData attaches per-request log data to the context.
func ContextWithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey, logData)
}

// GetLogData returns the request's log data, or nil when the request did not
// come through the logging middleware.
func GetLogData(ctx context.Context) *LogData {
	logData, ok := ctx.Value(logDataKey).(*LogData)
	if !ok {
		return nil
	}
	return logData
}

// Package logx carries a request-scoped *log.Logger through the context,
// so handlers and services log with the request id prefix set by the
// server middleware.
package logx

import (
	"context"
	"log"
)

type ctxKey string

const loggerKey ctxKey = "logger"

func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request logger, falling back to the default
// logger outside of a request (startup, cmd tools).
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}

package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var logDataKey = contextKey{}

// WithLogData returns a context carrying the given LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey, logData)
}

// GetLogData returns the LogData attached to the context. Callers outside a
// wrapped request get a fresh detached instance so logging calls stay safe.
func GetLogData(ctx context.Context) *LogData {
	if logData, ok := ctx.Value(logDataKey).(*LogData); ok {
		return logData
	}
	return NewLogData(logrus.StandardLogger())
}

// HumaMiddleware attaches a per-operation LogData to the request context and
// emits a completion entry with the overall duration.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operation := ctx.Operation().OperationID
		log.Infof("Handler.%v.Start", operation)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey, logData))
		endTimer()

		logData.Log().WithField("status", ctx.Status()).Infof("Handler.%v.Complete", operation)
	}
}

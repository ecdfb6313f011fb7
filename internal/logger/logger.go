package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context keys set by the auth middleware on the gin context
const (
	ContextKeyEmail     = "email"
	ContextKeyActorID   = "actor_id"
	ContextKeyRequestID = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the acting user, if one is known
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger.WithField("user", "anonymous")
	}

	if email, ok := ctx.Value(ContextKeyEmail).(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("user", email)
	} else {
		logger.Entry = logger.Entry.WithField("user", "anonymous")
	}
	if id, ok := ctx.Value(ContextKeyActorID).(string); ok && id != "" {
		logger.Entry = logger.Entry.WithField("actor_id", id)
	}
	if rid, ok := ctx.Value(ContextKeyRequestID).(string); ok && rid != "" {
		logger.Entry = logger.Entry.WithField("request_id", rid)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err under the standard logrus error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// WithOperation tags the entry with the domain operation being executed
func (l *Logger) WithOperation(op string) *Logger {
	return l.WithField("operation", op)
}

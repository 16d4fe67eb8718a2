package client

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier receives user-facing messages. The client calls it exactly once
// for every failed request.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, severity Severity, message string)

func (f NotifierFunc) Notify(ctx context.Context, severity Severity, message string) {
	f(ctx, severity, message)
}

// LogNotifier writes notifications to the global zerolog logger.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, severity Severity, message string) {
	log.WithLevel(severity.level()).Str("severity", string(severity)).Msg(message)
}

func (s Severity) level() zerolog.Level {
	switch s {
	case SeverityError:
		return zerolog.ErrorLevel
	case SeverityWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

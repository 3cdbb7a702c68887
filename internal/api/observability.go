package api

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// CallEvent records metadata about a single backend HTTP call.
type CallEvent struct {
	Service   string
	Operation string
	RequestID string
	Status    int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about backend calls for logging and diagnostics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events through a logrus logger at debug level.
type LogObserver struct {
	log *logrus.Logger
}

// NewLogObserver creates an Observer backed by log.
func NewLogObserver(log *logrus.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	entry := o.log.WithFields(logrus.Fields{
		"service":    event.Service,
		"operation":  event.Operation,
		"request_id": event.RequestID,
		"status":     event.Status,
		"latency_ms": event.LatencyMs,
	})
	if event.Success {
		entry.Debug("backend call complete")
		return
	}
	entry.WithField("error_code", event.ErrorCode).Warn("backend call failed")
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// ErrorCode classifies an error for call events.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrInvalidRequest):
		return "INVALID_REQUEST"
	case errors.Is(err, ErrServer):
		return "SERVER_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Package notify delivers short user-facing feedback messages for cart and
// booking outcomes. The storefront surfaces these as toasts; the server-side
// default simply records them through the structured logger.
package notify

import "github.com/nixjke/baz-car/internal/logger"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier receives outcome notifications. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (l *LogNotifier) Notify(n Notification) {
	switch n.Kind {
	case KindError:
		logger.Warn("Notification", "kind", n.Kind, "message", n.Message)
	default:
		logger.Info("Notification", "kind", n.Kind, "message", n.Message)
	}
}

// NopNotifier discards notifications. Used in tests and batch jobs.
type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}

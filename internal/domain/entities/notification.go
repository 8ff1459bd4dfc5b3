package entities

import "time"

// NotificationKind selects the toast styling in the UI layer.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
)

// DefaultNotificationDuration is applied when a notification is pushed
// without an explicit duration.
const DefaultNotificationDuration = 3 * time.Second

// Notification is a transient user-facing message with a bounded lifetime.
type Notification struct {
	ID       string           `json:"id"`
	Message  string           `json:"message"`
	Kind     NotificationKind `json:"type"`
	Duration time.Duration    `json:"duration"`
}

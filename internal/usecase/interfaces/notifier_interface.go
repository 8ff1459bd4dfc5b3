package interfaces

import "garden_manager/internal/domain/entities"

// INotifier surfaces transient user-facing messages.
//
// Implemented by the notification scheduler; use cases report validation
// and gateway failures through it exactly once per failed operation.
type INotifier interface {
	Notify(message string, kind entities.NotificationKind) string
}

// INotificationScheduler is the full scheduler surface exposed to the HTTP
// adapter: pushing, listing and dismissing live notifications.
type INotificationScheduler interface {
	INotifier
	Push(n entities.Notification) string
	Dismiss(id string)
	Active() []entities.Notification
	Close()
}

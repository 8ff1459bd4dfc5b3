package response

import (
	"garden_manager/internal/domain/entities"
)

type NotificationResponse struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	Kind       string `json:"type"`
	DurationMs int64  `json:"duration_ms"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Message:    n.Message,
		Kind:       string(n.Kind),
		DurationMs: n.Duration.Milliseconds(),
	}
}

func FromNotifications(notifications []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, FromNotification(n))
	}
	return out
}

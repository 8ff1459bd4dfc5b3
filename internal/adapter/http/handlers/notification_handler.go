package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	response "garden_manager/internal/adapter/http/dto/response"
	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase/interfaces"
	"garden_manager/pkg"
)

var (
	errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification payload", http.StatusBadRequest)
	errSchedulerClosed            = pkg.NewDomainErrorSimple("SCHEDULER_CLOSED", "Notification scheduler is shut down", http.StatusServiceUnavailable)
)

type notificationRequest struct {
	Message    string `json:"message" binding:"required"`
	Kind       string `json:"type"`
	DurationMs int64  `json:"duration_ms"`
}

// NotificationHandler exposes the live notification list and manual
// push/dismiss over HTTP. Auto-dismissal stays inside the scheduler.
type NotificationHandler struct {
	scheduler interfaces.INotificationScheduler
}

func NewNotificationHandler(scheduler interfaces.INotificationScheduler) *NotificationHandler {
	return &NotificationHandler{scheduler: scheduler}
}

// ListNotifications returns the currently visible notifications in the
// order they were pushed.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromNotifications(h.scheduler.Active()))
}

// PushNotification schedules a new notification. Kind defaults to info and
// duration to the scheduler default when omitted.
func (h *NotificationHandler) PushNotification(c *gin.Context) {
	var payload notificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	kind := entities.NotificationKind(payload.Kind)
	if payload.Kind == "" {
		kind = entities.NotificationInfo
	}

	id := h.scheduler.Push(entities.Notification{
		Message:  payload.Message,
		Kind:     kind,
		Duration: time.Duration(payload.DurationMs) * time.Millisecond,
	})
	if id == "" {
		c.JSON(errSchedulerClosed.HTTPStatus, errSchedulerClosed.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DismissNotification removes a notification immediately. Dismissing an id
// that already expired is a no-op.
func (h *NotificationHandler) DismissNotification(c *gin.Context) {
	h.scheduler.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}

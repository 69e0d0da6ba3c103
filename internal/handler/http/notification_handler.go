package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnaray/learnaray/internal/handler/http/dto"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

type NotificationHandler struct {
	notificationUsecase usecasecontract.INotificationUseCase
}

func NewNotificationHandler(notificationUsecase usecasecontract.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// GetAllNotifications returns every notification, newest first, admin only.
func (h *NotificationHandler) GetAllNotifications(c *gin.Context) {
	notifications, err := h.notificationUsecase.GetAllNotifications(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NotificationsResponse{Success: true, Notifications: notifications})
}

// MarkNotificationRead flips a notification to read and returns the refreshed
// list, admin only.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	notifications, err := h.notificationUsecase.MarkNotificationRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NotificationsResponse{Success: true, Notifications: notifications})
}

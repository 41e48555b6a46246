package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
)

// NotificationController handles notification operations
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// GetNotifications lists notifications
// @Summary List notifications
// @Description Returns all notifications newest first, with the unread count.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.NotificationListResponse} "Notifications retrieved successfully"
// @Router /notifications [get]
func (c *NotificationController) GetNotifications(ctx *gin.Context) {
	resp := c.notificationService.GetNotifications()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Notifications retrieved successfully"))
}

// MarkRead marks a notification as read
// @Summary Mark a notification read
// @Description Marks a notification as read. Marking an already-read or missing notification succeeds without effect.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.APIResponse "Notification marked read"
// @Router /notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	c.notificationService.MarkRead(ctx.Param("id"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Notification marked read"))
}

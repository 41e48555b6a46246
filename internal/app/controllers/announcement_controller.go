package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
	"github.com/hayat/parivartan/internal/middleware"
)

// AnnouncementController handles announcement operations
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// GetAnnouncements lists announcements
// @Summary List announcements
// @Description Returns all announcements, newest first.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AnnouncementResponse} "Announcements retrieved successfully"
// @Router /announcements [get]
func (c *AnnouncementController) GetAnnouncements(ctx *gin.Context) {
	items := c.announcementService.GetAnnouncements()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, "Announcements retrieved successfully"))
}

// CreateAnnouncement adds an announcement
// @Summary Create an announcement
// @Description Adds an announcement and emits a notification to everyone. Members and admins only.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement content"
// @Success 201 {object} dto.APIResponse{data=dto.AnnouncementResponse} "Announcement created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, role := middleware.CurrentActor(ctx)
	item, err := c.announcementService.CreateAnnouncement(userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item, "Announcement created"))
}

// UpdateAnnouncement edits an announcement
// @Summary Update an announcement
// @Description Merges the provided fields into the announcement. Any member or admin may edit any announcement. Updating a missing id succeeds without effect. No new notification is emitted.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Announcement updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /announcements/{id} [put]
func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	if err := c.announcementService.UpdateAnnouncement(role, ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Announcement updated"))
}

// DeleteAnnouncement removes an announcement
// @Summary Delete an announcement
// @Description Removes an announcement. Only the author or an admin may delete. Requires confirm=true. Deleting a missing id succeeds without effect.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param confirm query bool true "Must be true to confirm the deletion"
// @Success 200 {object} dto.APIResponse "Announcement deleted"
// @Failure 400 {object} dto.ErrorResponse "Missing confirmation"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	userID, role := middleware.CurrentActor(ctx)
	confirmed := ctx.Query("confirm") == "true"

	if err := c.announcementService.DeleteAnnouncement(userID, role, ctx.Param("id"), confirmed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Announcement deleted"))
}

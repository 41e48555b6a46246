package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
	"github.com/hayat/parivartan/internal/middleware"
)

// AchievementController handles achievement operations
type AchievementController struct {
	achievementService services.AchievementService
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(achievementService services.AchievementService) *AchievementController {
	return &AchievementController{
		achievementService: achievementService,
	}
}

// GetAchievements lists achievements
// @Summary List achievements
// @Description Returns all achievements ordered by occurrence date, most recent first.
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AchievementResponse} "Achievements retrieved successfully"
// @Router /achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	items := c.achievementService.GetAchievements()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, "Achievements retrieved successfully"))
}

// CreateAchievement records an achievement
// @Summary Create an achievement
// @Description Records a milestone. Members and admins only. No notification is emitted.
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAchievementRequest true "Achievement information"
// @Success 201 {object} dto.APIResponse{data=dto.AchievementResponse} "Achievement created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /achievements [post]
func (c *AchievementController) CreateAchievement(ctx *gin.Context) {
	var req dto.CreateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid achievement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, role := middleware.CurrentActor(ctx)
	item, err := c.achievementService.CreateAchievement(userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item, "Achievement created"))
}

// UpdateAchievement edits an achievement
// @Summary Update an achievement
// @Description Merges the provided fields into the achievement. Only the author or an admin may edit. A date change re-sorts the list. Updating a missing id succeeds without effect.
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Achievement ID"
// @Param request body dto.UpdateAchievementRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Achievement updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /achievements/{id} [put]
func (c *AchievementController) UpdateAchievement(ctx *gin.Context) {
	var req dto.UpdateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid achievement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, role := middleware.CurrentActor(ctx)
	if err := c.achievementService.UpdateAchievement(userID, role, ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Achievement updated"))
}

// DeleteAchievement removes an achievement
// @Summary Delete an achievement
// @Description Removes an achievement. Only the author or an admin may delete. Requires confirm=true. Deleting a missing id succeeds without effect.
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Achievement ID"
// @Param confirm query bool true "Must be true to confirm the deletion"
// @Success 200 {object} dto.APIResponse "Achievement deleted"
// @Failure 400 {object} dto.ErrorResponse "Missing confirmation"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /achievements/{id} [delete]
func (c *AchievementController) DeleteAchievement(ctx *gin.Context) {
	userID, role := middleware.CurrentActor(ctx)
	confirmed := ctx.Query("confirm") == "true"

	if err := c.achievementService.DeleteAchievement(userID, role, ctx.Param("id"), confirmed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Achievement deleted"))
}

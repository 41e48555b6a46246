package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
	"github.com/hayat/parivartan/internal/middleware"
)

// UserController handles member management operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetMembers lists all members
// @Summary List members
// @Description Returns the member directory. Passwords are never included.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Members retrieved successfully"
// @Router /users [get]
func (c *UserController) GetMembers(ctx *gin.Context) {
	members := c.userService.GetMembers()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members, "Members retrieved successfully"))
}

// AddMember creates a member account
// @Summary Add a member
// @Description Creates a MEMBER account. Admin only. Email and avatar are derived from the name and username.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMemberRequest true "Member information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Member added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin only"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Router /users [post]
func (c *UserController) AddMember(ctx *gin.Context) {
	var req dto.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid member data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	member, err := c.userService.AddMember(role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(member, "Member added"))
}

// RemoveMember deletes a member account
// @Summary Remove a member
// @Description Deletes a member account and all of their posts. Admin only, requires confirm=true. Removing a missing id succeeds without effect.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param confirm query bool true "Must be true to confirm the deletion"
// @Success 200 {object} dto.APIResponse "Member removed"
// @Failure 400 {object} dto.ErrorResponse "Missing confirmation"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin only"
// @Router /users/{id} [delete]
func (c *UserController) RemoveMember(ctx *gin.Context) {
	_, role := middleware.CurrentActor(ctx)
	confirmed := ctx.Query("confirm") == "true"

	if err := c.userService.RemoveMember(role, ctx.Param("id"), confirmed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Member removed"))
}

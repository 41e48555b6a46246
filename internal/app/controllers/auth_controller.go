package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
	"github.com/hayat/parivartan/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles user login
// @Summary Log in with username and password
// @Description Authenticates a user and returns a JWT access token. The username match is case-insensitive.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Username and password are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Login successful"))
}

// Logout ends a session
// @Summary Log out
// @Description Sessions are stateless JWTs; the endpoint exists for client symmetry. Discarding the token ends the session.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Logged out"))
}

// ViewerLogin handles read-only guest sessions
// @Summary Start a read-only viewer session
// @Description Issues a guest token without credentials. Viewers can browse all content but cannot write anything.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Viewer session started"
// @Router /auth/viewer [post]
func (c *AuthController) ViewerLogin(ctx *gin.Context) {
	resp, err := c.authService.ViewerLogin()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Viewer session started"))
}

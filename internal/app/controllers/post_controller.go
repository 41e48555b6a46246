package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
	"github.com/hayat/parivartan/internal/middleware"
)

// PostController handles community feed operations
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// GetPosts lists the community feed
// @Summary List posts
// @Description Returns all posts, newest first.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse} "Posts retrieved successfully"
// @Router /posts [get]
func (c *PostController) GetPosts(ctx *gin.Context) {
	posts := c.postService.GetPosts()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts, "Posts retrieved successfully"))
}

// CreatePost adds a post to the feed
// @Summary Create a post
// @Description Adds a post to the head of the feed. Members and admins only.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Guests cannot post"
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, role := middleware.CurrentActor(ctx)
	post, err := c.postService.CreatePost(userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post, "Post created"))
}

// DeletePost removes a post
// @Summary Delete a post
// @Description Removes a post. Authors may delete their own posts, admins any post. Requires confirm=true. Deleting a missing id succeeds without effect.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param confirm query bool true "Must be true to confirm the deletion"
// @Success 200 {object} dto.APIResponse "Post deleted"
// @Failure 400 {object} dto.ErrorResponse "Missing confirmation"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /posts/{id} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	userID, role := middleware.CurrentActor(ctx)
	confirmed := ctx.Query("confirm") == "true"

	if err := c.postService.DeletePost(userID, role, ctx.Param("id"), confirmed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Post deleted"))
}

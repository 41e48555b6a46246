package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
)

// SearchController handles content search
type SearchController struct {
	searchService services.SearchService
}

// NewSearchController creates a new SearchController
func NewSearchController(searchService services.SearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search runs a content search
// @Summary Search content
// @Description Case-insensitive substring search across posts, announcements, achievements and events. Post matches include the author's name. A blank query returns empty groups.
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse} "Search completed"
// @Router /search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	resp := c.searchService.Search(ctx.Query("q"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Search completed"))
}

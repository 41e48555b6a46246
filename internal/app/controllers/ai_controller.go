package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
	"github.com/hayat/parivartan/internal/middleware"
)

// AIController exposes the generative AI helpers. All endpoints return
// 503 when no API key is configured and 403 for guests.
type AIController struct {
	aiService services.AIService
}

// NewAIController creates a new AIController
func NewAIController(aiService services.AIService) *AIController {
	return &AIController{
		aiService: aiService,
	}
}

// GenerateText runs a free-form prompt
// @Summary Generate text
// @Description Generates free-form text from a prompt.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateTextRequest true "Prompt"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateTextResponse} "Text generated"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Guests cannot use AI tools"
// @Failure 502 {object} dto.ErrorResponse "AI request failed"
// @Failure 503 {object} dto.ErrorResponse "AI service is unavailable"
// @Router /ai/generate-text [post]
func (c *AIController) GenerateText(ctx *gin.Context) {
	var req dto.GenerateTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Prompt is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	resp, err := c.aiService.GenerateText(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Text generated"))
}

// QuickEdit rewrites draft text
// @Summary Quick edit text
// @Description Rewrites text per a named instruction: add_hashtags, fix_grammar or make_engaging.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.QuickEditRequest true "Text and instruction"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateTextResponse} "Text edited"
// @Failure 400 {object} dto.ErrorResponse "Unknown instruction"
// @Failure 503 {object} dto.ErrorResponse "AI service is unavailable"
// @Router /ai/quick-edit [post]
func (c *AIController) QuickEdit(ctx *gin.Context) {
	var req dto.QuickEditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Text and instruction are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	resp, err := c.aiService.QuickEdit(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Text edited"))
}

// DraftContent drafts a social media post
// @Summary Draft post content
// @Description Asks the NGO content-writer persona for a short, positive post on the given topic.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DraftContentRequest true "Topic"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateTextResponse} "Draft generated"
// @Failure 503 {object} dto.ErrorResponse "AI service is unavailable"
// @Router /ai/draft-content [post]
func (c *AIController) DraftContent(ctx *gin.Context) {
	var req dto.DraftContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Topic is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	resp, err := c.aiService.DraftContent(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Draft generated"))
}

// GenerateImage creates an image from a prompt
// @Summary Generate an image
// @Description Generates a PNG image from a text prompt. Returns base64 data.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateImageRequest true "Prompt and aspect ratio"
// @Success 200 {object} dto.APIResponse{data=dto.ImageResponse} "Image generated"
// @Failure 503 {object} dto.ErrorResponse "AI service is unavailable"
// @Router /ai/generate-image [post]
func (c *AIController) GenerateImage(ctx *gin.Context) {
	var req dto.GenerateImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Prompt is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	resp, err := c.aiService.GenerateImage(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Image generated"))
}

// EditImage applies an instruction to an image
// @Summary Edit an image
// @Description Applies a text instruction to a base64 image and returns the edited image.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EditImageRequest true "Image and instruction"
// @Success 200 {object} dto.APIResponse{data=dto.ImageResponse} "Image edited"
// @Failure 503 {object} dto.ErrorResponse "AI service is unavailable"
// @Router /ai/edit-image [post]
func (c *AIController) EditImage(ctx *gin.Context) {
	var req dto.EditImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image, mime type and prompt are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	resp, err := c.aiService.EditImage(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Image edited"))
}

// AnalyzeImage answers a question about an image
// @Summary Analyze an image
// @Description Answers a free-form question about a base64 image.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnalyzeImageRequest true "Image and question"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateTextResponse} "Image analyzed"
// @Failure 503 {object} dto.ErrorResponse "AI service is unavailable"
// @Router /ai/analyze-image [post]
func (c *AIController) AnalyzeImage(ctx *gin.Context) {
	var req dto.AnalyzeImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image, mime type and question are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	resp, err := c.aiService.AnalyzeImage(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Image analyzed"))
}

// GenerateSpeech converts text to audio
// @Summary Generate speech
// @Description Synthesizes spoken audio for the text. Returns base64 audio data.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SpeechRequest true "Text to speak"
// @Success 200 {object} dto.APIResponse{data=dto.SpeechResponse} "Speech generated"
// @Failure 503 {object} dto.ErrorResponse "AI service is unavailable"
// @Router /ai/generate-speech [post]
func (c *AIController) GenerateSpeech(ctx *gin.Context) {
	var req dto.SpeechRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Text is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	resp, err := c.aiService.GenerateSpeech(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Speech generated"))
}

// Transcribe converts audio to text
// @Summary Transcribe audio
// @Description Converts base64 spoken audio to text.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TranscribeRequest true "Audio to transcribe"
// @Success 200 {object} dto.APIResponse{data=dto.TranscribeResponse} "Audio transcribed"
// @Failure 503 {object} dto.ErrorResponse "AI service is unavailable"
// @Router /ai/transcribe [post]
func (c *AIController) Transcribe(ctx *gin.Context) {
	var req dto.TranscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Audio and mime type are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	resp, err := c.aiService.Transcribe(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Audio transcribed"))
}

// GroundedSearch answers a question with web grounding
// @Summary Grounded web search
// @Description Answers a query using Google Search grounding and returns the backing web sources.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GroundedSearchRequest true "Query"
// @Success 200 {object} dto.APIResponse{data=dto.GroundedSearchResponse} "Search answered"
// @Failure 503 {object} dto.ErrorResponse "AI service is unavailable"
// @Router /ai/grounded-search [post]
func (c *AIController) GroundedSearch(ctx *gin.Context) {
	var req dto.GroundedSearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Query is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	_, role := middleware.CurrentActor(ctx)
	resp, err := c.aiService.GroundedSearch(ctx.Request.Context(), role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Search answered"))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
	"github.com/hayat/parivartan/internal/middleware"
	"github.com/hayat/parivartan/internal/pkg/websocket"
)

// ChatController handles group chat operations over REST. Real-time
// delivery happens over the WebSocket endpoint; messages sent here are
// still fanned out to connected clients.
type ChatController struct {
	chatService services.ChatService
	hub         *websocket.Hub
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, hub *websocket.Hub) *ChatController {
	return &ChatController{
		chatService: chatService,
		hub:         hub,
	}
}

// GetMessages returns the chat history
// @Summary Get chat history
// @Description Returns the full chat history, oldest first. Members and admins only.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ChatMessageResponse} "Messages retrieved successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Guests have no chat access"
// @Router /chat/messages [get]
func (c *ChatController) GetMessages(ctx *gin.Context) {
	_, role := middleware.CurrentActor(ctx)
	messages, err := c.chatService.GetMessages(role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages, "Messages retrieved successfully"))
}

// SendMessage posts a chat message
// @Summary Send a chat message
// @Description Appends a message to the chat history and broadcasts it to connected WebSocket clients. Members and admins only. A message needs text, an image, or both.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendChatMessageRequest true "Message content"
// @Success 201 {object} dto.APIResponse{data=dto.ChatMessageResponse} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Guests cannot chat"
// @Router /chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid message data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, role := middleware.CurrentActor(ctx)
	message, err := c.chatService.SendMessage(userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.hub.Broadcast(*message)

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message, "Message sent"))
}

package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/auth"
	"github.com/hayat/parivartan/internal/app/models"
)

// Handler for WebSocket connections
type Handler struct {
	hub       *Hub
	persister MessagePersister
	logger    zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, persister MessagePersister, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:       hub,
		persister: persister,
		logger:    logger,
	}
}

// HandleConnection godoc
// @Summary Establish a WebSocket connection for the group chat
// @Description Upgrades HTTP connection to a WebSocket connection for real-time chat messaging. Members and admins only.
// @Tags chat, websocket
// @Security BearerAuth
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} gin.H "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} gin.H "Forbidden: role has no chat access"
// @Router /chat/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	// Get user identity from context (set by auth middleware)
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in context",
		})
		return
	}
	userID, ok := userIDValue.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	role := models.RoleGuest
	if roleValue, exists := c.Get("userRole"); exists {
		if roleStr, ok := roleValue.(string); ok {
			role = models.Role(roleStr)
		}
	}

	// The chat room is members-only; reject before upgrading
	if !auth.HasCapability(role, auth.CapabilityChat) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Chat access requires a member account",
		})
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("userID", userID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	// Create a new client and register it with the hub
	client := &Client{
		hub:       h.hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		userID:    userID,
		persister: h.persister,
		logger:    h.logger,
	}
	client.hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("userID", userID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/hayat/parivartan/internal/app/auth"
	"github.com/hayat/parivartan/internal/app/controllers"
	"github.com/hayat/parivartan/internal/middleware"
	"github.com/hayat/parivartan/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	postController *controllers.PostController,
	announcementController *controllers.AnnouncementController,
	achievementController *controllers.AchievementController,
	eventController *controllers.EventController,
	chatController *controllers.ChatController,
	notificationController *controllers.NotificationController,
	searchController *controllers.SearchController,
	aiController *controllers.AIController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/viewer", authController.ViewerLogin)
	}

	// --- Authenticated Routes Group ---
	// Everything else requires a token; viewers hold a GUEST token and
	// the write routes reject them via capability checks.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Member directory
		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetMembers)

			usersAdminProtected := users.Group("")
			usersAdminProtected.Use(authMiddleware.CapabilityRequired(appauth.CapabilityManageMembers))
			{
				usersAdminProtected.POST("", userController.AddMember)
				usersAdminProtected.DELETE("/:id", userController.RemoveMember)
			}
		}

		// Community feed
		posts := authenticated.Group("/posts")
		{
			posts.GET("", postController.GetPosts)
			posts.POST("", postController.CreatePost)
			posts.DELETE("/:id", postController.DeletePost)
		}

		// Announcements
		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.GetAnnouncements)
			announcements.POST("", announcementController.CreateAnnouncement)
			announcements.PUT("/:id", announcementController.UpdateAnnouncement)
			announcements.DELETE("/:id", announcementController.DeleteAnnouncement)
		}

		// Achievements
		achievements := authenticated.Group("/achievements")
		{
			achievements.GET("", achievementController.GetAchievements)
			achievements.POST("", achievementController.CreateAchievement)
			achievements.PUT("/:id", achievementController.UpdateAchievement)
			achievements.DELETE("/:id", achievementController.DeleteAchievement)
		}

		// Events
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.GetEvents)
			events.POST("", eventController.CreateEvent)
			events.PUT("/:id", eventController.UpdateEvent)
			events.DELETE("/:id", eventController.DeleteEvent)
		}

		// Group chat: history and send over REST, live delivery over
		// the WebSocket endpoint. Members and admins only, including
		// reads; guests have no chat access.
		chat := authenticated.Group("/chat")
		chat.Use(authMiddleware.CapabilityRequired(appauth.CapabilityChat))
		{
			chat.GET("/messages", chatController.GetMessages)
			chat.POST("/messages", chatController.SendMessage)
			chat.GET("/ws", wsHandler.HandleConnection)
		}

		// Notifications
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.GetNotifications)
			notifications.POST("/:id/read", notificationController.MarkRead)
		}

		// Search
		authenticated.GET("/search", searchController.Search)

		// AI helpers, members and admins only
		ai := authenticated.Group("/ai")
		ai.Use(authMiddleware.CapabilityRequired(appauth.CapabilityAITools))
		{
			ai.POST("/generate-text", aiController.GenerateText)
			ai.POST("/quick-edit", aiController.QuickEdit)
			ai.POST("/draft-content", aiController.DraftContent)
			ai.POST("/generate-image", aiController.GenerateImage)
			ai.POST("/edit-image", aiController.EditImage)
			ai.POST("/analyze-image", aiController.AnalyzeImage)
			ai.POST("/generate-speech", aiController.GenerateSpeech)
			ai.POST("/transcribe", aiController.Transcribe)
			ai.POST("/grounded-search", aiController.GroundedSearch)
		}
	}
}

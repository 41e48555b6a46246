package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/hayat/parivartan/internal/app/auth"
	appControllers "github.com/hayat/parivartan/internal/app/controllers"
	appRoutes "github.com/hayat/parivartan/internal/app/routes"
	appServices "github.com/hayat/parivartan/internal/app/services"
	appStore "github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/config"
	appMiddleware "github.com/hayat/parivartan/internal/middleware"
	pkgAuth "github.com/hayat/parivartan/internal/pkg/auth"
	"github.com/hayat/parivartan/internal/pkg/genai"
	"github.com/hayat/parivartan/internal/pkg/logger"
	"github.com/hayat/parivartan/internal/pkg/websocket"
	"github.com/hayat/parivartan/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	UserService            appServices.UserService
	PostService            appServices.PostService
	AnnouncementService    appServices.AnnouncementService
	AchievementService     appServices.AchievementService
	EventService           appServices.EventService
	ChatService            appServices.ChatService
	NotificationService    appServices.NotificationService
	SearchService          appServices.SearchService
	AIService              appServices.AIService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	PostController         *appControllers.PostController
	AnnouncementController *appControllers.AnnouncementController
	AchievementController  *appControllers.AchievementController
	EventController        *appControllers.EventController
	ChatController         *appControllers.ChatController
	NotificationController *appControllers.NotificationController
	SearchController       *appControllers.SearchController
	AIController           *appControllers.AIController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	JWTService             *pkgAuth.JWTService
	AuthzService           *appAuth.AuthorizationService
	Hub                    *websocket.Hub
	WSHandler              *websocket.Handler
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "console"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates the in-memory store and loads the demo data set.
// All state lives in this store and is lost on restart.
func SetupStore(lgr zerolog.Logger) *appStore.Store {
	s := appStore.New()
	seed.Populate(s)
	lgr.Info().Msg("In-memory store initialized")
	return s
}

// BuildDependencies initializes services, controllers and middleware.
func BuildDependencies(cfg *config.Config, store *appStore.Store, lgr zerolog.Logger) (*Dependencies, error) {
	// Core infrastructure
	accessExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, err
	}
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})
	authzService := appAuth.NewAuthorizationService()

	aiTimeout, err := time.ParseDuration(cfg.AI.RequestTimeout)
	if err != nil {
		return nil, err
	}
	genaiClient := genai.NewClient(genai.Config{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Timeout: aiTimeout,
	}, lgr)

	hub := websocket.NewHub(lgr)

	// Services
	authService := appServices.NewAuthService(store, jwtService, lgr)
	userService := appServices.NewUserService(store, authzService, lgr)
	postService := appServices.NewPostService(store, authzService, lgr)
	notificationService := appServices.NewNotificationService(store, lgr)
	announcementService := appServices.NewAnnouncementService(store, authzService, notificationService, lgr)
	achievementService := appServices.NewAchievementService(store, authzService, lgr)
	eventService := appServices.NewEventService(store, authzService, notificationService, lgr)
	chatService := appServices.NewChatService(store, authzService, lgr)
	searchService := appServices.NewSearchService(store, lgr)
	aiService := appServices.NewAIService(genaiClient, authzService, lgr)

	// Controllers
	wsHandler := websocket.NewHandler(hub, chatService, lgr)

	deps := &Dependencies{
		AuthService:            authService,
		UserService:            userService,
		PostService:            postService,
		AnnouncementService:    announcementService,
		AchievementService:     achievementService,
		EventService:           eventService,
		ChatService:            chatService,
		NotificationService:    notificationService,
		SearchService:          searchService,
		AIService:              aiService,
		AuthController:         appControllers.NewAuthController(authService),
		UserController:         appControllers.NewUserController(userService),
		PostController:         appControllers.NewPostController(postService),
		AnnouncementController: appControllers.NewAnnouncementController(announcementService),
		AchievementController:  appControllers.NewAchievementController(achievementService),
		EventController:        appControllers.NewEventController(eventService),
		ChatController:         appControllers.NewChatController(chatService, hub),
		NotificationController: appControllers.NewNotificationController(notificationService),
		SearchController:       appControllers.NewSearchController(searchService),
		AIController:           appControllers.NewAIController(aiService),
		AuthMiddleware:         appMiddleware.NewAuthMiddleware(jwtService),
		JWTService:             jwtService,
		AuthzService:           authzService,
		Hub:                    hub,
		WSHandler:              wsHandler,
		Logger:                 lgr,
	}

	return deps, nil
}

// SetupRouter configures the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.PostController,
		deps.AnnouncementController,
		deps.AchievementController,
		deps.EventController,
		deps.ChatController,
		deps.NotificationController,
		deps.SearchController,
		deps.AIController,
		deps.WSHandler,
		deps.AuthMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}

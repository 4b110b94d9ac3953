package routes

import (
	"time"

	"game-watchlist-backend/internal/api/handlers"
	"game-watchlist-backend/internal/api/middleware"
	"game-watchlist-backend/internal/auth"
	"game-watchlist-backend/internal/cache"
	"game-watchlist-backend/internal/config"
	"game-watchlist-backend/internal/igdb"
	"game-watchlist-backend/internal/repository"
	"game-watchlist-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	unitOfWork := repository.NewUnitOfWork(db)

	// External catalog client and optional cache
	catalogClient := igdb.NewClient(cfg.IGDBClientID, cfg.IGDBClientSecret, cfg.IGDBBaseURL, cfg.IGDBAuthURL)
	catalogCache, err := cache.New(cfg.RedisAddr, time.Duration(cfg.CacheTTLMin)*time.Minute)
	if err != nil {
		log.WithError(err).Warn("catalog cache disabled")
		catalogCache = nil
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(catalogClient, catalogCache, log)
	ingestionService := service.NewIngestionService(unitOfWork, log)
	watchlistService := service.NewWatchlistService(watchlistRepo, gameRepo, catalogClient, ingestionService, log)
	reviewService := service.NewReviewService(reviewRepo, gameRepo)

	// Initialize auth services
	tokenService := auth.NewTokenService(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenExpireMin)*time.Minute,
		time.Duration(cfg.RefreshTokenExpireDays)*24*time.Hour,
	)
	authService := auth.NewAuthService(userRepo, tokenService)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(tokenService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	userHandler := handlers.NewUserHandler(userService)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/token", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// Registration is the only unauthenticated user route
	router.POST("/users", userHandler.Register)

	// Authenticated routes
	api := router.Group("/", authMiddleware.RequireAuth())
	{
		users := api.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		admin := api.Group("/users", authMiddleware.RequireAdmin())
		{
			admin.GET("", userHandler.ListUsers)
			admin.PATCH("/:id/promote", userHandler.PromoteUser)
			admin.PATCH("/:id/demote", userHandler.DemoteUser)
		}

		catalog := api.Group("/catalog")
		{
			catalog.GET("/search", catalogHandler.Search)
			catalog.GET("/games/:id", catalogHandler.GetGame)
		}

		watchlists := api.Group("/watchlists")
		{
			watchlists.POST("", watchlistHandler.Create)
			watchlists.GET("", watchlistHandler.List)
			watchlists.GET("/:id", watchlistHandler.Get)
			watchlists.POST("/:id/games", watchlistHandler.AddGame)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", reviewHandler.Create)
			reviews.GET("/me", reviewHandler.ListMine)
			reviews.PUT("/:id", reviewHandler.Update)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}

		api.GET("/games/:id/reviews", reviewHandler.ListForGame)
	}

	return router
}

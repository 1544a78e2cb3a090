package app

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MroGG1/rpl-backend/internal/auth"
	authhandler "github.com/MroGG1/rpl-backend/internal/auth/handler"
	"github.com/MroGG1/rpl-backend/internal/auth/credentials"
	"github.com/MroGG1/rpl-backend/internal/catalog"
	cataloghandler "github.com/MroGG1/rpl-backend/internal/catalog/handler"
	"github.com/MroGG1/rpl-backend/internal/config"
	"github.com/MroGG1/rpl-backend/internal/media"
	"github.com/MroGG1/rpl-backend/internal/middleware"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	credentialStore := credentials.NewPostgresStore(infra.DB)
	sessionManager := auth.NewManager(credentialStore, infra.Sessions)

	productStore := catalog.NewPostgresStore(infra.DB)
	productService := catalog.NewService(productStore, cfg.RequireProductImage)

	mediaHandler, err := media.NewDiskHandler(cfg.UploadDir)
	if err != nil {
		return nil, nil, err
	}

	authHandler := authhandler.NewHandler(sessionManager)
	productHandler := cataloghandler.NewHandler(productService, mediaHandler)

	authMiddleware := middleware.NewAuthMiddleware(infra.Sessions)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// The admin client lives on another origin and sends the session
	// cookie, so CORS must allow credentials for that one origin.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "backend API is running"})
	})

	router.Static("/uploads", cfg.UploadDir)

	// ----------------------------
	// Product Routes
	// ----------------------------

	// One flag decides whether mutations need a session; it is applied
	// to the whole group so no endpoint can drift.
	mutating := router.Group("/")
	if cfg.CatalogRequireAuth {
		mutating.Use(middleware.GinRequireAuth(authMiddleware))
	}

	productHandler.RegisterRoutes(router, mutating)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}

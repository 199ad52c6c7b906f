package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gameatlas/backend/internal/auth"
	"gameatlas/backend/internal/catalog"
	"gameatlas/backend/internal/config"
	"gameatlas/backend/internal/database"
	"gameatlas/backend/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	// Swagger imports
	_ "gameatlas/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	config.LoadConfig()
}

// @title           GameAtlas API
// @version         1.0
// @description     Similar-game matching and catalog discovery for indie developers.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Load the catalog and keep it fresh
	catalog.Global = catalog.New(catalog.GormLoader(database.DB))
	scheduler, err := catalog.Global.Start(ctx, config.AppConfig.CatalogRefreshInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start catalog")
	}
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Catalog scheduler shutdown failed")
		}
	}()
	log.Info().Int("games", catalog.Global.Len()).Msg("Catalog loaded")

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"games":   catalog.Global.Len(),
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Matching (public)
		apiV1.POST("/match", handler.MatchGames)

		// Discovery
		discoveryRoutes := apiV1.Group("/discovery")
		{
			discoveryRoutes.POST("/search", handler.SearchDiscovery)
			discoveryRoutes.GET("/shared/:token", auth.OptionalAuthMiddleware(), handler.GetSharedDiscoveryList)

			lists := discoveryRoutes.Group("/lists")
			lists.Use(auth.AuthMiddleware())
			{
				lists.POST("", handler.CreateDiscoveryList)
				lists.GET("", handler.GetDiscoveryLists)
				lists.GET("/:id", handler.GetDiscoveryList)
				lists.PUT("/:id", handler.UpdateDiscoveryList)
				lists.DELETE("/:id", handler.DeleteDiscoveryList)
				lists.GET("/:id/results", handler.GetDiscoveryListResults)
			}
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
		}

		// Game routes
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("/:id/similar", handler.GetSimilarGames)

			gameRoutes.GET("", auth.AuthMiddleware(), handler.GetGames)
			gameRoutes.GET("/:id", auth.AuthMiddleware(), handler.GetGameByID)
			gameRoutes.POST("/:id/favorite", auth.AuthMiddleware(), handler.ToggleFavoriteGame)
		}

		apiV1.GET("/tags", handler.GetTags)

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Tags CRUD
			tags := adminRoutes.Group("/tags")
			{
				tags.POST("", handler.CreateTag)
				tags.PUT("/:id", handler.UpdateTag)
				tags.DELETE("/:id", handler.DeleteTag)
			}

			// Games CRUD (admin-only parts)
			adminGameRoutes := adminRoutes.Group("/games")
			{
				adminGameRoutes.POST("", handler.CreateGame)
				adminGameRoutes.PUT("/:id", handler.UpdateGame)
				adminGameRoutes.DELETE("/:id", handler.DeleteGame)
			}
		}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.AppConfig.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.Port,
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server is running")
		log.Info().Msgf("Swagger UI is available at http://localhost:%s/swagger/index.html", config.AppConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/projectdesk/pma_backend/internal/adapters/database/mongodb"
	"github.com/projectdesk/pma_backend/internal/adapters/mail"
	"github.com/projectdesk/pma_backend/internal/adapters/storage/localblob"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/core/services"
	"github.com/projectdesk/pma_backend/internal/handlers"
	"github.com/projectdesk/pma_backend/internal/middleware"
	"github.com/projectdesk/pma_backend/internal/platform/config"
	"github.com/projectdesk/pma_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title ProjectDesk Backend API
// @version 1.0
// @description Project management backend for clients, projects, tasks, team members and payments.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.NewMongoClient(ctx, cfg.MongoURL)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if derr := client.Disconnect(context.Background()); derr != nil {
			logger.Error("Error disconnecting from MongoDB", slog.String("error", derr.Error()))
		}
	}()
	logger.Info("MongoDB connection established.")

	repos, err := mongodb.NewRepositoryProvider(ctx, client, cfg.MongoDatabase)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	blobStore, err := localblob.NewStore(cfg.BlobDir, cfg.BlobBaseURL)
	if err != nil {
		logger.Error("Failed to initialize blob store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var sender portssvc.MailSender
	if cfg.SMTPHost != "" {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	} else {
		sender = mail.NoopSender{}
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, blobStore, sender)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Serve stored project documents under the same URLs DownloadURL hands out
	r.Static("/files", blobStore.RootDir())

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cv-intake-backend/config"
	_ "cv-intake-backend/docs" // Important for Swagger
	v1 "cv-intake-backend/internal/delivery/http/v1"
	"cv-intake-backend/internal/repository/docstore"
	"cv-intake-backend/internal/usecase"
	"cv-intake-backend/pkg/blobstore"
	"cv-intake-backend/pkg/database"
	"cv-intake-backend/pkg/keylock"
	"cv-intake-backend/pkg/logger"
	"cv-intake-backend/pkg/redis"
	"cv-intake-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           CV Intake API
// @version         1.0
// @description     Candidate-CV intake and selection backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting cv intake backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Blob Storage
	ctx := context.Background()
	blobs, err := blobstore.New(ctx, blobstore.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to create blob storage client", "error", err)
		os.Exit(1)
	}
	if err := blobs.Ping(ctx); err != nil {
		logger.Log.Warn("Blob storage bucket not reachable at startup", "error", err)
	}

	// 5. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
	}
	defer redis.Close()

	// 6. Setup Repositories
	cvRepo := docstore.NewCVRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	locks := keylock.New()

	intakeUC := usecase.NewIntakeUsecase(cvRepo, blobs, locks, validate,
		time.Duration(cfg.FileURLTTLDays)*24*time.Hour)
	selectionUC := usecase.NewSelectionUsecase(cvRepo)
	rosterUC := usecase.NewRosterUsecase(cvRepo, blobs,
		time.Duration(cfg.DownloadURLMinutes)*time.Minute)
	deletionUC := usecase.NewDeletionUsecase(cvRepo, blobs)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		IntakeUC:    intakeUC,
		SelectionUC: selectionUC,
		RosterUC:    rosterUC,
		DeletionUC:  deletionUC,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

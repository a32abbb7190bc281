// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	accountRouter "github.com/aidnetlk/aidnet/internal/account/router"
	"github.com/aidnetlk/aidnet/internal/auth"
	appConfig "github.com/aidnetlk/aidnet/internal/config"
	"github.com/aidnetlk/aidnet/internal/database"
	"github.com/aidnetlk/aidnet/internal/database/migrate"
	"github.com/aidnetlk/aidnet/internal/database/pool"
	directoryRouter "github.com/aidnetlk/aidnet/internal/directory/router"
	"github.com/aidnetlk/aidnet/internal/events"
	"github.com/aidnetlk/aidnet/internal/health"
	"github.com/aidnetlk/aidnet/internal/localize"
	"github.com/aidnetlk/aidnet/internal/mail"
	"github.com/aidnetlk/aidnet/internal/middleware"
	organizationRouter "github.com/aidnetlk/aidnet/internal/organization/router"
	requestRouter "github.com/aidnetlk/aidnet/internal/request/router"
	teamRouter "github.com/aidnetlk/aidnet/internal/team/router"
	"github.com/aidnetlk/aidnet/internal/upload"
	volunteerRouter "github.com/aidnetlk/aidnet/internal/volunteerrequest/router"
	"github.com/aidnetlk/aidnet/pkg/logger"
)

func main() {
	// A missing .env is fine in containerized deployments.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	db, err := database.Connect(ctx, database.LoadConfigFromEnv(), database.LoadRetryConfigFromEnv())
	cancel()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := pool.Setup(db, pool.LoadConfigFromEnv()); err != nil {
		zapLogger.Fatalw("failed to configure connection pool", "error", err)
	}
	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to run migrations", "error", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth)
	bus := events.NewBus()

	mailer, err := mail.NewSESMailer(context.Background(), cfg.Mail, zapLogger)
	if err != nil {
		zapLogger.Fatalw("failed to create mailer", "error", err)
	}

	signer, err := upload.NewS3Signer(context.Background(), cfg.Upload)
	if err != nil {
		zapLogger.Fatalw("failed to create upload signer", "error", err)
	}
	uploadService := upload.NewService(signer, cfg.Upload, zapLogger)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Locale())

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	localize.RegisterRoutes(r)
	accountRouter.RegisterRoutes(r, db, tokens, mailer, cfg.Auth, zapLogger)
	organizationRouter.RegisterRoutes(r, db, tokens, bus, zapLogger)
	requestRouter.RegisterRoutes(r, db, tokens, bus, zapLogger)
	volunteerRouter.RegisterRoutes(r, db, tokens, bus, zapLogger)
	teamRouter.RegisterRoutes(r, db, tokens, mailer, cfg.Auth, zapLogger)
	directoryRouter.RegisterRoutes(r, db, bus, cfg.Directory, zapLogger)
	upload.RegisterRoutes(r, tokens, uploadService, zapLogger)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Infow("server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorw("forced shutdown", "error", err)
	}
}

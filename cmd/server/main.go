package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/mail"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/modules"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/modules/characters"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/modules/genres"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/modules/media"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.LogLevel)

	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		slog.Error("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET environment variables are required")
		os.Exit(1)
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		slog.Error("access and refresh token secrets must differ")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Catalog modules
	mods := []modules.Module{
		characters.New(),
		media.New(),
		genres.New(),
	}

	var moduleModels []interface{}
	for _, m := range mods {
		moduleModels = append(moduleModels, m.Models()...)
	}
	if err := database.Migrate(moduleModels...); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Attach the system_logs error sink now that the connection exists
	pgLogHandler := logging.NewPGHandler(database.DB)
	logging.Setup(cfg.LogLevel, pgLogHandler)

	// Log retention
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cfg.LogRetention, cleanupDone)

	// Outbound mail
	var mailer mail.Mailer = mail.Noop{}
	if cfg.SendGridKey != "" {
		mailer = mail.NewSendGrid(cfg.SendGridKey, cfg.EmailFrom)
	} else {
		slog.Info("SENDGRID_KEY not set, welcome mail disabled")
	}

	// Services
	tokenService := services.NewTokenService(services.TokenConfig{
		AccessSecret:  []byte(cfg.AccessTokenSecret),
		RefreshSecret: []byte(cfg.RefreshTokenSecret),
		AccessTTL:     cfg.AccessTokenTTL,
	})
	authService := services.NewAuthService(database.DB, tokenService, mailer, cfg.RefreshTokenTTL)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: httpErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB, authHandler, healthHandler, mods)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

// httpErrorHandler is the single place where taxonomy errors become HTTP
// status codes. Handlers below it only ever return errors.
func httpErrorHandler(c *fiber.Ctx, err error) error {
	code := apperrors.StatusCode(err)
	message := apperrors.Message(err)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	requestID, _ := c.Locals("requestid").(string)

	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", requestID,
			"error", err.Error(),
		)
		message = "internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:     true,
		Message:   message,
		RequestID: requestID,
	})
}

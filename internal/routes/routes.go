package routes

import (
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/modules"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	mods []modules.Module,
) {
	app.Get("/health", healthHandler.Check)

	// API docs from the committed OpenAPI document; no codegen step.
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./api/openapi.json",
		Path:     "api-docs",
		Title:    "Characters API",
	}))

	// Auth — public
	auth := app.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh_token", authHandler.Refresh)

	jwt := middleware.JWTProtected([]byte(cfg.AccessTokenSecret))

	// Logout revokes the presented refresh token; requires a live session.
	app.Post("/auth/logout", jwt, authHandler.Logout)

	// User listing is an administrative operation.
	app.Get("/auth/users", jwt, middleware.AdminRequired(db, cfg), authHandler.ListUsers)

	// Catalog modules mount behind the JWT guard.
	protected := app.Group("", jwt)
	for _, m := range mods {
		m.RegisterRoutes(protected, db)
	}
}

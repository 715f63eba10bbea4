package media

import (
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MediaModule struct{}

func New() *MediaModule {
	return &MediaModule{}
}

func (m *MediaModule) ID() string { return "media" }

func (m *MediaModule) Models() []interface{} {
	return []interface{}{&models.Media{}}
}

// RegisterRoutes mounts media routes. The public path is /movies for parity
// with the original API surface.
func (m *MediaModule) RegisterRoutes(router fiber.Router, db *gorm.DB) {
	svc := NewService(db)
	h := NewHandler(svc)

	router.Get("/movies", h.List)
	router.Get("/movies/:uuid", h.Get)
	router.Post("/movies", h.Create)
	router.Put("/movies/:uuid", h.Update)
	router.Delete("/movies/:uuid", h.Delete)
}

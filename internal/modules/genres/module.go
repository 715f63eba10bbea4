package genres

import (
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GenresModule struct{}

func New() *GenresModule {
	return &GenresModule{}
}

func (m *GenresModule) ID() string { return "genres" }

func (m *GenresModule) Models() []interface{} {
	return []interface{}{&models.Genre{}}
}

func (m *GenresModule) RegisterRoutes(router fiber.Router, db *gorm.DB) {
	svc := NewService(db)
	h := NewHandler(svc)

	router.Get("/genres", h.List)
	router.Post("/genres", h.Create)
	router.Put("/genres/:uuid", h.Update)
	router.Delete("/genres/:uuid", h.Delete)
}

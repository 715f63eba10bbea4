package characters

import (
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CharactersModule struct{}

func New() *CharactersModule {
	return &CharactersModule{}
}

func (m *CharactersModule) ID() string { return "characters" }

func (m *CharactersModule) Models() []interface{} {
	return []interface{}{&models.Character{}}
}

func (m *CharactersModule) RegisterRoutes(router fiber.Router, db *gorm.DB) {
	svc := NewService(db)
	h := NewHandler(svc)

	router.Get("/characters", h.List)
	router.Get("/characters/:uuid", h.Get)
	router.Post("/characters", h.Create)
	router.Put("/characters/:uuid", h.Update)
	router.Delete("/characters/:uuid", h.Delete)
}

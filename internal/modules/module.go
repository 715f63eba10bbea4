package modules

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Module groups a catalog area's models, services and routes.
type Module interface {
	// ID returns the unique module identifier.
	ID() string

	// Models returns the GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the module's routes on the given router group.
	// The group already has JWT middleware applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB)
}

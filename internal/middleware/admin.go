package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired gates a route behind admin capability. A caller passes when
// their UUID is on the configured allow-list, or when their stored account
// has the admin role or an allow-listed email.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)
	adminUserIDs := parseCSV(cfg.AdminUserIDs)

	return func(c *fiber.Ctx) error {
		userUUID, err := UserUUID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "unauthorized",
			})
		}

		if contains(adminUserIDs, userUUID.String()) {
			return c.Next()
		}

		var user models.User
		if err := db.Where("uuid = ?", userUUID).First(&user).Error; err == nil {
			if user.Role == "admin" || contains(adminEmails, user.Email) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}

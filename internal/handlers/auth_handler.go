package handlers

import (
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler translates HTTP requests into AuthService calls. Failures are
// returned as taxonomy errors and mapped to status codes at the app's error
// handler, never here.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	user, err := h.auth.Signup(&req)
	if err != nil {
		return err
	}

	return c.JSON(dto.SignupResponse{
		User: dto.UserResponse{UUID: user.UUID, Email: user.Email},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	pair, err := h.auth.Login(&req)
	if err != nil {
		return err
	}
	return c.JSON(pair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	access, err := h.auth.Refresh(req.Token)
	if err != nil {
		return err
	}
	return c.JSON(dto.AccessTokenResponse{AccessToken: access})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	if err := h.auth.Revoke(req.Token); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

package genres

import (
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *fiber.Ctx) error {
	genres, err := h.service.List()
	if err != nil {
		return err
	}
	return c.JSON(genres)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req dto.CreateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	genre, err := h.service.Create(&req)
	if err != nil {
		return err
	}
	return c.JSON(genre)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return apperrors.New(apperrors.Validation, "invalid genre uuid")
	}

	var req dto.UpdateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	genre, err := h.service.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(genre)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return apperrors.New(apperrors.Validation, "invalid genre uuid")
	}

	genre, err := h.service.Delete(id)
	if err != nil {
		return err
	}
	return c.JSON(genre)
}

package media

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

// List returns image, title and creation date of matching media. Supports
// ?name= title search, ?genre= genre-uuid filter and ?order=ASC|DESC.
func (h *Handler) List(c *fiber.Ctx) error {
	filter := ListFilter{
		Title:     c.Query("name"),
		GenreUUID: c.Query("genre"),
		Order:     c.Query("order"),
	}

	media, err := h.service.List(filter)
	if err != nil {
		return err
	}

	summaries := make([]dto.MediaSummary, len(media))
	for i, m := range media {
		summaries[i] = dto.MediaSummary{Image: m.Image, Title: m.Title, CreationDate: m.CreationDate}
	}
	return c.JSON(summaries)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return apperrors.New(apperrors.Validation, "invalid media uuid")
	}

	media, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(media)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req dto.CreateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	media, err := h.service.Create(&req)
	if err != nil {
		return err
	}
	return c.JSON(media)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return apperrors.New(apperrors.Validation, "invalid media uuid")
	}

	var req dto.UpdateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	media, err := h.service.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(media)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return apperrors.New(apperrors.Validation, "invalid media uuid")
	}

	media, err := h.service.Delete(id)
	if err != nil {
		return err
	}
	return c.JSON(media)
}

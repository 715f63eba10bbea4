package characters

import (
	"strconv"

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

// List returns the uuid, image and name of matching characters.
func (h *Handler) List(c *fiber.Ctx) error {
	filter := ListFilter{Name: c.Query("name")}

	if v := c.Query("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return apperrors.New(apperrors.Validation, "age must be an integer")
		}
		filter.Age = &age
	}
	if v := c.Query("weight"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return apperrors.New(apperrors.Validation, "weight must be a number")
		}
		filter.Weight = &weight
	}

	characters, err := h.service.List(filter)
	if err != nil {
		return err
	}

	summaries := make([]dto.CharacterSummary, len(characters))
	for i, ch := range characters {
		summaries[i] = dto.CharacterSummary{UUID: ch.UUID, Image: ch.Image, Name: ch.Name}
	}
	return c.JSON(summaries)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return apperrors.New(apperrors.Validation, "invalid character uuid")
	}

	character, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(character)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req dto.CreateCharacterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	character, err := h.service.Create(&req)
	if err != nil {
		return err
	}
	return c.JSON(character)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return apperrors.New(apperrors.Validation, "invalid character uuid")
	}

	var req dto.UpdateCharacterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request body", err)
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	character, err := h.service.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(character)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return apperrors.New(apperrors.Validation, "invalid character uuid")
	}

	character, err := h.service.Delete(id)
	if err != nil {
		return err
	}
	return c.JSON(character)
}

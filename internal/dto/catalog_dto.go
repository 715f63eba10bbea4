package dto

import (
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/google/uuid"
)

// --- Characters ---

type CreateCharacterRequest struct {
	Image     string   `json:"image" validate:"required,url"`
	Name      string   `json:"name" validate:"required"`
	Age       *int     `json:"age" validate:"required,gte=0"`
	Weight    *float64 `json:"weight" validate:"required,gte=0"`
	Story     string   `json:"story" validate:"required"`
	MediaUUID string   `json:"mediaUUID" validate:"omitempty,uuid4"`
}

// UpdateCharacterRequest uses pointers so absent fields are left untouched.
// A uuid field in the payload is rejected: the uuid is immutable. An empty
// mediaUUID detaches the character from its media.
type UpdateCharacterRequest struct {
	UUID      *string  `json:"uuid"`
	Image     *string  `json:"image" validate:"omitempty,url"`
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	Age       *int     `json:"age" validate:"omitempty,gte=0"`
	Weight    *float64 `json:"weight" validate:"omitempty,gte=0"`
	Story     *string  `json:"story" validate:"omitempty,min=1"`
	MediaUUID *string  `json:"mediaUUID" validate:"omitempty,uuid4"`
}

type CharacterSummary struct {
	UUID  uuid.UUID `json:"uuid"`
	Image string    `json:"image"`
	Name  string    `json:"name"`
}

// --- Media ---

type CreateMediaRequest struct {
	Image        string   `json:"image" validate:"required,url"`
	Title        string   `json:"title" validate:"required"`
	CreationDate string   `json:"creationDate" validate:"required,datetime=2006-01-02"`
	Score        *int     `json:"score" validate:"required,gte=0,lte=5"`
	GenresUUID   []string `json:"genresUUID" validate:"omitempty,dive,uuid4"`
}

type UpdateMediaRequest struct {
	UUID         *string  `json:"uuid"`
	Image        *string  `json:"image" validate:"omitempty,url"`
	Title        *string  `json:"title" validate:"omitempty,min=1"`
	CreationDate *string  `json:"creationDate" validate:"omitempty,datetime=2006-01-02"`
	Score        *int     `json:"score" validate:"omitempty,gte=0,lte=5"`
	GenresUUID   []string `json:"genresUUID" validate:"omitempty,dive,uuid4"`
}

type MediaSummary struct {
	Image        string          `json:"image"`
	Title        string          `json:"title"`
	CreationDate models.DateOnly `json:"creationDate"`
}

// --- Genres ---

type CreateGenreRequest struct {
	Image string `json:"image" validate:"required,url"`
	Name  string `json:"name" validate:"required"`
}

type UpdateGenreRequest struct {
	UUID  *string `json:"uuid"`
	Image *string `json:"image" validate:"omitempty,url"`
	Name  *string `json:"name" validate:"omitempty,min=1"`
}

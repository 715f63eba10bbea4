package genres

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.Genre, error) {
	var genres []models.Genre
	if err := s.db.Order("name").Find(&genres).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to list genres", err)
	}
	return genres, nil
}

func (s *Service) Create(req *dto.CreateGenreRequest) (*models.Genre, error) {
	genre := models.Genre{Image: req.Image, Name: req.Name}
	if err := s.db.Create(&genre).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to create genre", err)
	}
	return &genre, nil
}

func (s *Service) Update(id uuid.UUID, req *dto.UpdateGenreRequest) (*models.Genre, error) {
	if req.UUID != nil {
		return nil, apperrors.New(apperrors.Validation, "uuid is immutable")
	}

	var genre models.Genre
	err := s.db.Where("uuid = ?", id).First(&genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "genre not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to load genre", err)
	}

	updates := map[string]interface{}{}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if len(updates) > 0 {
		if err := s.db.Model(&genre).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.Upstream, "failed to update genre", err)
		}
	}
	return &genre, nil
}

func (s *Service) Delete(id uuid.UUID) (*models.Genre, error) {
	var genre models.Genre
	err := s.db.Where("uuid = ?", id).First(&genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "genre not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to load genre", err)
	}

	if err := s.db.Delete(&genre).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to delete genre", err)
	}
	return &genre, nil
}

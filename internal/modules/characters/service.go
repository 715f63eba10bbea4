package characters

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service handles character CRUD.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListFilter narrows the character listing; nil/empty fields match everything.
type ListFilter struct {
	Name   string
	Age    *int
	Weight *float64
}

func (s *Service) List(filter ListFilter) ([]models.Character, error) {
	q := s.db.Model(&models.Character{})
	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}
	if filter.Age != nil {
		q = q.Where("age = ?", *filter.Age)
	}
	if filter.Weight != nil {
		q = q.Where("weight = ?", *filter.Weight)
	}

	var characters []models.Character
	if err := q.Order("name").Find(&characters).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to list characters", err)
	}
	return characters, nil
}

func (s *Service) Get(id uuid.UUID) (*models.Character, error) {
	var character models.Character
	err := s.db.Preload("Media").Where("uuid = ?", id).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "character not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to load character", err)
	}
	return &character, nil
}

func (s *Service) Create(req *dto.CreateCharacterRequest) (*models.Character, error) {
	character := models.Character{
		Image:  req.Image,
		Name:   req.Name,
		Age:    *req.Age,
		Weight: *req.Weight,
		Story:  req.Story,
	}

	if req.MediaUUID != "" {
		mediaID, err := s.lookupMedia(req.MediaUUID)
		if err != nil {
			return nil, err
		}
		character.MediaID = &mediaID
	}

	if err := s.db.Create(&character).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to create character", err)
	}
	return &character, nil
}

func (s *Service) Update(id uuid.UUID, req *dto.UpdateCharacterRequest) (*models.Character, error) {
	if req.UUID != nil {
		return nil, apperrors.New(apperrors.Validation, "uuid is immutable")
	}

	var character models.Character
	err := s.db.Where("uuid = ?", id).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "character not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to load character", err)
	}

	updates := map[string]interface{}{}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.Story != nil {
		updates["story"] = *req.Story
	}
	if req.MediaUUID != nil {
		if *req.MediaUUID == "" {
			updates["media_id"] = nil
		} else {
			mediaID, err := s.lookupMedia(*req.MediaUUID)
			if err != nil {
				return nil, err
			}
			updates["media_id"] = mediaID
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&character).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.Upstream, "failed to update character", err)
		}
	}
	return &character, nil
}

func (s *Service) Delete(id uuid.UUID) (*models.Character, error) {
	var character models.Character
	err := s.db.Where("uuid = ?", id).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "character not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to load character", err)
	}

	if err := s.db.Delete(&character).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to delete character", err)
	}
	return &character, nil
}

func (s *Service) lookupMedia(mediaUUID string) (uint, error) {
	var media models.Media
	if err := s.db.Where("uuid = ?", mediaUUID).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.New(apperrors.Validation, "unknown media uuid")
		}
		return 0, apperrors.Wrap(apperrors.Upstream, "failed to look up media", err)
	}
	return media.ID, nil
}

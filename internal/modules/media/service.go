package media

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service handles media CRUD and genre association.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListFilter narrows the media listing. Order is "ASC" or "DESC" by
// creation date; anything else falls back to DESC.
type ListFilter struct {
	Title     string
	GenreUUID string
	Order     string
}

func (s *Service) List(filter ListFilter) ([]models.Media, error) {
	q := s.db.Model(&models.Media{})
	if filter.Title != "" {
		q = q.Where("media.title = ?", filter.Title)
	}
	if filter.GenreUUID != "" {
		q = q.Joins("JOIN media_genres ON media_genres.media_id = media.id").
			Joins("JOIN genres ON genres.id = media_genres.genre_id").
			Where("genres.uuid = ?", filter.GenreUUID)
	}

	order := "media.creation_date DESC"
	if filter.Order == "ASC" {
		order = "media.creation_date ASC"
	}

	var media []models.Media
	if err := q.Order(order).Find(&media).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to list media", err)
	}
	return media, nil
}

func (s *Service) Get(id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := s.db.Preload("Characters").Preload("Genres").Where("uuid = ?", id).First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "media not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to load media", err)
	}
	return &media, nil
}

// Create persists a media entry and links the given genres. Unknown genre
// uuids are skipped silently.
func (s *Service) Create(req *dto.CreateMediaRequest) (*models.Media, error) {
	date, err := models.ParseDate(req.CreationDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Validation, "invalid creation date", err)
	}

	media := models.Media{
		Image:        req.Image,
		Title:        req.Title,
		CreationDate: date,
		Score:        *req.Score,
	}

	if len(req.GenresUUID) > 0 {
		genres, err := s.findGenres(req.GenresUUID)
		if err != nil {
			return nil, err
		}
		media.Genres = genres
	}

	if err := s.db.Create(&media).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to create media", err)
	}
	return &media, nil
}

func (s *Service) Update(id uuid.UUID, req *dto.UpdateMediaRequest) (*models.Media, error) {
	if req.UUID != nil {
		return nil, apperrors.New(apperrors.Validation, "uuid is immutable")
	}

	var media models.Media
	err := s.db.Where("uuid = ?", id).First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "media not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to load media", err)
	}

	updates := map[string]interface{}{}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.CreationDate != nil {
		date, err := models.ParseDate(*req.CreationDate)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.Validation, "invalid creation date", err)
		}
		updates["creation_date"] = date
	}
	if req.Score != nil {
		updates["score"] = *req.Score
	}

	if len(updates) > 0 {
		if err := s.db.Model(&media).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.Upstream, "failed to update media", err)
		}
	}

	if req.GenresUUID != nil {
		genres, err := s.findGenres(req.GenresUUID)
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(&media).Association("Genres").Replace(genres); err != nil {
			return nil, apperrors.Wrap(apperrors.Upstream, "failed to update genres", err)
		}
	}

	return &media, nil
}

func (s *Service) Delete(id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := s.db.Where("uuid = ?", id).First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "media not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to load media", err)
	}

	if err := s.db.Delete(&media).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to delete media", err)
	}
	return &media, nil
}

func (s *Service) findGenres(uuids []string) ([]models.Genre, error) {
	var genres []models.Genre
	if err := s.db.Where("uuid IN ?", uuids).Find(&genres).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to look up genres", err)
	}
	return genres, nil
}

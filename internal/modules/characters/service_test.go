package characters

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Genre{}, &models.Media{}, &models.Character{}))
	return NewService(db)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func createCharacter(t *testing.T, svc *Service, name string, age int, weight float64) *models.Character {
	t.Helper()
	c, err := svc.Create(&dto.CreateCharacterRequest{
		Image:  "https://img.example.com/" + name + ".png",
		Name:   name,
		Age:    intPtr(age),
		Weight: floatPtr(weight),
		Story:  name + " does things",
	})
	require.NoError(t, err)
	return c
}

func TestCreateAssignsUUID(t *testing.T) {
	svc := newTestService(t)

	c := createCharacter(t, svc, "Simba", 3, 120.5)
	assert.NotEqual(t, uuid.Nil, c.UUID)
	assert.Equal(t, "Simba", c.Name)
}

func TestListFilters(t *testing.T) {
	svc := newTestService(t)
	createCharacter(t, svc, "Simba", 3, 120.5)
	createCharacter(t, svc, "Nala", 3, 95.0)
	createCharacter(t, svc, "Scar", 10, 110.0)

	all, err := svc.List(ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byName, err := svc.List(ListFilter{Name: "Nala"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Nala", byName[0].Name)

	byAge, err := svc.List(ListFilter{Age: intPtr(3)})
	require.NoError(t, err)
	assert.Len(t, byAge, 2)

	byWeight, err := svc.List(ListFilter{Weight: floatPtr(110.0)})
	require.NoError(t, err)
	require.Len(t, byWeight, 1)
	assert.Equal(t, "Scar", byWeight[0].Name)

	none, err := svc.List(ListFilter{Name: "Mufasa"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPreloadsMedia(t *testing.T) {
	svc := newTestService(t)

	media := models.Media{
		Image:        "https://img.example.com/lion-king.png",
		Title:        "The Lion King",
		CreationDate: mustDate(t, "1994-06-24"),
		Score:        5,
	}
	require.NoError(t, svc.db.Create(&media).Error)

	c, err := svc.Create(&dto.CreateCharacterRequest{
		Image:     "https://img.example.com/simba.png",
		Name:      "Simba",
		Age:       intPtr(3),
		Weight:    floatPtr(120.5),
		Story:     "becomes king",
		MediaUUID: media.UUID.String(),
	})
	require.NoError(t, err)

	got, err := svc.Get(c.UUID)
	require.NoError(t, err)
	require.NotNil(t, got.Media)
	assert.Equal(t, "The Lion King", got.Media.Title)
}

func TestCreateRejectsUnknownMedia(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&dto.CreateCharacterRequest{
		Image:     "https://img.example.com/simba.png",
		Name:      "Simba",
		Age:       intPtr(3),
		Weight:    floatPtr(120.5),
		Story:     "becomes king",
		MediaUUID: uuid.New().String(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.Validation))
}

func TestUpdatePartial(t *testing.T) {
	svc := newTestService(t)
	c := createCharacter(t, svc, "Simba", 3, 120.5)

	updated, err := svc.Update(c.UUID, &dto.UpdateCharacterRequest{Age: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Age)
	assert.Equal(t, "Simba", updated.Name)
	assert.Equal(t, c.UUID, updated.UUID)
}

func TestUpdateEmptyMediaUUIDDetachesMedia(t *testing.T) {
	svc := newTestService(t)

	media := models.Media{
		Image:        "https://img.example.com/lion-king.png",
		Title:        "The Lion King",
		CreationDate: mustDate(t, "1994-06-24"),
		Score:        5,
	}
	require.NoError(t, svc.db.Create(&media).Error)

	c, err := svc.Create(&dto.CreateCharacterRequest{
		Image:     "https://img.example.com/simba.png",
		Name:      "Simba",
		Age:       intPtr(3),
		Weight:    floatPtr(120.5),
		Story:     "becomes king",
		MediaUUID: media.UUID.String(),
	})
	require.NoError(t, err)

	_, err = svc.Update(c.UUID, &dto.UpdateCharacterRequest{MediaUUID: strPtr("")})
	require.NoError(t, err)

	got, err := svc.Get(c.UUID)
	require.NoError(t, err)
	assert.Nil(t, got.MediaID)
	assert.Nil(t, got.Media)
}

func TestUpdateRejectsUUIDField(t *testing.T) {
	svc := newTestService(t)
	c := createCharacter(t, svc, "Simba", 3, 120.5)

	_, err := svc.Update(c.UUID, &dto.UpdateCharacterRequest{
		UUID: strPtr(uuid.New().String()),
		Name: strPtr("Imposter"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.Validation))
}

func TestUpdateUnknownCharacter(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(uuid.New(), &dto.UpdateCharacterRequest{Name: strPtr("Ghost")})
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
}

func TestDeleteReturnsDeletedEntity(t *testing.T) {
	svc := newTestService(t)
	c := createCharacter(t, svc, "Simba", 3, 120.5)

	deleted, err := svc.Delete(c.UUID)
	require.NoError(t, err)
	assert.Equal(t, c.UUID, deleted.UUID)

	_, err = svc.Get(c.UUID)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
}

func mustDate(t *testing.T, s string) models.DateOnly {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

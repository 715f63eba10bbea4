package media

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

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func createMedia(t *testing.T, svc *Service, title, date string, genreUUIDs ...string) *models.Media {
	t.Helper()
	m, err := svc.Create(&dto.CreateMediaRequest{
		Image:        "https://img.example.com/" + title + ".png",
		Title:        title,
		CreationDate: date,
		Score:        intPtr(4),
		GenresUUID:   genreUUIDs,
	})
	require.NoError(t, err)
	return m
}

func createGenre(t *testing.T, db *gorm.DB, name string) *models.Genre {
	t.Helper()
	g := models.Genre{Image: "https://img.example.com/" + name + ".png", Name: name}
	require.NoError(t, db.Create(&g).Error)
	return &g
}

func TestCreateParsesDateAndLinksGenres(t *testing.T) {
	svc := newTestService(t)
	animation := createGenre(t, svc.db, "Animation")

	m := createMedia(t, svc, "The Lion King", "1994-06-24", animation.UUID.String())
	assert.NotEqual(t, uuid.Nil, m.UUID)
	assert.Equal(t, "1994-06-24", m.CreationDate.String())

	got, err := svc.Get(m.UUID)
	require.NoError(t, err)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Animation", got.Genres[0].Name)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&dto.CreateMediaRequest{
		Image:        "https://img.example.com/x.png",
		Title:        "Broken",
		CreationDate: "24/06/1994",
		Score:        intPtr(3),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.Validation))
}

func TestCreateSkipsUnknownGenres(t *testing.T) {
	svc := newTestService(t)
	animation := createGenre(t, svc.db, "Animation")

	m := createMedia(t, svc, "The Lion King", "1994-06-24",
		animation.UUID.String(), uuid.New().String())

	got, err := svc.Get(m.UUID)
	require.NoError(t, err)
	assert.Len(t, got.Genres, 1)
}

func TestListOrderAndTitleFilter(t *testing.T) {
	svc := newTestService(t)
	createMedia(t, svc, "Aladdin", "1992-11-25")
	createMedia(t, svc, "The Lion King", "1994-06-24")
	createMedia(t, svc, "Hercules", "1997-06-27")

	// default order: newest first
	all, err := svc.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Hercules", all[0].Title)
	assert.Equal(t, "Aladdin", all[2].Title)

	asc, err := svc.List(ListFilter{Order: "ASC"})
	require.NoError(t, err)
	assert.Equal(t, "Aladdin", asc[0].Title)

	byTitle, err := svc.List(ListFilter{Title: "Hercules"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Hercules", byTitle[0].Title)
}

func TestListGenreFilterUsesJoin(t *testing.T) {
	svc := newTestService(t)
	animation := createGenre(t, svc.db, "Animation")
	drama := createGenre(t, svc.db, "Drama")

	createMedia(t, svc, "The Lion King", "1994-06-24", animation.UUID.String())
	createMedia(t, svc, "Hamlet", "1996-12-25", drama.UUID.String())
	createMedia(t, svc, "Fantasia", "1940-11-13")

	animated, err := svc.List(ListFilter{GenreUUID: animation.UUID.String()})
	require.NoError(t, err)
	require.Len(t, animated, 1)
	assert.Equal(t, "The Lion King", animated[0].Title)

	none, err := svc.List(ListFilter{GenreUUID: uuid.New().String()})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPreloadsCharacters(t *testing.T) {
	svc := newTestService(t)
	m := createMedia(t, svc, "The Lion King", "1994-06-24")

	character := models.Character{
		Image:   "https://img.example.com/simba.png",
		Name:    "Simba",
		Age:     3,
		Weight:  120.5,
		Story:   "becomes king",
		MediaID: &m.ID,
	}
	require.NoError(t, svc.db.Create(&character).Error)

	got, err := svc.Get(m.UUID)
	require.NoError(t, err)
	require.Len(t, got.Characters, 1)
	assert.Equal(t, "Simba", got.Characters[0].Name)
}

func TestUpdatePartialAndGenreReplace(t *testing.T) {
	svc := newTestService(t)
	animation := createGenre(t, svc.db, "Animation")
	drama := createGenre(t, svc.db, "Drama")
	m := createMedia(t, svc, "The Lion King", "1994-06-24", animation.UUID.String())

	updated, err := svc.Update(m.UUID, &dto.UpdateMediaRequest{
		Score:      intPtr(5),
		GenresUUID: []string{drama.UUID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, m.UUID, updated.UUID)

	got, err := svc.Get(m.UUID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Score)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Drama", got.Genres[0].Name)
}

func TestUpdateRejectsUUIDField(t *testing.T) {
	svc := newTestService(t)
	m := createMedia(t, svc, "The Lion King", "1994-06-24")

	_, err := svc.Update(m.UUID, &dto.UpdateMediaRequest{UUID: strPtr(uuid.New().String())})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.Validation))
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := newTestService(t)
	m := createMedia(t, svc, "The Lion King", "1994-06-24")

	deleted, err := svc.Delete(m.UUID)
	require.NoError(t, err)
	assert.Equal(t, m.UUID, deleted.UUID)

	_, err = svc.Get(m.UUID)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
}

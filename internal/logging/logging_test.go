package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type captureHandler struct {
	level    slog.Level
	messages []string
}

func (h *captureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	h.messages = append(h.messages, record.Message)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestFanoutRespectsSinkLevels(t *testing.T) {
	all := &captureHandler{level: slog.LevelInfo}
	errorsOnly := &captureHandler{level: slog.LevelError}
	log := slog.New(newFanout([]slog.Handler{all, errorsOnly}))

	log.Info("routine")
	log.Error("broken")

	assert.Equal(t, []string{"routine", "broken"}, all.messages)
	assert.Equal(t, []string{"broken"}, errorsOnly.messages)
}

func TestPGHandlerOnlyAcceptsErrors(t *testing.T) {
	h := &PGHandler{}
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPruneRemovesOnlyStaleRows(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))

	stale := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: time.Now().Add(-31 * 24 * time.Hour),
		Level:     "ERROR",
		Message:   "old failure",
	}
	fresh := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: time.Now().Add(-time.Hour),
		Level:     "ERROR",
		Message:   "recent failure",
	}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&fresh).Error)

	prune(db, 720*time.Hour)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "recent failure", remaining[0].Message)
}

package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup prunes system_logs rows older than the retention window. The
// first sweep runs at startup, then once a day until done is closed.
func StartCleanup(db *gorm.DB, retention time.Duration, done chan struct{}) {
	go func() {
		prune(db, retention)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				prune(db, retention)
			case <-done:
				return
			}
		}
	}()
}

func prune(db *gorm.DB, retention time.Duration) {
	cutoff := time.Now().Add(-retention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("system_logs prune failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("system_logs pruned", "deleted", result.RowsAffected)
	}
}

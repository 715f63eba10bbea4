package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a store-backed allow-list entry. Only the SHA-256 hash of
// the issued token is persisted; removal or the revoked flag withdraws it.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserUUID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_uuid"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Character belongs to at most one Media.
type Character struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	UUID      uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Image     string         `gorm:"not null" json:"image"`
	Name      string         `gorm:"size:255;not null;index" json:"name"`
	Age       int            `gorm:"not null" json:"age"`
	Weight    float64        `gorm:"not null" json:"weight"`
	Story     string         `gorm:"type:text;not null" json:"story"`
	MediaID   *uint          `gorm:"index" json:"-"`
	Media     *Media         `gorm:"foreignKey:MediaID" json:"media,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Character) TableName() string { return "characters" }

func (ch *Character) BeforeCreate(*gorm.DB) error {
	if ch.UUID == uuid.Nil {
		ch.UUID = uuid.New()
	}
	return nil
}

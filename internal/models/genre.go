package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Genre struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	UUID      uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Image     string         `gorm:"not null" json:"image"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Media     []Media        `gorm:"many2many:media_genres" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Genre) TableName() string { return "genres" }

func (g *Genre) BeforeCreate(*gorm.DB) error {
	if g.UUID == uuid.Nil {
		g.UUID = uuid.New()
	}
	return nil
}

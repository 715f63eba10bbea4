package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media is a movie or series. Genres are linked through the media_genres
// join table.
type Media struct {
	ID           uint           `gorm:"primaryKey" json:"-"`
	UUID         uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Image        string         `gorm:"not null" json:"image"`
	Title        string         `gorm:"size:255;not null;index" json:"title"`
	CreationDate DateOnly       `gorm:"type:date;not null" json:"creationDate"`
	Score        int            `gorm:"not null" json:"score"`
	Characters   []Character    `gorm:"foreignKey:MediaID" json:"characters,omitempty"`
	Genres       []Genre        `gorm:"many2many:media_genres" json:"genres,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName pins the table name; the default pluralizer mangles "media".
func (Media) TableName() string { return "media" }

func (m *Media) BeforeCreate(*gorm.DB) error {
	if m.UUID == uuid.Nil {
		m.UUID = uuid.New()
	}
	return nil
}

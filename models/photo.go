package models

import (
	"time"

	"gorm.io/gorm"
)

// Photo belongs to an album and stores the image by URL only.
type Photo struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AlbumID      uint      `gorm:"index;not null" json:"album_id"`
	Title        string    `gorm:"size:128" json:"title"`
	URL          string    `gorm:"size:128" json:"url"`
	ThumbnailURL string    `gorm:"type:text" json:"thumbnail_url"`
	Date         time.Time `json:"date"`

	Album Album `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	return nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents an article written by a user.
type Post struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"index;not null" json:"user_id"`
	Title  string    `gorm:"size:128" json:"title"`
	Body   string    `gorm:"type:text" json:"body"`
	Date   time.Time `json:"date"`

	User     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Comments []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// BeforeCreate defaults the publication date to the creation time.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	return nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a reply to a post. Name and email are carried inline,
// so anonymous visitors can comment without an account.
type Comment struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	PostID uint      `gorm:"index;not null" json:"post_id"`
	Name   string    `gorm:"size:128" json:"name"`
	Email  string    `gorm:"size:128" json:"email"`
	Body   string    `gorm:"type:text" json:"body"`
	Date   time.Time `json:"date"`

	Post Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	return nil
}

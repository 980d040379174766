package models

import (
	"time"

	"gorm.io/gorm"
)

// Album groups photos under a user.
type Album struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"index;not null" json:"user_id"`
	Title  string    `gorm:"size:128" json:"title"`
	Date   time.Time `json:"date"`

	User   User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Photos []Photo `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (a *Album) BeforeCreate(tx *gorm.DB) error {
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	return nil
}

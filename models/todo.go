package models

import (
	"time"

	"gorm.io/gorm"
)

// Todo is a dated task owned by a user.
type Todo struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"index;not null" json:"user_id"`
	Title  string    `gorm:"size:128" json:"title"`
	Date   time.Time `json:"date"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return nil
}

package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents an account with the flat address and company columns the
// JSONPlaceholder user payload denormalizes into. Passwords are stored as
// bcrypt hashes only.
type User struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	Name               string `gorm:"size:128;not null" json:"name"`
	Username           string `gorm:"size:128;uniqueIndex" json:"username"`
	Email              string `gorm:"size:128;uniqueIndex" json:"email"`
	Street             string `gorm:"size:128" json:"street"`
	Suite              string `gorm:"size:128" json:"suite"`
	City               string `gorm:"size:128" json:"city"`
	Zipcode            string `gorm:"size:128" json:"zipcode"`
	Lat                string `gorm:"size:128" json:"lat"`
	Lng                string `gorm:"size:128" json:"lng"`
	Phone              string `gorm:"size:128" json:"phone"`
	Website            string `gorm:"size:128" json:"website"`
	CompanyName        string `gorm:"size:128" json:"company_name"`
	CompanyCatchPhrase string `gorm:"size:128" json:"company_catch_phrase"`
	CompanyBS          string `gorm:"size:128;column:company_bs" json:"company_bs"`
	PasswordHash       string `gorm:"size:128" json:"-"`

	MemberSince time.Time `json:"member_since"`
	LastSeen    time.Time `json:"last_seen"`
	AvatarHash  string    `gorm:"size:32" json:"-"`

	Posts  []Post  `json:"-"`
	Albums []Album `json:"-"`
	Todos  []Todo  `json:"-"`
}

// BeforeCreate defaults membership timestamps and the avatar hash.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.MemberSince.IsZero() {
		u.MemberSince = now
	}
	if u.LastSeen.IsZero() {
		u.LastSeen = now
	}
	if u.AvatarHash == "" && u.Email != "" {
		u.AvatarHash = EmailHash(u.Email)
	}
	return nil
}

// Gravatar builds the secure gravatar URL for the user's email. Value
// receiver so templates can call it while ranging over user slices.
func (u User) Gravatar(size int) string {
	hash := u.AvatarHash
	if hash == "" {
		hash = EmailHash(u.Email)
	}
	return fmt.Sprintf("https://secure.gravatar.com/avatar/%s?s=%d&d=identicon&r=g", hash, size)
}

// EmailHash returns the md5 hex digest of the lowercased email, as the
// gravatar protocol requires.
func EmailHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(email)))
	return hex.EncodeToString(sum[:])
}

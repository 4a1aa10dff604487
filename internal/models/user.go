package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a registered user of the finance tracker. Every other
// resource belongs to exactly one user.
type User struct {
	DefaultModel
	Username     string `json:"username" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)

	if u.Username == "" {
		return ErrUsernameEmpty
	}

	return nil
}

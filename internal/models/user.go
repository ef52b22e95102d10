package models

import "gorm.io/gorm"

// User is an admin account. There is no self-registration; users are only
// created by the seed/reset endpoint.
type User struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

package models

import "gorm.io/gorm"

// Contact is a customer inquiry. Rows are append-only; there is no update or
// delete path.
type Contact struct {
	gorm.Model

	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Phone   string `gorm:"not null"`
	Subject string `gorm:"not null"`
	Message string `gorm:"not null"`
}

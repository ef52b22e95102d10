package models

import "gorm.io/gorm"

// VehicleImage is one photo of a vehicle. Position preserves the order the
// URLs were submitted in; the whole set is replaced when a listing is edited.
type VehicleImage struct {
	gorm.Model

	VehicleID uint   `gorm:"not null;index"`
	URL       string `gorm:"not null"`
	Position  int    `gorm:"not null;default:0"`

	// Relationships
	Vehicle Vehicle `gorm:"foreignKey:VehicleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vehicle is a dealership listing. The monthly payment and mileage are stored
// as structured values; display strings are rendered at the response boundary.
type Vehicle struct {
	gorm.Model

	Make          string          `gorm:"not null"`
	ModelName     string          `gorm:"column:model;not null"`
	Year          int             `gorm:"not null;index"`
	Mileage       int             `gorm:"not null"`
	MileageUnit   string          `gorm:"not null;default:'km'"`
	MonthlyAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency      string          `gorm:"not null;default:'R'"`
	Transmission  string
	Features      string
	IsSold        bool `gorm:"not null;default:false"`
	SoldDate      *time.Time

	// Relationships
	Images []VehicleImage `gorm:"foreignKey:VehicleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/karoo-dev/karoo/db"
	"github.com/karoo-dev/karoo/internal/models"
	"github.com/karoo-dev/karoo/internal/money"
)

type seedVehicle struct {
	Make           string
	ModelName      string
	Year           int
	Mileage        string
	MonthlyPayment string
	Transmission   string
	Features       string
	IsSold         bool
	Images         []string
}

// The demo dataset. Mileage and payment strings are in the legacy display
// form and parsed into structured values on insert.
var seedVehicles = []seedVehicle{
	{
		Make:           "Volkswagen",
		ModelName:      "Polo Vivo 1.4 Trendline",
		Year:           2017,
		Mileage:        "81,000",
		MonthlyPayment: "R2,600 per month",
		Transmission:   "Manual",
		Features:       "DEKRA approved",
		IsSold:         true,
		Images:         []string{"https://placehold.co/600x400/e2e8f0/1e40af?text=VW+Polo+Vivo+2017"},
	},
	{
		Make:           "Hyundai",
		ModelName:      "Atos Motion",
		Year:           2021,
		Mileage:        "45,000",
		MonthlyPayment: "R2,700 per month",
		Transmission:   "Manual",
		Features:       "Air Conditioning, Power Steering",
		Images: []string{
			"https://placehold.co/600x400/e2e8f0/1e40af?text=Hyundai+Atos+2021",
			"https://placehold.co/600x400/e2e8f0/1e40af?text=Hyundai+Atos+Interior",
		},
	},
	{
		Make:           "Volkswagen",
		ModelName:      "Polo Comfortline",
		Year:           2020,
		Mileage:        "165,000",
		MonthlyPayment: "R3,200 per month",
		Transmission:   "Manual",
		Features:       "Full service history",
		Images:         []string{"https://placehold.co/600x400/e2e8f0/1e40af?text=VW+Polo+Comfortline"},
	},
	{
		Make:           "Volkswagen",
		ModelName:      "Polo",
		Year:           2024,
		Mileage:        "17,000",
		MonthlyPayment: "R4,995 per month",
		Transmission:   "Manual",
		Features:       "Demo Model",
		Images: []string{
			"https://placehold.co/600x400/e2e8f0/1e40af?text=VW+Polo+2024+Demo",
			"https://placehold.co/600x400/e2e8f0/1e40af?text=VW+Polo+2024+Interior",
		},
	},
	{
		Make:           "Volkswagen",
		ModelName:      "Polo Vivo Auto",
		Year:           2019,
		Mileage:        "55,000",
		MonthlyPayment: "R2,100 per month",
		Transmission:   "Automatic",
		Features:       "Extremely neat, DEKRA approved",
		Images:         []string{"https://placehold.co/600x400/e2e8f0/1e40af?text=VW+Polo+Vivo+Auto"},
	},
}

// SeedDatabase destructively resets the catalog: clears vehicles, images and
// users, then loads the demo dataset and the admin account.
func SeedDatabase(ctx *gin.Context) {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.VehicleImage{}, &models.Vehicle{}, &models.User{}} {
			if err := tx.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := models.User{
			Username:     "admin",
			PasswordHash: string(passwordHash),
		}

		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		for _, sv := range seedVehicles {
			amount, err := money.ParseAmount(sv.MonthlyPayment)
			if err != nil {
				return err
			}

			mileage, err := money.ParseMileage(sv.Mileage)
			if err != nil {
				return err
			}

			vehicle := models.Vehicle{
				Make:          sv.Make,
				ModelName:     sv.ModelName,
				Year:          sv.Year,
				Mileage:       mileage,
				MileageUnit:   money.DefaultMileageUnit,
				MonthlyAmount: amount,
				Currency:      money.DefaultCurrency,
				Transmission:  sv.Transmission,
				Features:      sv.Features,
				IsSold:        sv.IsSold,
			}

			if sv.IsSold {
				now := time.Now()
				vehicle.SoldDate = &now
			}

			if err := tx.Create(&vehicle).Error; err != nil {
				return err
			}

			if err := insertImages(tx, vehicle.ID, sv.Images); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		zap.S().Errorw("failed to seed database", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database seeded successfully",
	})
}

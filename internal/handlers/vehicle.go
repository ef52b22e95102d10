package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/karoo-dev/karoo/db"
	"github.com/karoo-dev/karoo/internal/catalog"
	"github.com/karoo-dev/karoo/internal/models"
	"github.com/karoo-dev/karoo/internal/money"
	"github.com/karoo-dev/karoo/internal/utils"
)

// VehicleRequest is the create/update body. Mileage and monthlyPayment accept
// either plain numbers or legacy display strings ("81,000",
// "R2,600 per month").
type VehicleRequest struct {
	Make           string        `json:"make" binding:"required"`
	ModelName      string        `json:"model" binding:"required"`
	Year           int           `json:"year" binding:"required"`
	Mileage        money.Mileage `json:"mileage" binding:"required"`
	MonthlyPayment money.Amount  `json:"monthlyPayment" binding:"required"`
	Currency       string        `json:"currency"`
	Transmission   string        `json:"transmission"`
	Features       string        `json:"features"`
	ImageURLs      []string      `json:"imageUrls"`
}

type ToggleSoldRequest struct {
	IsSold *bool `json:"isSold" binding:"required"`
}

type VehicleImageResponse struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

type VehicleResponse struct {
	ID                   uint                   `json:"id"`
	Make                 string                 `json:"make"`
	Model                string                 `json:"model"`
	Year                 int                    `json:"year"`
	Mileage              string                 `json:"mileage"`
	MileageValue         int                    `json:"mileageValue"`
	MileageUnit          string                 `json:"mileageUnit"`
	MonthlyPayment       string                 `json:"monthlyPayment"`
	MonthlyPaymentAmount decimal.Decimal        `json:"monthlyPaymentAmount"`
	Currency             string                 `json:"currency"`
	Transmission         string                 `json:"transmission,omitempty"`
	Features             string                 `json:"features,omitempty"`
	IsSold               bool                   `json:"isSold"`
	SoldDate             *time.Time             `json:"soldDate"`
	Images               []VehicleImageResponse `json:"images"`
}

func toVehicleResponse(v models.Vehicle) VehicleResponse {
	images := make([]VehicleImageResponse, 0, len(v.Images))

	for _, img := range v.Images {
		images = append(images, VehicleImageResponse{ID: img.ID, URL: img.URL})
	}

	return VehicleResponse{
		ID:                   v.ID,
		Make:                 v.Make,
		Model:                v.ModelName,
		Year:                 v.Year,
		Mileage:              money.FormatMileage(v.Mileage),
		MileageValue:         v.Mileage,
		MileageUnit:          v.MileageUnit,
		MonthlyPayment:       money.FormatMonthly(v.MonthlyAmount, v.Currency),
		MonthlyPaymentAmount: v.MonthlyAmount,
		Currency:             v.Currency,
		Transmission:         v.Transmission,
		Features:             v.Features,
		IsSold:               v.IsSold,
		SoldDate:             v.SoldDate,
		Images:               images,
	}
}

// preloadImages loads a vehicle's images in their insertion order.
func preloadImages(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC, id ASC")
	})
}

// ListVehicles returns every vehicle with its images, newest model year
// first. The storefront's filter state may be passed as query parameters
// (search, sort, show_sold); with no parameters the full catalog is returned.
func ListVehicles(ctx *gin.Context) {
	var vehicles []models.Vehicle

	if err := preloadImages(db.DB).Order("year DESC").Find(&vehicles).Error; err != nil {
		zap.S().Errorw("failed to list vehicles", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicles"})
		return
	}

	search := ctx.Query("search")
	sortKey := ctx.Query("sort")
	_, hasShowSold := ctx.GetQuery("show_sold")

	if search != "" || sortKey != "" || hasShowSold {
		vehicles = catalog.Apply(vehicles, catalog.Filter{
			Search:   search,
			Sort:     sortKey,
			ShowSold: ctx.Query("show_sold") == "true",
		})
	}

	response := make([]VehicleResponse, 0, len(vehicles))

	for _, v := range vehicles {
		response = append(response, toVehicleResponse(v))
	}

	ctx.JSON(http.StatusOK, response)
}

// GetVehicle returns a single vehicle with its images.
func GetVehicle(ctx *gin.Context) {
	id, err := utils.GetVehicleID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var vehicle models.Vehicle

	if err := preloadImages(db.DB).First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			zap.S().Errorw("failed to fetch vehicle", "id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicle"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

// CreateVehicle inserts a new listing and its image rows in one transaction,
// preserving the submitted image order.
func CreateVehicle(ctx *gin.Context) {
	var body VehicleRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	currency := body.Currency
	if currency == "" {
		currency = money.DefaultCurrency
	}

	vehicle := models.Vehicle{
		Make:          body.Make,
		ModelName:     body.ModelName,
		Year:          body.Year,
		Mileage:       int(body.Mileage),
		MileageUnit:   money.DefaultMileageUnit,
		MonthlyAmount: body.MonthlyPayment.Decimal,
		Currency:      currency,
		Transmission:  body.Transmission,
		Features:      body.Features,
		IsSold:        false,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vehicle).Error; err != nil {
			return err
		}

		return insertImages(tx, vehicle.ID, body.ImageURLs)
	})

	if err != nil {
		zap.S().Errorw("failed to create vehicle", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}

	if err := preloadImages(db.DB).First(&vehicle, vehicle.ID).Error; err != nil {
		zap.S().Errorw("failed to reload vehicle", "id", vehicle.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}

	ctx.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

// UpdateVehicle updates the scalar fields and replaces the image set
// wholesale, in one transaction. Sold status is untouched; that goes through
// ToggleSold.
func UpdateVehicle(ctx *gin.Context) {
	id, err := utils.GetVehicleID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body VehicleRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	var vehicle models.Vehicle

	if err := db.DB.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			zap.S().Errorw("failed to fetch vehicle", "id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		}
		return
	}

	currency := body.Currency
	if currency == "" {
		currency = vehicle.Currency
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"make":           body.Make,
			"model":          body.ModelName,
			"year":           body.Year,
			"mileage":        int(body.Mileage),
			"monthly_amount": body.MonthlyPayment.Decimal,
			"currency":       currency,
			"transmission":   body.Transmission,
			"features":       body.Features,
		}

		if err := tx.Model(&vehicle).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("vehicle_id = ?", vehicle.ID).Delete(&models.VehicleImage{}).Error; err != nil {
			return err
		}

		return insertImages(tx, vehicle.ID, body.ImageURLs)
	})

	if err != nil {
		zap.S().Errorw("failed to update vehicle", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}

	if err := preloadImages(db.DB).First(&vehicle, vehicle.ID).Error; err != nil {
		zap.S().Errorw("failed to reload vehicle", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}

	ctx.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

// DeleteVehicle removes a listing and its images in one transaction.
func DeleteVehicle(ctx *gin.Context) {
	id, err := utils.GetVehicleID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var vehicle models.Vehicle

	if err := db.DB.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			zap.S().Errorw("failed to fetch vehicle", "id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		}
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("vehicle_id = ?", vehicle.ID).Delete(&models.VehicleImage{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&vehicle).Error
	})

	if err != nil {
		zap.S().Errorw("failed to delete vehicle", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleSold sets a listing's sold flag. Marking sold stamps the sold date
// with the current time; marking available clears it.
func ToggleSold(ctx *gin.Context) {
	id, err := utils.GetVehicleID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body ToggleSoldRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "isSold is required"})
		return
	}

	var vehicle models.Vehicle

	if err := db.DB.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			zap.S().Errorw("failed to fetch vehicle", "id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle sold status"})
		}
		return
	}

	updates := map[string]interface{}{
		"is_sold":   *body.IsSold,
		"sold_date": nil,
	}

	if *body.IsSold {
		updates["sold_date"] = time.Now()
	}

	if err := db.DB.Model(&vehicle).Updates(updates).Error; err != nil {
		zap.S().Errorw("failed to update sold status", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle sold status"})
		return
	}

	if err := preloadImages(db.DB).First(&vehicle, vehicle.ID).Error; err != nil {
		zap.S().Errorw("failed to reload vehicle", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle sold status"})
		return
	}

	ctx.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

func insertImages(tx *gorm.DB, vehicleID uint, urls []string) error {
	for i, url := range urls {
		image := models.VehicleImage{
			VehicleID: vehicleID,
			URL:       url,
			Position:  i,
		}

		if err := tx.Create(&image).Error; err != nil {
			return err
		}
	}

	return nil
}

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/karoo-dev/karoo/db"
	"github.com/karoo-dev/karoo/internal/handlers"
	"github.com/karoo-dev/karoo/internal/models"
)

func TestSeedDatabaseLoadsDemoDataset(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	rr := doJSON(t, r, http.MethodPost, "/api/seed", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var vehicles []models.Vehicle
	require.NoError(t, db.DB.Find(&vehicles).Error)
	assert.Len(t, vehicles, 5)

	var admin models.User
	require.NoError(t, db.DB.Where("username = ?", "admin").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password123")))

	// The sold demo vehicle carries a sold date.
	var sold models.Vehicle
	require.NoError(t, db.DB.Where("is_sold = ?", true).First(&sold).Error)
	assert.NotNil(t, sold.SoldDate)

	// Legacy price strings were parsed into structured amounts.
	var vivo models.Vehicle
	require.NoError(t, db.DB.Where("model = ?", "Polo Vivo 1.4 Trendline").First(&vivo).Error)
	assert.Equal(t, "2600", vivo.MonthlyAmount.String())
	assert.Equal(t, 81000, vivo.Mileage)
}

func TestSeedDatabaseReplacesExistingData(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	createVehicle(t, r, validVehicleBody())

	rr := doJSON(t, r, http.MethodPost, "/api/seed", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodPost, "/api/seed", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var vehicleCount, userCount, orphanImages int64
	require.NoError(t, db.DB.Model(&models.Vehicle{}).Count(&vehicleCount).Error)
	require.NoError(t, db.DB.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.DB.Unscoped().Model(&models.VehicleImage{}).
		Joins("LEFT JOIN vehicles ON vehicles.id = vehicle_images.vehicle_id").
		Where("vehicles.id IS NULL").
		Count(&orphanImages).Error)

	assert.EqualValues(t, 5, vehicleCount)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 0, orphanImages)
}

func TestSeededCatalogListsYearDescending(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	rr := doJSON(t, r, http.MethodPost, "/api/seed", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/vehicles", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []handlers.VehicleResponse
	decodeJSON(t, rr, &got)

	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Year, got[i].Year)
	}
}

package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karoo-dev/karoo/db"
	"github.com/karoo-dev/karoo/internal/handlers"
	"github.com/karoo-dev/karoo/internal/models"
)

func validVehicleBody() map[string]interface{} {
	return map[string]interface{}{
		"make":           "Volkswagen",
		"model":          "Polo Vivo 1.4 Trendline",
		"year":           2017,
		"mileage":        "81,000",
		"monthlyPayment": "R2,600 per month",
		"transmission":   "Manual",
		"features":       "DEKRA approved",
		"imageUrls": []string{
			"https://example.com/front.jpg",
			"https://example.com/interior.jpg",
			"https://example.com/rear.jpg",
		},
	}
}

func createVehicle(t *testing.T, r *gin.Engine, body map[string]interface{}) handlers.VehicleResponse {
	t.Helper()

	rr := doJSON(t, r, http.MethodPost, "/api/vehicles", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got handlers.VehicleResponse
	decodeJSON(t, rr, &got)
	return got
}

func TestCreateVehiclePreservesImageOrder(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	got := createVehicle(t, r, validVehicleBody())

	assert.Equal(t, "Volkswagen", got.Make)
	assert.Equal(t, "Polo Vivo 1.4 Trendline", got.Model)
	assert.Equal(t, 2017, got.Year)
	assert.Equal(t, "81,000", got.Mileage)
	assert.Equal(t, 81000, got.MileageValue)
	assert.Equal(t, "R2,600 per month", got.MonthlyPayment)
	assert.False(t, got.IsSold)
	assert.Nil(t, got.SoldDate)

	require.Len(t, got.Images, 3)
	assert.Equal(t, "https://example.com/front.jpg", got.Images[0].URL)
	assert.Equal(t, "https://example.com/interior.jpg", got.Images[1].URL)
	assert.Equal(t, "https://example.com/rear.jpg", got.Images[2].URL)
}

func TestCreateVehicleAcceptsStructuredNumbers(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	body := validVehicleBody()
	body["mileage"] = 45000
	body["monthlyPayment"] = 2700

	got := createVehicle(t, r, body)

	assert.Equal(t, 45000, got.MileageValue)
	assert.Equal(t, "R2,700 per month", got.MonthlyPayment)
}

func TestCreateVehicleRejectsMissingRequiredFields(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	for _, field := range []string{"make", "model", "year", "mileage", "monthlyPayment"} {
		body := validVehicleBody()
		delete(body, field)

		rr := doJSON(t, r, http.MethodPost, "/api/vehicles", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, field)
	}
}

func TestGetVehicleNotFound(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	rr := doJSON(t, r, http.MethodGet, "/api/vehicles/999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateVehicleReplacesImageSet(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	created := createVehicle(t, r, validVehicleBody())

	body := validVehicleBody()
	body["imageUrls"] = []string{"https://example.com/new-only.jpg"}

	rr := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/vehicles/%d", created.ID), body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated handlers.VehicleResponse
	decodeJSON(t, rr, &updated)

	require.Len(t, updated.Images, 1)
	assert.Equal(t, "https://example.com/new-only.jpg", updated.Images[0].URL)

	var count int64
	require.NoError(t, db.DB.Model(&models.VehicleImage{}).Where("vehicle_id = ?", created.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateVehicleToEmptyImageListClearsImages(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	created := createVehicle(t, r, validVehicleBody())

	body := validVehicleBody()
	body["imageUrls"] = []string{}

	rr := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/vehicles/%d", created.ID), body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Verify via a subsequent read.
	rr = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/vehicles/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got handlers.VehicleResponse
	decodeJSON(t, rr, &got)
	assert.Empty(t, got.Images)
}

func TestUpdateVehicleDoesNotTouchSoldStatus(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	created := createVehicle(t, r, validVehicleBody())

	rr := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/vehicles/%d/toggle-sold", created.ID), map[string]interface{}{"isSold": true})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/vehicles/%d", created.ID), validVehicleBody())
	require.Equal(t, http.StatusOK, rr.Code)

	var got handlers.VehicleResponse
	decodeJSON(t, rr, &got)
	assert.True(t, got.IsSold)
	assert.NotNil(t, got.SoldDate)
}

func TestUpdateVehicleNotFound(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	rr := doJSON(t, r, http.MethodPut, "/api/vehicles/999", validVehicleBody())
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestToggleSoldStampsAndClearsSoldDate(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	created := createVehicle(t, r, validVehicleBody())
	path := fmt.Sprintf("/api/vehicles/%d/toggle-sold", created.ID)

	rr := doJSON(t, r, http.MethodPut, path, map[string]interface{}{"isSold": true})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got handlers.VehicleResponse
	decodeJSON(t, rr, &got)
	assert.True(t, got.IsSold)
	require.NotNil(t, got.SoldDate)

	rr = doJSON(t, r, http.MethodPut, path, map[string]interface{}{"isSold": false})
	require.Equal(t, http.StatusOK, rr.Code)

	decodeJSON(t, rr, &got)
	assert.False(t, got.IsSold)
	assert.Nil(t, got.SoldDate)
}

func TestToggleSoldRequiresBody(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	created := createVehicle(t, r, validVehicleBody())

	rr := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/vehicles/%d/toggle-sold", created.ID), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteVehicleRemovesImages(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	created := createVehicle(t, r, validVehicleBody())

	rr := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/vehicles/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/vehicles/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// No orphaned image rows remain.
	var count int64
	require.NoError(t, db.DB.Unscoped().Model(&models.VehicleImage{}).Where("vehicle_id = ?", created.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestListVehiclesOrdersByYearDescending(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	for _, year := range []int{2017, 2024, 2020} {
		body := validVehicleBody()
		body["year"] = year
		createVehicle(t, r, body)
	}

	rr := doJSON(t, r, http.MethodGet, "/api/vehicles", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []handlers.VehicleResponse
	decodeJSON(t, rr, &got)

	require.Len(t, got, 3)
	assert.Equal(t, 2024, got[0].Year)
	assert.Equal(t, 2020, got[1].Year)
	assert.Equal(t, 2017, got[2].Year)
}

func TestListVehiclesAppliesCatalogFilter(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	cheap := validVehicleBody()
	cheap["monthlyPayment"] = "R2,600 per month"
	cheap["model"] = "Polo Vivo"
	createVehicle(t, r, cheap)

	pricey := validVehicleBody()
	pricey["monthlyPayment"] = "R3,200 per month"
	pricey["model"] = "Polo Comfortline"
	createVehicle(t, r, pricey)

	rr := doJSON(t, r, http.MethodGet, "/api/vehicles?sort=priceAsc&show_sold=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []handlers.VehicleResponse
	decodeJSON(t, rr, &got)

	require.Len(t, got, 2)
	assert.Equal(t, "R2,600 per month", got[0].MonthlyPayment)
	assert.Equal(t, "R3,200 per month", got[1].MonthlyPayment)

	rr = doJSON(t, r, http.MethodGet, "/api/vehicles?search=comfortline", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	decodeJSON(t, rr, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Polo Comfortline", got[0].Model)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/karoo-dev/karoo/db"
	"github.com/karoo-dev/karoo/internal/handlers"
	"github.com/karoo-dev/karoo/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = conn.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.VehicleImage{},
		&models.Contact{},
	)
	require.NoError(t, err)

	db.DB = conn
}

// newTestRouter wires the handlers without the auth middleware; session
// handling is covered by the auth tests.
func newTestRouter() *gin.Engine {
	r := gin.New()

	api := r.Group("/api")

	api.GET("/vehicles", handlers.ListVehicles)
	api.GET("/vehicles/:id", handlers.GetVehicle)
	api.POST("/vehicles", handlers.CreateVehicle)
	api.PUT("/vehicles/:id", handlers.UpdateVehicle)
	api.DELETE("/vehicles/:id", handlers.DeleteVehicle)
	api.PUT("/vehicles/:id/toggle-sold", handlers.ToggleSold)
	api.POST("/contact", handlers.CreateContact)
	api.POST("/finance/calculate", handlers.CalculateFinance)
	api.POST("/auth/login", handlers.LoginUser)
	api.POST("/upload", handlers.UploadImages)
	api.POST("/seed", handlers.SeedDatabase)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
}

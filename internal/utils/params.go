package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetVehicleID parses the :id route parameter.
func GetVehicleID(ctx *gin.Context) (uint, error) {
	idStr := ctx.Param("id")

	if idStr == "" {
		return 0, errors.New("Vehicle ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Vehicle ID")
	}

	return uint(id), nil
}

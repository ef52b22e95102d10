package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/karoo-dev/karoo/internal/config"
	"github.com/karoo-dev/karoo/internal/handlers"
	"github.com/karoo-dev/karoo/internal/middleware"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Public storefront
		api.GET("/vehicles", handlers.ListVehicles)
		api.GET("/vehicles/:id", handlers.GetVehicle)
		api.POST("/contact", handlers.CreateContact)
		api.POST("/finance/calculate", handlers.CalculateFinance)
		api.POST("/seed", handlers.SeedDatabase)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		// Admin surface
		admin := api.Group("", middleware.AuthMiddleware())
		{
			admin.POST("/vehicles", handlers.CreateVehicle)
			admin.PUT("/vehicles/:id", handlers.UpdateVehicle)
			admin.DELETE("/vehicles/:id", handlers.DeleteVehicle)
			admin.PUT("/vehicles/:id/toggle-sold", handlers.ToggleSold)
			admin.POST("/upload", handlers.UploadImages)
		}
	}

	return r
}

package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/karoo-dev/karoo/db"
	"github.com/karoo-dev/karoo/internal/auth"
	"github.com/karoo-dev/karoo/internal/config"
	"github.com/karoo-dev/karoo/internal/handlers"
	"github.com/karoo-dev/karoo/internal/router"
	"github.com/karoo-dev/karoo/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	sync := config.InitLogger()
	defer sync()

	cfg, err := config.Load()

	if err != nil {
		zap.S().Fatalf("Invalid configuration: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		zap.S().Fatalf("Failed to initialize auth: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		zap.S().Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		zap.S().Fatalf("Failed to migrate database: %v", err)
	}

	store, err := storage.NewS3Storage(cfg.Storage)

	if err != nil {
		zap.S().Fatalf("Failed to initialize storage: %v", err)
	}

	if err := store.EnsureBucket(context.Background()); err != nil {
		zap.S().Fatalf("Failed to ensure storage bucket: %v", err)
	}

	handlers.Storage = store

	r := router.NewRouter(cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		zap.S().Fatalf("Failed to start server: %v", err)
	}
}

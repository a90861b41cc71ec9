// @title Bulls and Cows API
// @version 1.0
// @description Backend server for the Bulls and Cows number-guessing championship.

// @host localhost:8080
// @BasePath /api/v1

package main

import (
	"log"

	"bulls_cows_backend/internal/app"
	"bulls_cows_backend/internal/config"
	"bulls_cows_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}

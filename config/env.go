package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}
}

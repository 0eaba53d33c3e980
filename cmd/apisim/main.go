// Package main runs the backend simulator: an in-memory stand-in for the
// real occurrence service exposing the same HTTP surface the admin client
// consumes.
package main

import (
	"os"

	"github.com/sosdefesa/admin/internal/config"
	"github.com/sosdefesa/admin/internal/handler"
	"github.com/sosdefesa/admin/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	st := store.New(cfg.Location())

	username := getEnv("ADMIN_USERNAME", "admin")
	password := getEnv("ADMIN_PASSWORD", "admin")
	account := st.AddAccount(username, password, "Administrador", true)
	logger.Info("seeded admin account",
		zap.String("username", account.Username),
		zap.Int64("id", account.ID))

	r := handler.NewRouter(st, cfg.JWTSecret)

	logger.Info("backend simulator starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

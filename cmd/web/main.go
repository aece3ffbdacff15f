package main

import (
	"context"
	"log"
	"os"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	apphttp "github.com/nguyenlong0920/ecommerce-admin/internal/http"
	"github.com/nguyenlong0920/ecommerce-admin/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	sessionTTL := 24 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			sessionTTL = d
		}
	}

	r := apphttp.NewRouter(logger, db, store.Storage, apphttp.RouterCfg{
		SessionCookieName: envOr("SESSION_COOKIE_NAME", "admin_session"),
		SessionSecure:     os.Getenv("SESSION_SECURE") == "true",
		SessionTTL:        sessionTTL,
		AuthGatewayToken:  os.Getenv("AUTH_GATEWAY_TOKEN"),
	})

	addr := envOr("HTTP_ADDR", ":8080")
	logger.Info("listening", "addr", addr, "storage", store.Driver)
	_ = r.Run(addr)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

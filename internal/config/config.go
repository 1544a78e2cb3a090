package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	FrontendOrigin string

	AdminUsername string
	AdminPassword string

	UploadDir string

	// CatalogRequireAuth guards every mutating product route behind a
	// valid session. Read once at startup and applied uniformly.
	CatalogRequireAuth bool

	// RequireProductImage makes an image mandatory on product creation.
	RequireProductImage bool
}

func Load() (Config, error) {

	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := Config{
		AppPort: os.Getenv("APP_PORT"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		FrontendOrigin: os.Getenv("FRONTEND_ORIGIN"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		UploadDir: os.Getenv("UPLOAD_DIR"),

		CatalogRequireAuth:  true,
		RequireProductImage: false,
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3001"
	}

	if cfg.FrontendOrigin == "" {
		cfg.FrontendOrigin = "http://localhost:3000"
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}

	if raw := os.Getenv("CATALOG_REQUIRE_AUTH"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("CATALOG_REQUIRE_AUTH is not a boolean: %w", err)
		}
		cfg.CatalogRequireAuth = parsed
	}

	if raw := os.Getenv("REQUIRE_PRODUCT_IMAGE"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("REQUIRE_PRODUCT_IMAGE is not a boolean: %w", err)
		}
		cfg.RequireProductImage = parsed
	}

	if cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("DATABASE_DSN environment variable is empty")
	}

	return cfg, nil
}

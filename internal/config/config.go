package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// CORS (comma-separated origins for the browser client)
	CORSOrigins []string

	// Image hosting (provider selection: "freeimage" or "s3")
	ImageHost         string
	FreeImageAPIKey   string
	FreeImageEndpoint string

	// S3-compatible storage (MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string        // Optional: for S3-compatible services
	S3PresignExpiry time.Duration // Expiry for generated image URLs

	// Upload limits
	MaxUploadSize  int64 // single image, bytes
	MaxArchiveSize int64 // zip archive, bytes

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Cardbox"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/cardbox.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// CORS
		CORSOrigins: envList("CORS_ORIGINS", []string{"http://localhost:3000"}),

		// Image hosting
		ImageHost:         envString("IMAGE_HOST", "freeimage"),
		FreeImageAPIKey:   envString("FREEIMAGE_API_KEY", ""),
		FreeImageEndpoint: envString("FREEIMAGE_ENDPOINT", "https://freeimage.host/api/1/upload"),

		// S3 (required only when IMAGE_HOST=s3)
		S3Region:        envString("S3_REGION", ""),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 168*time.Hour), // 7 days

		// Upload limits
		MaxUploadSize:  envInt64("MAX_UPLOAD_SIZE", 16<<20),   // 16 MB
		MaxArchiveSize: envInt64("MAX_ARCHIVE_SIZE", 256<<20), // 256 MB

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures the selected image host is fully configured for
// production deployments. Development tolerates missing keys for local testing.
func validateProduction(cfg *Config) {
	switch cfg.ImageHost {
	case "freeimage":
		if cfg.FreeImageAPIKey == "" {
			slog.Error("production deployment requires FREEIMAGE_API_KEY",
				"hint", "set APP_ENV=development for local testing")
			os.Exit(1)
		}
	case "s3":
		if cfg.S3Region == "" || cfg.S3Bucket == "" {
			slog.Error("production deployment requires S3_REGION and S3_BUCKET")
			os.Exit(1)
		}
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envList(key string, def []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func envInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

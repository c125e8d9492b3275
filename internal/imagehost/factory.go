package imagehost

import (
	"fmt"
	"log/slog"

	"github.com/cardboxapp/cardbox/internal/config"
)

// New creates an image host based on configuration
func New(cfg *config.Config) (Host, error) {
	provider := cfg.ImageHost

	slog.Info("initializing image host", "provider", provider)

	switch provider {
	case "freeimage":
		if cfg.FreeImageAPIKey == "" && cfg.IsProduction() {
			return nil, fmt.Errorf("FREEIMAGE_API_KEY is required when using the freeimage host")
		}
		return NewFreeImageHost(cfg.FreeImageEndpoint, cfg.FreeImageAPIKey), nil

	case "s3":
		if cfg.S3Region == "" || cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_REGION and S3_BUCKET are required when using the s3 host")
		}
		return NewS3Host(S3Config{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Endpoint:      cfg.S3Endpoint,
			PresignExpiry: cfg.S3PresignExpiry,
		})

	default:
		return nil, fmt.Errorf("unknown image host: %s (supported: freeimage, s3)", provider)
	}
}

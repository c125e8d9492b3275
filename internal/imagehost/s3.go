package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Host stores images in an S3-compatible bucket and hands back presigned
// URLs. Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2, etc.
// S3 has no thumbnail service, so results carry no thumb URL.
type S3Host struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	publicURL     string
	presignExpiry time.Duration
}

// S3Config holds configuration for the S3 image host
type S3Config struct {
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	Endpoint      string // Optional: for S3-compatible services
	PresignExpiry time.Duration
}

func NewS3Host(cfg S3Config) (*S3Host, error) {
	ctx := context.Background()

	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	// Add static credentials if provided
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO and some S3-compatible services
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	publicURL := cfg.Endpoint
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	} else {
		publicURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	host := &S3Host{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicURL:     publicURL,
		presignExpiry: cfg.PresignExpiry,
	}

	err = host.ensureBucket(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return host, nil
}

func (h *S3Host) Name() string {
	return "s3"
}

// ensureBucket checks if the bucket exists, creates it if not
func (h *S3Host) ensureBucket(ctx context.Context) error {
	_, err := h.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(h.bucket),
	})
	if err == nil {
		return nil
	}

	_, err = h.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(h.bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", h.bucket, err)
	}

	return nil
}

func (h *S3Host) Upload(ctx context.Context, data []byte, filename, mimeType string) (*Result, error) {
	key := "cards/" + uuid.New().String() + strings.ToLower(path.Ext(filename))

	putCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := h.client.PutObject(putCtx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return &Result{URL: h.objectURL(ctx, key)}, nil
}

// objectURL prefers a presigned URL and falls back to the direct bucket URL
// if presigning fails.
func (h *S3Host) objectURL(ctx context.Context, key string) string {
	presignCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	presigned, err := h.presignClient.PresignGetObject(presignCtx, &s3.GetObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = h.presignExpiry
	})
	if err != nil {
		return h.publicURL + "/" + key
	}

	return presigned.URL
}

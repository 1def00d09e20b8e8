// Package catalog reads the events catalogue from an S3-compatible bucket.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/levantva/crewcenter/internal/client/models"
)

// DefaultKey is the object holding the catalogue.
const DefaultKey = "events.json"

var ErrNotConfigured = errors.New("events bucket is not configured")

// S3Config describes the bucket. Endpoint is set for MinIO and other
// S3-compatible stores.
type S3Config struct {
	Bucket   string
	Key      string
	Region   string
	User     string
	Password string
	Endpoint string
}

// Enabled reports whether a bucket is configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// ObjectGetter is the slice of *s3.Client the source needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectGetter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Source fetches the catalogue object on every call.
type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

// NewS3Source builds an S3 client from cfg.
func NewS3Source(ctx context.Context, cfg S3Config) (*S3Source, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.User != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.User, cfg.Password, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	c := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3SourceWithClient(c, cfg.Bucket, cfg.Key), nil
}

// NewS3SourceWithClient wraps an existing client. An empty key means
// DefaultKey.
func NewS3SourceWithClient(c ObjectGetter, bucket, key string) *S3Source {
	if key == "" {
		key = DefaultKey
	}
	return &S3Source{client: c, bucket: bucket, key: key}
}

// Events downloads and decodes the catalogue: a JSON array of events.
func (s *S3Source) Events(ctx context.Context) ([]models.Event, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	var events []models.Event
	if err := json.NewDecoder(out.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return events, nil
}

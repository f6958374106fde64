package media

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectPutter is the subset of the S3 client used by the store.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Store implements Store on top of an S3 bucket.
type s3Store struct {
	client ObjectPutter
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3Store loads the default AWS configuration and creates an S3 backed
// store.
func NewS3Store(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("component", "image-s3-store").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 image store initialised")

	return NewS3StoreWithClient(s3.NewFromConfig(cfg), bucket, region, prefix, logger), nil
}

// NewS3StoreWithClient wires an existing client.
func NewS3StoreWithClient(client ObjectPutter, bucket, region, prefix string, logger zerolog.Logger) Store {
	return &s3Store{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}
}

// Save uploads the image and returns its virtual-hosted style URL.
func (s *s3Store) Save(ctx context.Context, file File) (string, error) {
	key := s.prefix + objectName(file.Name, time.Now())

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Data),
		ContentLength: aws.Int64(int64(len(file.Data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return "", fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("image uploaded to S3")

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// fallbackStore tries the primary store first, then the local one.
type fallbackStore struct {
	primary Store
	local   Store
	logger  zerolog.Logger
}

// NewFallbackStore creates a store that uploads to primary and falls back to
// local when primary is nil or fails.
func NewFallbackStore(primary, local Store, logger zerolog.Logger) Store {
	return &fallbackStore{
		primary: primary,
		local:   local,
		logger:  logger.With().Str("component", "fallback-image-store").Logger(),
	}
}

// Save attempts the primary store before the local one.
func (s *fallbackStore) Save(ctx context.Context, file File) (string, error) {
	if s.primary != nil {
		url, err := s.primary.Save(ctx, file)
		if err == nil {
			return url, nil
		}

		s.logger.Warn().
			Err(err).
			Str("file", file.Name).
			Msg("failed to store image remotely, falling back to local file system")
	}

	return s.local.Save(ctx, file)
}

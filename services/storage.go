package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// S3Storage uploads project assets to an S3 bucket and hands back the public
// URL a Project.image field can point at.
type S3Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Storage builds an S3-backed asset store. Credentials and region come
// from the default AWS credential chain; publicBaseURL is the CDN or bucket
// URL uploaded keys are served under.
func NewS3Storage(ctx context.Context, bucket, publicBaseURL string) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3Storage{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Put stores body under key and returns the public URL for it
func (s *S3Storage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}

	url := fmt.Sprintf("%s/%s", s.publicBaseURL, key)
	log.Info().Str("key", key).Str("url", url).Msg("Uploaded asset to S3")
	return url, nil
}

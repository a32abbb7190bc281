// Package upload issues presigned S3 upload URLs for client-side file
// uploads.
package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "github.com/aidnetlk/aidnet/internal/config"
)

// Signer produces a presigned PUT URL for an object key.
type Signer interface {
	SignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
}

// S3Signer presigns uploads against an S3 bucket.
type S3Signer struct {
	presign *s3.PresignClient
	bucket  string
}

// NewS3Signer creates a signer from upload configuration.
func NewS3Signer(ctx context.Context, cfg appConfig.UploadConfig) (*S3Signer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Signer{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
	}, nil
}

// SignPut produces a presigned PUT URL for an object key.
func (s *S3Signer) SignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return req.URL, nil
}

package config

import "time"

// UploadConfig holds presigned upload configuration.
type UploadConfig struct {
	// Bucket is the S3 bucket receiving direct uploads.
	Bucket string
	// Region is the AWS region of the bucket.
	Region string
	// PublicBaseURL is the base URL at which uploaded objects become readable.
	PublicBaseURL string
	// URLExpiry is how long a presigned PUT URL stays valid.
	URLExpiry time.Duration
}

// LoadUploadConfigFromEnv loads upload configuration from environment variables.
func LoadUploadConfigFromEnv() UploadConfig {
	return UploadConfig{
		Bucket:        GetEnv("UPLOAD_BUCKET", ""),
		Region:        GetEnv("UPLOAD_AWS_REGION", GetEnv("AWS_DEFAULT_REGION", "ap-south-1")),
		PublicBaseURL: GetEnv("UPLOAD_PUBLIC_BASE_URL", ""),
		URLExpiry:     GetEnvDuration("UPLOAD_URL_EXPIRY", 15*time.Minute),
	}
}

package minio

import "os"

// Config defines the connection and layout settings for the backup bucket.
type Config struct {
	// Endpoint of the S3-compatible server, e.g. "localhost:9000".
	Endpoint string `yaml:"endpoint" env:"MINIO_ENDPOINT"`

	// AccessKeyID and SecretAccessKey authenticate against the server.
	AccessKeyID     string `yaml:"access_key_id" env:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"MINIO_SECRET_ACCESS_KEY"`

	// UseSSL selects https transport.
	UseSSL bool `yaml:"use_ssl" env:"MINIO_USE_SSL"`

	// BucketName is the bucket Weaviate's s3 backup backend writes into.
	BucketName string `yaml:"bucket_name" env:"MINIO_BUCKET_NAME"`

	// Region for bucket creation (e.g. "us-east-1").
	Region string `yaml:"region" env:"MINIO_REGION"`

	// BackupPrefix is the key prefix the backup backend uses inside the
	// bucket. Empty means backups live at the bucket root.
	BackupPrefix string `yaml:"backup_prefix" env:"MINIO_BACKUP_PREFIX"`
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	bucket := os.Getenv("MINIO_BUCKET_NAME")
	if bucket == "" {
		bucket = "weaviate-backups"
	}

	return Config{
		Endpoint:        os.Getenv("MINIO_ENDPOINT"),
		AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("MINIO_SECRET_ACCESS_KEY"),
		UseSSL:          os.Getenv("MINIO_USE_SSL") == "true",
		BucketName:      bucket,
		Region:          os.Getenv("MINIO_REGION"),
		BackupPrefix:    os.Getenv("MINIO_BACKUP_PREFIX"),
	}
}

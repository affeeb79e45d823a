package config

import "strings"

// StorageConfig contains S3-compatible object storage configuration for
// resume uploads.
type StorageConfig struct {
	Region string `env:"REGION" envDefault:"us-east-1"`
	Bucket string `env:"BUCKET" envDefault:"goldengigs-resumes"`

	// Endpoint overrides the AWS endpoint for S3-compatible stores
	// such as MinIO. Empty uses the AWS default.
	Endpoint string `env:"ENDPOINT"`

	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// Sanitize applies guardrails to storage configuration values.
func (c *StorageConfig) Sanitize() {
	c.Region = strings.TrimSpace(c.Region)
	if c.Region == "" {
		c.Region = "us-east-1"
	}
	c.Bucket = strings.TrimSpace(c.Bucket)
	c.Endpoint = strings.TrimRight(strings.TrimSpace(c.Endpoint), "/")
}

// IsConfigured reports whether object storage is usable.
func (c *StorageConfig) IsConfigured() bool {
	return c.Bucket != ""
}

package storage

import "asset-pipeline/core/apperror"

// Config holds configuration for the object storage mirror of the build output.
type Config struct {
	// Endpoint is the storage service address. An http:// or https:// scheme
	// overrides UseSSL.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL selects HTTPS for scheme-less endpoints.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the mirrored build output.
	Bucket string `mapstructure:"bucket" default:"assets"`
	// Prefix is the key prefix the public directory is mirrored under.
	Prefix string `mapstructure:"prefix" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate reports missing connection settings.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return apperror.Configuration("storage endpoint is not configured. Set STORAGE_ENDPOINT.")
	}
	if c.Bucket == "" {
		return apperror.Configuration("storage bucket is not configured. Set STORAGE_BUCKET.")
	}
	return nil
}

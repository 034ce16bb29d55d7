// Package imagekit provides a client for the ImageKit media upload API.
package imagekit

import (
	"os"
	"time"
)

// Config holds configuration for the ImageKit upload client.
type Config struct {
	PrivateKey string        // Private API key for basic authentication
	BaseURL    string        // Base URL for the upload API (e.g., "https://upload.imagekit.io")
	Timeout    time.Duration // HTTP request timeout
}

// LoadConfig loads ImageKit configuration from environment variables.
func LoadConfig() Config {
	return Config{
		PrivateKey: os.Getenv("IMAGEKIT_PRIVATE_KEY"),
		BaseURL:    os.Getenv("IMAGEKIT_UPLOAD_URL"),
		Timeout:    30 * time.Second,
	}
}

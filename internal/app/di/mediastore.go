// Package di provides dependency injection factories for creating application components.
package di

import (
	"social_backend/internal/platform/externalapi/imagekit"
	infrahttp "social_backend/internal/platform/http"
)

// NewMediaStore creates a fully configured ImageKit client with HTTP client.
func NewMediaStore() *imagekit.Client {
	cfg := imagekit.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return imagekit.NewClient(cfg, httpClient)
}

package preflight

import (
	"github.com/gofiber/fiber/v2"
)

// Feature exposes the verification service through the feature loader.
type Feature struct {
	service *Service
}

// NewFeature wraps a service for registration with loader.Manager.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "preflight"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the preflight routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}

package depot

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	registry *Registry
	service  *Service
	handler  *Handler
}

// NewFeature creates the depot feature on a registry.
func NewFeature(registry *Registry, logger *zap.Logger) *Feature {
	svc := NewService(registry, logger)
	return &Feature{registry: registry, service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "depot"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Shutdown flushes and closes every open depot.
func (f *Feature) Shutdown(ctx context.Context) error {
	return f.registry.Shutdown(ctx)
}

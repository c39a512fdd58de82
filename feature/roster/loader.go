package roster

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	path    string
	handler *Handler
}

// NewFeature creates the roster feature for the roster file at path.
func NewFeature(path string, logger *zap.Logger) *Feature {
	return &Feature{path: path, handler: NewHandler(NewService(path, logger))}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "roster"
}

// IsEnabled reports whether a roster file is configured.
func (f *Feature) IsEnabled() bool {
	return f.path != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

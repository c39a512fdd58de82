// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its lifecycle hooks and route
// registration logic.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry of available features: Register adds one, LoadAll loads the
// enabled ones in registration order. Features such as depot, presets and roster are developed
// and tested in isolation and wired together in cmd/start.
package loader

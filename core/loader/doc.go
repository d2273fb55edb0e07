// Package loader provides the feature loading system for the dev server.
//
// Each feature implements the Feature interface and registers its own routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// Features are loaded in registration order, so a catch-all feature such as
// static asset serving must be registered last.
package loader

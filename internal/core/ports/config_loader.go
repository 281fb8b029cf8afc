// Package ports defines the core interfaces for the application.
package ports

import "github.com/asset-bender/bender/internal/core/domain"

// ConfigLoader loads the declarative configuration documents for a project root.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the runtime settings, the project's own asset manifest, the
	// recursive dependency manifest and the optional frozen deploy snapshot
	// from the given project root. Purely local file reads, no network.
	Load(root string) (*domain.ProjectConfig, error)
}

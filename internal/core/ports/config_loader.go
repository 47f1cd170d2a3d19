// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/madrun/internal/core/domain"

// ConfigLoader defines the interface for loading the harness configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the configuration for the harness.
	//
	// An empty path looks for the default config file in the working directory
	// and falls back to domain.DefaultConfig when it does not exist. A non-empty
	// path must point to an existing file.
	Load(path string) (domain.Config, error)
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/madrun/internal/adapters/config"
	_ "go.trai.ch/madrun/internal/adapters/fs"
	_ "go.trai.ch/madrun/internal/adapters/logger"
	_ "go.trai.ch/madrun/internal/adapters/shell"
	_ "go.trai.ch/madrun/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/madrun/internal/app"
)

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/asset-bender/bender/internal/adapters/config"
	_ "github.com/asset-bender/bender/internal/adapters/logger"
	_ "github.com/asset-bender/bender/internal/adapters/snapshot"
	// Register app and engine nodes.
	_ "github.com/asset-bender/bender/internal/app"
	_ "github.com/asset-bender/bender/internal/engine/resolver"
)

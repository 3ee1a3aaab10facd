// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.autols.dev/autols/internal/adapters/config"
	_ "go.autols.dev/autols/internal/adapters/logger"
	_ "go.autols.dev/autols/internal/adapters/plan"
	_ "go.autols.dev/autols/internal/adapters/shell"
	_ "go.autols.dev/autols/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.autols.dev/autols/internal/app"
)

package app

import "go.autols.dev/autols/pkg/ports"

// Components bundles the fully wired objects the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

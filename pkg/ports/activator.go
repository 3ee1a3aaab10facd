// Package ports defines the interfaces between the activation engine and
// the host runtime it drives.
package ports

import (
	"context"

	"go.autols.dev/autols/pkg/domain"
)

// Activation is one launch request: a server identifier and the fully
// resolved configuration to start it with.
type Activation struct {
	// Server is the identifier of the server to activate.
	Server domain.ServerID

	// Config is the merged launch configuration.
	Config domain.ResolvedConfig
}

// Activator hands activation requests to the host runtime.
//
//go:generate mockgen -source=activator.go -destination=mocks/mock_activator.go -package=mocks
type Activator interface {
	// Activate submits the whole batch of launch requests. Requests are
	// fire-and-forget: a nil return means the host accepted the batch,
	// not that every server came up.
	Activate(ctx context.Context, batch []Activation) error
}

package ports

import (
	"context"

	"go.autols.dev/autols/pkg/domain"
)

// Registry exposes the server definitions installed on the host.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// List returns the identifier of every server the registry defines.
	List(ctx context.Context) ([]domain.ServerID, error)

	// DefaultConfig returns the registry defaults for one server.
	// A nil map with a nil error means the registry has no definition
	// for that identifier.
	DefaultConfig(ctx context.Context, id domain.ServerID) (map[string]any, error)
}

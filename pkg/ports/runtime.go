package ports

import (
	"context"

	"go.autols.dev/autols/pkg/domain"
)

// Client is a point-in-time snapshot of one running server client in the
// host runtime.
type Client struct {
	// ID is the host handle for the client.
	ID domain.ClientID

	// Server is the identifier the client was activated under.
	Server domain.ServerID

	// Buffers are the host buffers currently attached to the client.
	Buffers []domain.BufferID
}

// Runtime inspects and stops live clients in the host.
//
//go:generate mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type Runtime interface {
	// Client returns the live client with the given id. ok is false when
	// the client already exited.
	Client(ctx context.Context, id domain.ClientID) (client Client, ok bool)

	// Stop asks the host to shut the client down.
	Stop(ctx context.Context, id domain.ClientID) error
}

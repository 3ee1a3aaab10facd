package ports

import "go.autols.dev/autols/pkg/domain"

// DetachEvent reports that a buffer detached from a client. The host emits
// it after its own bookkeeping settled, so a consumer that queries the
// client state sees the buffer already gone.
type DetachEvent struct {
	// Client is the client the buffer detached from.
	Client domain.ClientID

	// Buffer is the buffer that detached.
	Buffer domain.BufferID
}

// DetachSource streams buffer-detach notifications from the host.
//
//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks
type DetachSource interface {
	// Events returns the detach stream. The host closes the channel when
	// no further events will be delivered.
	Events() <-chan DetachEvent
}

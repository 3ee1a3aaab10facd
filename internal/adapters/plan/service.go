// Package plan implements an in-memory host runtime for the CLI. Activations
// are recorded instead of spawning processes, and a client table keeps the
// runtime surface honest: every accepted activation registers a running
// client that can be inspected and stopped.
package plan

import (
	"context"
	"slices"
	"sync"

	"go.autols.dev/autols/pkg/domain"
	"go.autols.dev/autols/pkg/ports"
	"go.trai.ch/zerr"
)

// ErrUnknownClient is returned when stopping a client the host does not know.
var ErrUnknownClient = zerr.New("unknown language server client")

// Service records activation batches and tracks the resulting clients.
type Service struct {
	mu      sync.Mutex
	nextID  domain.ClientID
	clients map[domain.ClientID]ports.Client
	batches [][]ports.Activation
}

var (
	_ ports.Activator = (*Service)(nil)
	_ ports.Runtime   = (*Service)(nil)
)

// NewService creates an empty host with no recorded activations.
func NewService() *Service {
	return &Service{clients: make(map[domain.ClientID]ports.Client)}
}

// Activate records the batch and registers one running client per request.
// Client ids are assigned in batch order.
func (s *Service) Activate(_ context.Context, batch []ports.Activation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches = append(s.batches, slices.Clone(batch))
	for _, request := range batch {
		s.nextID++
		s.clients[s.nextID] = ports.Client{
			ID:     s.nextID,
			Server: request.Server,
		}
	}
	return nil
}

// Client returns a snapshot of the client with the given id.
func (s *Service) Client(_ context.Context, id domain.ClientID) (ports.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok {
		return ports.Client{}, false
	}
	client.Buffers = slices.Clone(client.Buffers)
	return client, true
}

// Stop removes the client from the table.
func (s *Service) Stop(_ context.Context, id domain.ClientID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return zerr.With(ErrUnknownClient, "client", int(id))
	}
	delete(s.clients, id)
	return nil
}

// Attach records a buffer attachment on a running client. It reports false
// when the client is not running. Attaching a buffer twice is a no-op.
func (s *Service) Attach(id domain.ClientID, buffer domain.BufferID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok {
		return false
	}
	if slices.Contains(client.Buffers, buffer) {
		return true
	}
	client.Buffers = append(client.Buffers, buffer)
	s.clients[id] = client
	return true
}

// Detach removes a buffer from a running client. It reports false when the
// client is not running or the buffer was not attached.
func (s *Service) Detach(id domain.ClientID, buffer domain.BufferID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok {
		return false
	}
	i := slices.Index(client.Buffers, buffer)
	if i < 0 {
		return false
	}
	client.Buffers = slices.Delete(client.Buffers, i, i+1)
	s.clients[id] = client
	return true
}

// Batches returns a copy of every recorded activation batch, oldest first.
func (s *Service) Batches() [][]ports.Activation {
	s.mu.Lock()
	defer s.mu.Unlock()

	batches := make([][]ports.Activation, len(s.batches))
	for i, batch := range s.batches {
		batches[i] = slices.Clone(batch)
	}
	return batches
}

// Running returns a snapshot of every client still in the table, ordered by id.
func (s *Service) Running() []ports.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]domain.ClientID, 0, len(s.clients))
	for id := range s.clients {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	running := make([]ports.Client, 0, len(ids))
	for _, id := range ids {
		client := s.clients[id]
		client.Buffers = slices.Clone(client.Buffers)
		running = append(running, client)
	}
	return running
}

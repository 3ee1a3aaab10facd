// Package domain contains the core types and pure decision logic for
// language-server activation.
package domain

// ServerID is the canonical name of one language-server integration,
// derived from its registry definition file name.
type ServerID string

// String returns the identifier as a plain string.
func (id ServerID) String() string {
	return string(id)
}

// ClientID identifies a running client handle inside the host runtime.
type ClientID int

// BufferID identifies a host buffer attached to a running client.
type BufferID int

// ServerSet is a membership set of server identifiers.
type ServerSet map[ServerID]struct{}

// NewServerSet builds a set from the given identifiers.
func NewServerSet(ids ...ServerID) ServerSet {
	s := make(ServerSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a member of the set.
// A nil set contains nothing.
func (s ServerSet) Contains(id ServerID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s ServerSet) Add(id ServerID) {
	s[id] = struct{}{}
}

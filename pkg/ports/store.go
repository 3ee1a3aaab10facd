package ports

import "go.autols.dev/autols/pkg/domain"

// CacheStore persists detection results between runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Read returns the persisted detection record as written, without
	// judging its age. ok is false when no usable record exists; a
	// missing, unreadable or corrupt record is a miss, never an error.
	Read() (record domain.CacheRecord, ok bool)

	// Write persists a record for the given servers, stamped with the
	// current time. It returns domain.ErrCacheDisabled when the store
	// is disabled.
	Write(servers []domain.ServerID) error

	// Clear removes the persisted record. removed is false when there
	// was nothing to remove.
	Clear() (removed bool, err error)
}

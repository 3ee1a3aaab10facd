// Package cache persists detection results as a single JSON file whose
// validity is bounded by a TTL applied at read time by the caller.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.autols.dev/autols/pkg/domain"
	"go.trai.ch/zerr"
)

// record is the on-disk shape of a detection result. The timestamp is
// seconds since the Unix epoch; it is written as an integer but decoded
// through float64 so records produced by other tooling stay readable.
type record struct {
	Timestamp *float64 `json:"timestamp"`
	Servers   []string `json:"servers"`
}

// Store is a file-backed detection cache. Reads are soft: any missing,
// unreadable or corrupt file is reported as a miss so a broken cache can
// never break detection.
type Store struct {
	path    string
	enabled bool
	now     func() time.Time
}

// New creates a store for the given cache options. Resolve the options
// first so the path is never empty.
func New(opts domain.CacheOptions) *Store {
	return &Store{
		path:    opts.Path,
		enabled: opts.Enable,
		now:     time.Now,
	}
}

// Read returns the persisted record as written. It does not consult the
// enable flag or judge the record's age; callers decide both.
func (s *Store) Read() (domain.CacheRecord, bool) {
	//nolint:gosec // Path comes from resolved options, not user input at read time
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.CacheRecord{}, false
	}

	var entry record
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.CacheRecord{}, false
	}

	// A record missing either field is unusable.
	if entry.Timestamp == nil || entry.Servers == nil {
		return domain.CacheRecord{}, false
	}

	servers := make([]domain.ServerID, 0, len(entry.Servers))
	for _, id := range entry.Servers {
		servers = append(servers, domain.ServerID(id))
	}

	return domain.CacheRecord{
		Timestamp: time.Unix(int64(*entry.Timestamp), 0),
		Servers:   servers,
	}, true
}

// Write persists a record for the given servers, stamped with the current
// time. The file is written to a temp file in the cache directory and
// renamed into place so readers never observe a partial record.
func (s *Store) Write(servers []domain.ServerID) error {
	if !s.enabled {
		return domain.ErrCacheDisabled
	}

	ts := float64(s.now().Unix())
	entry := record{
		Timestamp: &ts,
		Servers:   make([]string, 0, len(servers)),
	}
	for _, id := range servers {
		entry.Servers = append(entry.Servers, id.String())
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}

	if err := s.atomicWriteFile(s.path, data); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	return nil
}

// Clear removes the persisted record. removed is false when there was
// nothing to remove.
func (s *Store) Clear() (bool, error) {
	err := os.Remove(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.Wrap(err, domain.ErrCacheClearFailed.Error())
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func (s *Store) atomicWriteFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "servers-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

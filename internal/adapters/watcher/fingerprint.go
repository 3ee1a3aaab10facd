package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the name and contents of every definition file in dir
// into a single digest. The digest depends only on file names and bytes, so
// touching a file without changing it keeps the fingerprint stable.
func Fingerprint(dir string) (uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	digest := xxhash.New()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			// The file can vanish between the listing and the read.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return 0, err
		}

		_, _ = digest.WriteString(entry.Name())
		_, _ = digest.Write(data)
	}

	return digest.Sum64(), nil
}

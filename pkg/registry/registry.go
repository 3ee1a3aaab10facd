// Package registry reads language-server definitions from the host
// filesystem. A registry is a directory of definition files, one per
// server, where the file name minus its extension is the server
// identifier.
package registry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.autols.dev/autols/pkg/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Registry locates a server definition directory under a list of search
// paths and reads definitions from it. The directory is located once and
// remembered; construct a fresh Registry to pick up a registry installed
// after the first lookup.
type Registry struct {
	searchPaths []string

	locateOnce sync.Once
	dir        string
	locateErr  error
}

// New creates a registry over the given search paths, in priority order.
func New(searchPaths []string) *Registry {
	return &Registry{searchPaths: searchPaths}
}

// Locate returns the definition directory: the RegistryDirName
// subdirectory of the first search path that has one. It returns
// domain.ErrRegistryNotFound when no search path qualifies.
func (r *Registry) Locate() (string, error) {
	r.locateOnce.Do(func() {
		for _, root := range r.searchPaths {
			dir := filepath.Join(root, domain.RegistryDirName)
			info, err := os.Stat(dir)
			if err == nil && info.IsDir() {
				r.dir = dir
				return
			}
		}
		r.locateErr = zerr.With(domain.ErrRegistryNotFound, "search_paths", strings.Join(r.searchPaths, ":"))
	})
	return r.dir, r.locateErr
}

// List returns the identifier of every definition file in the registry.
// Subdirectories and extensionless dotfiles are ignored. The order follows
// the directory listing, which os.ReadDir sorts by file name.
func (r *Registry) List(_ context.Context) ([]domain.ServerID, error) {
	dir, err := r.Locate()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryListFailed.Error())
	}

	servers := make([]domain.ServerID, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if name == "" {
			continue
		}
		servers = append(servers, domain.ServerID(name))
	}

	return servers, nil
}

// DefaultConfig returns the parsed definition for one server, or nil with
// a nil error when the registry has no definition file for it. Definitions
// are YAML documents; JSON definitions parse as a subset.
func (r *Registry) DefaultConfig(_ context.Context, id domain.ServerID) (map[string]any, error) {
	dir, err := r.Locate()
	if err != nil {
		return nil, err
	}

	path, ok := r.definitionPath(dir, id)
	if !ok {
		return nil, nil
	}

	//nolint:gosec // Path is constructed from the located registry directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrServerConfigReadFailed.Error()), "server", id.String())
	}

	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrServerConfigParseFailed.Error()), "server", id.String())
	}

	return config, nil
}

// definitionPath finds the definition file whose stem matches id,
// whatever its extension.
func (r *Registry) definitionPath(dir string, id domain.ServerID) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if name == id.String() {
			return filepath.Join(dir, entry.Name()), true
		}
	}

	return "", false
}

// Package config provides the configuration loader for autols.
package config

import (
	"errors"
	"os"
	"time"

	"go.autols.dev/autols/pkg/domain"
	"go.autols.dev/autols/pkg/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path and maps it onto engine options.
// An empty path means the default location, where a missing file simply
// yields the built-in defaults. A missing file at an explicit path is an
// error.
func (l *Loader) Load(path string) (domain.Options, error) {
	missingOK := path == ""
	if missingOK {
		path = domain.DefaultConfigPath()
	}

	// #nosec G304 -- path comes from the user's own flag or the fixed default
	raw, err := os.ReadFile(path)
	if err != nil {
		if missingOK && errors.Is(err, os.ErrNotExist) {
			l.Logger.Debug("no config file found, using defaults", "path", path)
			return domain.DefaultOptions(), nil
		}
		return domain.Options{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	if parseErr := yaml.Unmarshal(raw, &file); parseErr != nil {
		return domain.Options{}, zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return l.mapOptions(&file), nil
}

// mapOptions translates the parsed file onto a fully resolved Options value.
// Keys absent from the file keep their defaults. The cache TTL is given in
// seconds.
func (l *Loader) mapOptions(file *File) domain.Options {
	opts := domain.DefaultOptions()

	if len(file.Exclude) > 0 {
		opts.Exclude = serverSet(file.Exclude)
	}
	if file.Registry != nil && len(file.Registry.Paths) > 0 {
		opts.SearchPaths = file.Registry.Paths
	}

	if file.Cache != nil {
		if file.Cache.Enable != nil {
			opts.Cache.Enable = *file.Cache.Enable
		}
		if file.Cache.TTL != nil {
			opts.Cache.TTL = time.Duration(*file.Cache.TTL) * time.Second
		}
		if file.Cache.Path != "" {
			opts.Cache.Path = file.Cache.Path
		}
	}

	if file.Stop != nil {
		if file.Stop.Enable != nil {
			opts.Stop.Enable = *file.Stop.Enable
		}
		if len(file.Stop.Exclude) > 0 {
			opts.Stop.Exclude = serverSet(file.Stop.Exclude)
		}
	}

	if len(file.ServerConfig) > 0 {
		opts.Servers = make(map[domain.ServerID]domain.Override, len(file.ServerConfig))
		for name, value := range file.ServerConfig {
			opts.Servers[domain.ServerID(name)] = l.overrideFor(name, value)
		}
	}

	return domain.ResolveOptions(opts)
}

// overrideFor builds the override for one server entry. A bare key is a
// valid no-op; anything that is not a mapping becomes an invalid override
// that fails at resolution for that server only, so one bad entry cannot
// take down the whole file.
func (l *Loader) overrideFor(name string, value any) domain.Override {
	switch patch := value.(type) {
	case nil:
		return domain.Override{}
	case map[string]any:
		return domain.OverrideMap(patch)
	default:
		l.Logger.Warn("server override is not a mapping", "server", name)
		return domain.InvalidOverride()
	}
}

func serverSet(names []string) domain.ServerSet {
	ids := make([]domain.ServerID, 0, len(names))
	for _, name := range names {
		ids = append(ids, domain.ServerID(name))
	}
	return domain.NewServerSet(ids...)
}

package ports

import "go.autols.dev/autols/pkg/domain"

// ConfigLoader loads the user configuration file and maps it onto engine
// options.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path means the
	// default location, where a missing file is not an error and the
	// built-in defaults apply. A missing file at an explicit path is an
	// error.
	Load(path string) (domain.Options, error)
}

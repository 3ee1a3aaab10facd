package domain

import "go.trai.ch/zerr"

var (
	// ErrRegistryNotFound is returned when no registry directory exists in any search path.
	ErrRegistryNotFound = zerr.New("language server registry not found")

	// ErrRegistryListFailed is returned when the registry directory cannot be read.
	ErrRegistryListFailed = zerr.New("failed to list language server registry")

	// ErrServerConfigReadFailed is returned when a server definition file cannot be read.
	ErrServerConfigReadFailed = zerr.New("failed to read server definition")

	// ErrServerConfigParseFailed is returned when a server definition file cannot be parsed.
	ErrServerConfigParseFailed = zerr.New("failed to parse server definition")

	// ErrInvalidOverride is returned when a server override is neither a transform function nor a mapping.
	ErrInvalidOverride = zerr.New("invalid server override, expected transform function or mapping")

	// ErrOverrideFailed is returned when a server override transform panics.
	ErrOverrideFailed = zerr.New("server override transform failed")

	// ErrCacheDisabled is returned when a write is attempted on a disabled cache store.
	ErrCacheDisabled = zerr.New("server cache is disabled")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create server cache directory")

	// ErrCacheEncodeFailed is returned when a cache record cannot be marshaled.
	ErrCacheEncodeFailed = zerr.New("failed to marshal server cache record")

	// ErrCacheWriteFailed is returned when a cache record cannot be written to disk.
	ErrCacheWriteFailed = zerr.New("failed to write server cache record")

	// ErrCacheClearFailed is returned when the cache file cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to remove server cache file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrActivationFailed is returned when the host activator rejects an activation request.
	ErrActivationFailed = zerr.New("failed to activate language servers")
)

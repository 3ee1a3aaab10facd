package domain

import "time"

// CacheOptions controls the detection cache.
type CacheOptions struct {
	// Enable turns the cache on. When false every run rescans the registry.
	Enable bool

	// Refresh ignores the stored record for this run. The registry is
	// rescanned and the fresh result still replaces the record.
	Refresh bool

	// TTL is how long a cache record stays valid. Zero or negative means
	// DefaultCacheTTL.
	TTL time.Duration

	// Path is the cache file location. Empty means DefaultCachePath.
	Path string
}

// StopPolicy controls automatic shutdown of running servers whose last
// buffer detached.
type StopPolicy struct {
	// Enable turns idle shutdown on.
	Enable bool

	// Exclude lists servers that are never stopped automatically.
	Exclude ServerSet
}

// Options is the engine configuration. The zero value runs with the cache
// and idle shutdown disabled; use DefaultOptions for the stock behavior.
type Options struct {
	// Exclude lists servers that are never activated.
	Exclude ServerSet

	// Servers maps a server to the override applied on top of its
	// registry defaults.
	Servers map[ServerID]Override

	// Deprecated lists servers skipped as superseded. Nil means the
	// stock DeprecatedServers set; an empty set disables the policy.
	Deprecated ServerSet

	// SearchPaths are the directories searched for a server registry,
	// in priority order. Nil means DefaultSearchPaths.
	SearchPaths []string

	// Cache configures the detection cache.
	Cache CacheOptions

	// Stop configures idle shutdown.
	Stop StopPolicy
}

// DefaultOptions returns the stock configuration: cache and idle shutdown
// enabled, nothing excluded, default registry search paths.
func DefaultOptions() Options {
	return ResolveOptions(Options{
		Cache: CacheOptions{Enable: true},
		Stop:  StopPolicy{Enable: true},
	})
}

// ResolveOptions fills the derived fields of o from the stock defaults and
// returns the completed configuration. It never modifies o and never
// changes an Enable flag, so a zero Options resolves to a fully specified
// but inactive cache and stop policy.
func ResolveOptions(o Options) Options {
	if o.Deprecated == nil {
		o.Deprecated = DeprecatedServers()
	}
	if o.SearchPaths == nil {
		o.SearchPaths = DefaultSearchPaths()
	}
	if o.Cache.TTL <= 0 {
		o.Cache.TTL = DefaultCacheTTL
	}
	if o.Cache.Path == "" {
		o.Cache.Path = DefaultCachePath()
	}
	return o
}

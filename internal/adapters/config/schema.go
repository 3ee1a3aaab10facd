package config

// File represents the structure of the autols.yaml configuration file.
type File struct {
	Exclude      []string       `yaml:"exclude"`
	ServerConfig map[string]any `yaml:"server_config"`
	Cache        *CacheDTO      `yaml:"cache"`
	Stop         *StopDTO       `yaml:"stop_unused_servers"`
	Registry     *RegistryDTO   `yaml:"registry"`
}

// CacheDTO configures the detection cache. Pointer fields distinguish an
// absent key, which keeps the default, from an explicit value.
type CacheDTO struct {
	Enable *bool  `yaml:"enable"`
	TTL    *int64 `yaml:"ttl"`
	Path   string `yaml:"path"`
}

// StopDTO configures idle shutdown of running servers.
type StopDTO struct {
	Enable  *bool    `yaml:"enable"`
	Exclude []string `yaml:"exclude"`
}

// RegistryDTO configures where server definitions are looked up.
type RegistryDTO struct {
	Paths []string `yaml:"paths"`
}

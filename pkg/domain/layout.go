package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppDirName is the per-user directory name used for config and cache files.
	AppDirName = "autols"

	// CacheFileName is the name of the detection cache file.
	CacheFileName = "servers.json"

	// ConfigFileName is the name of the user configuration file.
	ConfigFileName = "autols.yaml"

	// RegistryDirName is the name of the server definition directory
	// looked up inside each registry search path.
	RegistryDirName = "servers"

	// DefaultCacheTTL is how long a detection cache record stays valid.
	DefaultCacheTTL = 7 * 24 * time.Hour

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path of the detection cache file,
// rooted at the user cache directory. It falls back to the system temp
// directory when no user cache directory can be determined.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppDirName, CacheFileName)
}

// DefaultConfigPath returns the default path of the user configuration file,
// rooted at the user config directory.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppDirName, ConfigFileName)
}

// DefaultSearchPaths returns the directories searched for a server registry,
// in priority order. Each path is expected to contain a RegistryDirName
// subdirectory with one definition file per server.
func DefaultSearchPaths() []string {
	paths := make([]string, 0, 3)
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppDirName))
	}
	paths = append(paths,
		filepath.Join("/usr/local/share", AppDirName),
		filepath.Join("/usr/share", AppDirName),
	)
	return paths
}

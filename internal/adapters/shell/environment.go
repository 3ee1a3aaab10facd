// Package shell resolves server executables on the host system.
package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// EnvPath names the environment variable whose directories are searched
// before the system PATH, so hosts can expose sandboxed server binaries
// without mutating the user's shell environment.
const EnvPath = "AUTOLS_PATH"

// Environment implements ports.Environment using os/exec.
type Environment struct{}

// NewEnvironment creates a new Environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// LookPath resolves name to an executable path. Absolute names are checked
// directly, names containing a separator resolve relative to the working
// directory, and bare names are searched first in EnvPath and then in the
// system PATH.
func (e *Environment) LookPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		if err := findExecutable(name); err != nil {
			return "", err
		}
		return name, nil
	}

	if !strings.ContainsRune(name, os.PathSeparator) {
		if extra := os.Getenv(EnvPath); extra != "" {
			if path, err := lookPathIn(name, extra); err == nil {
				return path, nil
			}
		}
	}

	return exec.LookPath(name)
}

// lookPathIn searches for an executable in the directories of the given
// PATH-style list.
func lookPathIn(file, path string) (string, error) {
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

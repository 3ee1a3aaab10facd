package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.autols.dev/autols/internal/adapters/shell"
)

// writeExecutable creates an executable file and returns its path.
func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func TestEnvironment_LookPath_SystemPath(t *testing.T) {
	dir := t.TempDir()
	want := writeExecutable(t, dir, "fake-language-server")

	t.Setenv("PATH", dir)
	t.Setenv(shell.EnvPath, "")

	env := shell.NewEnvironment()
	got, err := env.LookPath("fake-language-server")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvironment_LookPath_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv(shell.EnvPath, "")

	env := shell.NewEnvironment()
	_, err := env.LookPath("no-such-server")
	require.Error(t, err)
}

func TestEnvironment_LookPath_ExtraPathWins(t *testing.T) {
	extraDir := t.TempDir()
	systemDir := t.TempDir()
	want := writeExecutable(t, extraDir, "dual-server")
	writeExecutable(t, systemDir, "dual-server")

	t.Setenv(shell.EnvPath, extraDir)
	t.Setenv("PATH", systemDir)

	env := shell.NewEnvironment()
	got, err := env.LookPath("dual-server")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvironment_LookPath_ExtraPathFallsBack(t *testing.T) {
	systemDir := t.TempDir()
	want := writeExecutable(t, systemDir, "only-system")

	t.Setenv(shell.EnvPath, t.TempDir())
	t.Setenv("PATH", systemDir)

	env := shell.NewEnvironment()
	got, err := env.LookPath("only-system")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvironment_LookPath_NonExecutableIgnored(t *testing.T) {
	extraDir := t.TempDir()
	systemDir := t.TempDir()

	// Plain file without the executable bit must not win.
	require.NoError(t, os.WriteFile(filepath.Join(extraDir, "plain-server"), []byte("data"), 0o644))
	want := writeExecutable(t, systemDir, "plain-server")

	t.Setenv(shell.EnvPath, extraDir)
	t.Setenv("PATH", systemDir)

	env := shell.NewEnvironment()
	got, err := env.LookPath("plain-server")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvironment_LookPath_Absolute(t *testing.T) {
	dir := t.TempDir()
	want := writeExecutable(t, dir, "abs-server")

	env := shell.NewEnvironment()

	got, err := env.LookPath(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = env.LookPath(filepath.Join(dir, "missing"))
	require.Error(t, err)

	nonExec := filepath.Join(dir, "not-runnable")
	require.NoError(t, os.WriteFile(nonExec, []byte("data"), 0o644))
	_, err = env.LookPath(nonExec)
	assert.ErrorIs(t, err, os.ErrPermission)
}

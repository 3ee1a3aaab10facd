package registry_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.autols.dev/autols/pkg/domain"
	"go.autols.dev/autols/pkg/registry"
)

// newRegistryDir builds a search root with a servers directory holding the
// given definition files.
func newRegistryDir(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, domain.RegistryDirName)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return root
}

func TestRegistry_Locate(t *testing.T) {
	t.Parallel()

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()

		empty := t.TempDir()
		root := newRegistryDir(t, nil)
		reg := registry.New([]string{empty, root})

		dir, err := reg.Locate()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, domain.RegistryDirName), dir)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		reg := registry.New([]string{t.TempDir(), t.TempDir()})
		_, err := reg.Locate()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRegistryNotFound)
	})

	t.Run("plain file does not qualify", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, domain.RegistryDirName), []byte("not a dir"), 0o600))

		reg := registry.New([]string{root})
		_, err := reg.Locate()
		assert.ErrorIs(t, err, domain.ErrRegistryNotFound)
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	root := newRegistryDir(t, map[string]string{
		"lua_ls.yaml":   "cmd: [lua-language-server]",
		"pyright.json":  `{"cmd": ["pyright-langserver", "--stdio"]}`,
		"typst_lsp.yml": "cmd: [typst-lsp]",
		".hidden":       "",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(root, domain.RegistryDirName, "nested"), 0o750))

	reg := registry.New([]string{root})
	servers, err := reg.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.ServerID{"lua_ls", "pyright", "typst_lsp"}, servers)
}

func TestRegistry_ListNotFound(t *testing.T) {
	t.Parallel()

	reg := registry.New([]string{t.TempDir()})
	_, err := reg.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrRegistryNotFound)
}

func TestRegistry_DefaultConfig(t *testing.T) {
	t.Parallel()

	root := newRegistryDir(t, map[string]string{
		"lua_ls.yaml": "cmd: [lua-language-server]\nsettings:\n  telemetry: false\n",
		"broken.yaml": "cmd: [\n",
	})
	reg := registry.New([]string{root})
	ctx := context.Background()

	t.Run("parses definition", func(t *testing.T) {
		config, err := reg.DefaultConfig(ctx, "lua_ls")
		require.NoError(t, err)

		assert.Equal(t, []any{"lua-language-server"}, config["cmd"])
		settings, ok := config["settings"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, settings["telemetry"])
	})

	t.Run("unknown server has no defaults", func(t *testing.T) {
		config, err := reg.DefaultConfig(ctx, "gopls")
		require.NoError(t, err)
		assert.Nil(t, config)
	})

	t.Run("parse failure carries the server", func(t *testing.T) {
		_, err := reg.DefaultConfig(ctx, "broken")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrServerConfigParseFailed.Error())
	})
}

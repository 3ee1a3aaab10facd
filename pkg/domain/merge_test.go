package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.autols.dev/autols/pkg/domain"
)

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		name   string
		config map[string]any
		want   string
		wantOK bool
	}{
		{
			name:   "argument vector",
			config: map[string]any{"cmd": []any{"lua-language-server", "--stdio"}},
			want:   "lua-language-server",
			wantOK: true,
		},
		{
			name:   "string vector",
			config: map[string]any{"cmd": []string{"pyright-langserver", "--stdio"}},
			want:   "pyright-langserver",
			wantOK: true,
		},
		{
			name:   "plain string",
			config: map[string]any{"cmd": "gopls"},
			want:   "gopls",
			wantOK: true,
		},
		{
			name:   "empty vector",
			config: map[string]any{"cmd": []any{}},
			wantOK: false,
		},
		{
			name:   "empty string",
			config: map[string]any{"cmd": ""},
			wantOK: false,
		},
		{
			name:   "missing entry",
			config: map[string]any{"filetypes": []any{"go"}},
			wantOK: false,
		},
		{
			name:   "non-string first element",
			config: map[string]any{"cmd": []any{42, "--stdio"}},
			wantOK: false,
		},
		{
			name:   "unsupported shape",
			config: map[string]any{"cmd": map[string]any{"path": "gopls"}},
			wantOK: false,
		},
		{
			name:   "nil config",
			config: nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ExtractCommand(tt.config)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMergeConfig(t *testing.T) {
	base := map[string]any{
		"cmd":      []any{"gopls"},
		"settings": map[string]any{"gofumpt": true},
		"root_dir": "go.mod",
	}
	override := map[string]any{
		"settings": map[string]any{"staticcheck": true},
		"single":   true,
	}

	merged := domain.MergeConfig(base, override)

	// Top-level keys from the override replace base values wholesale,
	// nested maps are not deep-merged.
	assert.Equal(t, map[string]any{
		"cmd":      []any{"gopls"},
		"settings": map[string]any{"staticcheck": true},
		"root_dir": "go.mod",
		"single":   true,
	}, merged)

	// Inputs stay untouched.
	assert.Equal(t, map[string]any{"gofumpt": true}, base["settings"])
	assert.NotContains(t, base, "single")
	assert.NotContains(t, override, "cmd")
}

func TestResolve(t *testing.T) {
	defaults := map[string]any{
		"cmd":      []any{"lua-language-server"},
		"settings": map[string]any{"telemetry": false},
	}

	t.Run("defaults only", func(t *testing.T) {
		resolved, err := domain.Resolve("lua_ls", defaults, domain.Override{})
		require.NoError(t, err)
		assert.Equal(t, "lua-language-server", resolved.Command)
		assert.Equal(t, defaults, resolved.Config)
	})

	t.Run("mapping override wins", func(t *testing.T) {
		ov := domain.OverrideMap(map[string]any{
			"cmd": []any{"/opt/lua/bin/lua-language-server"},
		})
		resolved, err := domain.Resolve("lua_ls", defaults, ov)
		require.NoError(t, err)
		assert.Equal(t, "/opt/lua/bin/lua-language-server", resolved.Command)
		assert.Equal(t, map[string]any{"telemetry": false}, resolved.Config["settings"])
	})

	t.Run("transform sees defaults", func(t *testing.T) {
		ov := domain.OverrideFunc(func(config map[string]any) map[string]any {
			assert.Equal(t, []any{"lua-language-server"}, config["cmd"])
			return map[string]any{"single_file_support": true}
		})
		resolved, err := domain.Resolve("lua_ls", defaults, ov)
		require.NoError(t, err)
		assert.Equal(t, "lua-language-server", resolved.Command)
		assert.Equal(t, true, resolved.Config["single_file_support"])
	})

	t.Run("nil transform result is a no-op", func(t *testing.T) {
		ov := domain.OverrideFunc(func(map[string]any) map[string]any {
			return nil
		})
		resolved, err := domain.Resolve("lua_ls", defaults, ov)
		require.NoError(t, err)
		assert.Equal(t, defaults, resolved.Config)
	})

	t.Run("nil defaults", func(t *testing.T) {
		ov := domain.OverrideMap(map[string]any{"cmd": "typst-lsp"})
		resolved, err := domain.Resolve("typst_lsp", nil, ov)
		require.NoError(t, err)
		assert.Equal(t, "typst-lsp", resolved.Command)
	})

	t.Run("invalid override", func(t *testing.T) {
		_, err := domain.Resolve("lua_ls", defaults, domain.InvalidOverride())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidOverride)
	})

	t.Run("nil transform function is invalid", func(t *testing.T) {
		_, err := domain.Resolve("lua_ls", defaults, domain.OverrideFunc(nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidOverride)
	})

	t.Run("panicking transform", func(t *testing.T) {
		ov := domain.OverrideFunc(func(map[string]any) map[string]any {
			panic("boom")
		})
		_, err := domain.Resolve("lua_ls", defaults, ov)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrOverrideFailed)
	})

	t.Run("no command resolves cleanly", func(t *testing.T) {
		resolved, err := domain.Resolve("bare", map[string]any{"filetypes": []any{"text"}}, domain.Override{})
		require.NoError(t, err)
		assert.Empty(t, resolved.Command)
	})
}

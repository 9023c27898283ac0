package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(DefaultConfig()))
	})

	t.Run("empty config is valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&Config{}))
	})

	t.Run("bad timeout", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tools.Timeout = "forever"

		err := v.Validate(cfg)
		require.Error(t, err)

		var verrs ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "tools.timeout", verrs[0].Field)
	})
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		path := write(t, "tools:\n  npm: npm\n  timeout: 30s\nminify: true\n")
		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("empty file", func(t *testing.T) {
		assert.NoError(t, v.ValidateFile(write(t, "")))
	})

	t.Run("unknown key", func(t *testing.T) {
		err := v.ValidateFile(write(t, "registry: ghcr.io/acme\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registry")
	})

	t.Run("wrong type", func(t *testing.T) {
		err := v.ValidateFile(write(t, "minify: sometimes\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "minify")
	})

	t.Run("missing file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

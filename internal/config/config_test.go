package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields the zero config", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

		require.NoError(t, err)
		assert.Zero(t, cfg.Workers)
		assert.Empty(t, cfg.PDFToText)
		assert.Nil(t, cfg.Color)
	})

	t.Run("reads all fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(
			"workers = 8\npdftotext = \"/opt/poppler/bin/pdftotext\"\ncolor = false\n"), 0600))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, "/opt/poppler/bin/pdftotext", cfg.PDFToText)
		require.NotNil(t, cfg.Color)
		assert.False(t, *cfg.Color)
	})

	t.Run("partial file leaves the rest zero", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("workers = 2\n"), 0600))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Workers)
		assert.Nil(t, cfg.Color)
	})

	t.Run("malformed toml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("workers = = 2"), 0600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()

	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, ".supergrep", filepath.Base(filepath.Dir(path)))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	assert.Equal(t, "Others", config.Fallback)
	assert.Equal(t, "info", config.Logging.Level)
	assert.True(t, config.HistoryEnabled())
	assert.Contains(t, config.Categories["Images"], "jpg")
	assert.Contains(t, config.Categories["Documents"], "pdf")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "tidy.yml")

	yamlContent := `source: /srv/incoming
fallback: Misc
logging:
  level: debug
`

	err := os.WriteFile(configFile, []byte(yamlContent), 0o600)
	require.NoError(t, err)

	config, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "/srv/incoming", config.Source)
	assert.Equal(t, "Misc", config.Fallback)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoadMissingConfigFails(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultMissingConfig(t *testing.T) {
	t.Parallel()

	config, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "Others", config.Fallback)
}

func TestCategoryOverlayAddsExtension(t *testing.T) {
	t.Parallel()

	config, err := LoadFromYAML([]byte(`categories:
  Images:
    - heic
`))
	require.NoError(t, err)

	m := config.CategoryMap()
	assert.Equal(t, "Images", m.Lookup("heic"))
	// Defaults survive the overlay.
	assert.Equal(t, "Images", m.Lookup("jpg"))
	assert.Equal(t, "Documents", m.Lookup("pdf"))
}

func TestCategoryOverlayReassignsExtension(t *testing.T) {
	t.Parallel()

	config, err := LoadFromYAML([]byte(`categories:
  Books:
    - pdf
`))
	require.NoError(t, err)

	m := config.CategoryMap()
	assert.Equal(t, "Books", m.Lookup("pdf"))
	assert.Equal(t, "Documents", m.Lookup("docx"))
}

func TestValidateRejectsBadCategoryName(t *testing.T) {
	t.Parallel()

	_, err := LoadFromYAML([]byte(`categories:
  "a/b":
    - foo
`))
	assert.Error(t, err)
}

func TestValidateRejectsBadLoggingLevel(t *testing.T) {
	t.Parallel()

	_, err := LoadFromYAML([]byte(`logging:
  level: verbose
`))
	assert.Error(t, err)
}

func TestHistoryCanBeDisabled(t *testing.T) {
	t.Parallel()

	config, err := LoadFromYAML([]byte(`history:
  enabled: false
`))
	require.NoError(t, err)

	assert.False(t, config.HistoryEnabled())
}

func TestDefaultConfigYAMLRoundTrips(t *testing.T) {
	t.Parallel()

	data, err := DefaultConfigYAML()
	require.NoError(t, err)

	config, err := LoadFromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "Others", config.Fallback)
	assert.Equal(t, "Images", config.CategoryMap().Lookup("jpg"))
}

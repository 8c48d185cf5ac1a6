package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")

	settings, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, settings)

	assert.Equal(t, SupportedVersion, settings.EngineVersion())
	assert.InDelta(t, DefaultVolume, settings.AssetVolume(), 1e-9)

	// The file should now exist for the user to edit.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoad_ReadsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
downloads_path = "/tmp/dl"
output_path = "/tmp/mods"
supported_version = "1.12.*"
volume = 0.5
display_titles_from_tags = true
clean_before_generate = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/dl", settings.DownloadsPath)
	assert.Equal(t, "/tmp/mods", settings.OutputPath)
	assert.Equal(t, "1.12.*", settings.EngineVersion())
	assert.InDelta(t, 0.5, settings.AssetVolume(), 1e-9)
	assert.True(t, settings.DisplayTitlesFromTags)
	assert.True(t, settings.CleanBeforeGenerate)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`downloads_path = "/tmp/dl"`), 0644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/dl", settings.DownloadsPath)
	assert.NotEmpty(t, settings.OutputPath)
	assert.Equal(t, SupportedVersion, settings.EngineVersion())
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("downloads_path = [broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

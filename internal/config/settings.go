package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Version is the generator's own release version. It is embedded in
// every external descriptor so the launcher can show which tool build
// produced a package.
const Version = "1.3.0"

// SupportedVersion is the engine version generated descriptors declare
// compatibility with.
const SupportedVersion = "1.16.5"

// DefaultVolume is the playback volume written for every asset entry.
const DefaultVolume = 0.65

// Settings holds all configuration options.
type Settings struct {
	// DownloadsPath is the directory track sources are resolved
	// against. Only the base filename of a supplied track path is
	// honored; the file is always read from this directory.
	DownloadsPath string `toml:"downloads_path"`

	// OutputPath is the directory mod packages are written into,
	// typically the game's user mod directory.
	OutputPath string `toml:"output_path"`

	// SupportedVersion overrides the engine version written into
	// descriptors. Empty means the built-in default.
	SupportedVersion string `toml:"supported_version"`

	// Volume overrides the per-song playback volume in the asset
	// file. Zero means the built-in default.
	Volume float64 `toml:"volume"`

	// DisplayTitlesFromTags reads the ID3 title frame of MP3 sources
	// and uses it as the localisation display text. Off by default:
	// the track id then maps to itself.
	DisplayTitlesFromTags bool `toml:"display_titles_from_tags"`

	// CleanBeforeGenerate removes the target mod folder and external
	// descriptor before generating. Off by default: re-running
	// overwrites files in place and leaves stale ones behind.
	CleanBeforeGenerate bool `toml:"clean_before_generate"`
}

const defaultSettingsTOML = `# yt2hoi4 settings.
# downloads_path is where track files are picked up from;
# output_path is where finished mod packages are written.

downloads_path = ""
output_path = ""
supported_version = "1.16.5"
volume = 0.65
display_titles_from_tags = false
clean_before_generate = false
`

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		DownloadsPath:    filepath.Join(homeDir, "yt2hoi4", "downloads"),
		OutputPath:       filepath.Join(homeDir, "Documents", "Paradox Interactive", "Hearts of Iron IV", "mod"),
		SupportedVersion: SupportedVersion,
		Volume:           DefaultVolume,
	}
}

// Load reads settings from a TOML file. A missing file is not an
// error: defaults are returned and the file is created so the user has
// something to edit.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			settings := DefaultSettings()
			if writeErr := writeDefault(path); writeErr != nil {
				return settings, writeErr
			}
			return settings, nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	settings.applyDefaults()

	return settings, nil
}

// EngineVersion returns the engine version descriptors should declare.
func (s *Settings) EngineVersion() string {
	if s.SupportedVersion == "" {
		return SupportedVersion
	}
	return s.SupportedVersion
}

// AssetVolume returns the per-song volume for the asset file.
func (s *Settings) AssetVolume() float64 {
	if s.Volume == 0 {
		return DefaultVolume
	}
	return s.Volume
}

func (s *Settings) applyDefaults() {
	defaults := DefaultSettings()
	if s.DownloadsPath == "" {
		s.DownloadsPath = defaults.DownloadsPath
	}
	if s.OutputPath == "" {
		s.OutputPath = defaults.OutputPath
	}
	if s.SupportedVersion == "" {
		s.SupportedVersion = defaults.SupportedVersion
	}
	if s.Volume == 0 {
		s.Volume = defaults.Volume
	}
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultSettingsTOML), 0644)
}

// DefaultPath returns the conventional settings file location,
// respecting XDG_CONFIG_HOME via os.UserConfigDir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "yt2hoi4", "settings.toml"), nil
}

package model

import "path/filepath"

// Mod is the identity of one generated package plus its computed
// output paths.
//
// The name is used verbatim as the folder name, the descriptor name
// field, the localisation key, and the interface object prefix. It is
// deliberately not sanitized: a name that is not filesystem-safe is a
// caller error, and silently rewriting it would desynchronize the
// on-disk layout from the identifiers baked into the descriptors.
type Mod struct {
	// Name is the mod name, used verbatim everywhere.
	Name string

	// OutputRoot is the directory that holds the mod folder and the
	// external descriptor, typically the game's mod directory.
	OutputRoot string

	// Tracks are the station's songs in playback-enumeration order.
	Tracks []Track
}

// NewMod computes a Mod for the given name and track paths.
func NewMod(name, outputRoot string, trackPaths []string) *Mod {
	return &Mod{
		Name:       name,
		OutputRoot: outputRoot,
		Tracks:     NewTracks(trackPaths),
	}
}

// Root is the mod package directory, <output-root>/<name>.
func (m *Mod) Root() string {
	return filepath.Join(m.OutputRoot, m.Name)
}

// ExternalDescriptorPath is the sibling <name>.mod next to the mod
// folder. The launcher reads this one; the in-folder descriptor.mod is
// read by the game itself.
func (m *Mod) ExternalDescriptorPath() string {
	return filepath.Join(m.OutputRoot, m.Name+".mod")
}

// DescriptorPath is the in-folder descriptor.mod.
func (m *Mod) DescriptorPath() string {
	return filepath.Join(m.Root(), "descriptor.mod")
}

// MusicDir is the per-mod music directory, music/<name> inside the
// package. The extra name level keeps song files from colliding with
// other music mods when the engine merges mod filesystems.
func (m *Mod) MusicDir() string {
	return filepath.Join(m.Root(), "music", m.Name)
}

// MusicScriptPath is the station playlist script.
func (m *Mod) MusicScriptPath() string {
	return filepath.Join(m.MusicDir(), m.Name+"_music.txt")
}

// AssetFilePath is the song-to-file volume manifest.
func (m *Mod) AssetFilePath() string {
	return filepath.Join(m.MusicDir(), m.Name+"_music.asset")
}

// LocalisationDir is the localisation directory. British spelling is
// required by the engine.
func (m *Mod) LocalisationDir() string {
	return filepath.Join(m.Root(), "localisation")
}

// LocalisationPath is the english localisation file.
func (m *Mod) LocalisationPath() string {
	return filepath.Join(m.LocalisationDir(), m.Name+"_l_english.yml")
}

// InterfaceDir holds the .gfx and .gui definitions.
func (m *Mod) InterfaceDir() string {
	return filepath.Join(m.Root(), "interface")
}

// GfxPath is the sprite definition file.
func (m *Mod) GfxPath() string {
	return filepath.Join(m.InterfaceDir(), m.Name+".gfx")
}

// GuiPath is the playback-widget layout file.
func (m *Mod) GuiPath() string {
	return filepath.Join(m.InterfaceDir(), m.Name+".gui")
}

// GfxDir holds texture assets.
func (m *Mod) GfxDir() string {
	return filepath.Join(m.Root(), "gfx")
}

// FaceplatePath is the station faceplate texture.
func (m *Mod) FaceplatePath() string {
	return filepath.Join(m.GfxDir(), m.Name+"_faceplate.dds")
}

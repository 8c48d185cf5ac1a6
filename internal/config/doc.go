// Package config holds application settings and the release constants
// baked into generated descriptors.
//
// Settings are stored as TOML. A missing settings file is created with
// commented defaults on first load so users have a file to edit:
//
//	path, _ := config.DefaultPath()
//	settings, err := config.Load(path)
//
// The exported constants (Version, SupportedVersion, DefaultVolume)
// are the values the generator stamps into packages when settings do
// not override them. Version in particular ends up in every external
// descriptor's version field.
package config

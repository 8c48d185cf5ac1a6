package hoi4

// Builder renders the generated text artifacts of a mod package.
//
// Builder is pure: every method returns the full file content as a
// string (or bytes, where an encoding mark is involved) and performs
// no I/O, which is what keeps the artifact formats testable without a
// filesystem.
//
// Example:
//
//	builder := hoi4.NewBuilder("1.16.5", "1.3.0", 0.65)
//	content := builder.MusicScript(mod)
//	err := layer.WriteFile(ctx, mod.MusicScriptPath(), []byte(content))
type Builder struct {
	engineVersion string
	toolVersion   string
	volume        float64
}

// NewBuilder creates a Builder.
//
// Parameters:
//   - engineVersion: the supported_version written into descriptors
//   - toolVersion: the generator release stamped into the external
//     descriptor's version field
//   - volume: the playback volume written for every asset entry
func NewBuilder(engineVersion, toolVersion string, volume float64) *Builder {
	return &Builder{
		engineVersion: engineVersion,
		toolVersion:   toolVersion,
		volume:        volume,
	}
}

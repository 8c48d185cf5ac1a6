package model

import (
	"path"
	"path/filepath"
	"strings"
)

// Track represents one audio file destined for a music station.
//
// A Track is built from a caller-supplied path, but only the last path
// segment is ever honored: the generator resolves the actual source
// file by base name against the configured downloads directory. The
// rest of the supplied path is informational at best.
//
// From the base name the track id is derived once, here, and reused by
// every artifact that mentions the track (localisation, music script,
// asset file). Keeping the derivation in a single place is what
// guarantees those three files agree on the id.
//
// Example:
//
//	track := model.NewTrack("downloads/My Song.ogg")
//	// track.BaseName = "My Song.ogg"
//	// track.ID       = "My_Song"
type Track struct {
	// SourcePath is the path exactly as supplied by the caller.
	SourcePath string

	// BaseName is the last segment of SourcePath, extension included.
	// It names both the copy source (under the downloads directory)
	// and the copy destination (under the mod's music directory).
	BaseName string

	// ID is the in-engine song identifier: BaseName with the extension
	// stripped at the first dot and spaces replaced by underscores.
	// It doubles as the localisation key for the track.
	ID string

	// DisplayName is the text shown for the track in game. It defaults
	// to ID and is only ever different when the caller opted in to
	// tag-derived titles.
	DisplayName string
}

// NewTrack derives a Track from a caller-supplied path.
//
// The extension is cut at the first dot, not the last, so
// "My Song.remix.ogg" yields the id "My_Song". This mirrors how the
// engine itself keys songs and is load-bearing for cross-artifact
// consistency; do not "fix" it to filepath.Ext semantics.
func NewTrack(sourcePath string) Track {
	base := path.Base(filepath.ToSlash(sourcePath))

	id := base
	if dot := strings.Index(id, "."); dot >= 0 {
		id = id[:dot]
	}
	id = strings.ReplaceAll(id, " ", "_")

	return Track{
		SourcePath:  sourcePath,
		BaseName:    base,
		ID:          id,
		DisplayName: id,
	}
}

// NewTracks derives Tracks for a list of paths, preserving input order.
// Order matters: the engine enumerates station content in file order,
// which governs playback variety.
func NewTracks(sourcePaths []string) []Track {
	tracks := make([]Track, len(sourcePaths))
	for i, p := range sourcePaths {
		tracks[i] = NewTrack(p)
	}
	return tracks
}

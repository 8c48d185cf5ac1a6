package hoi4

import (
	"fmt"
	"strings"

	"github.com/NoNameLmao/yt2hoi4/internal/model"
)

// MusicScript renders the station playlist script. The first line
// declares the station under the mod's name; one music block follows
// per track, each with the uniform chance factor of 1. Block order
// matches input order because the engine enumerates station content in
// file order, which is what drives playback variety.
//
//	music_station = "jazz_radio"
//
//	music = {
//		song = "My_Song"
//		chance = {
//			factor = 1
//		}
//	}
func (b *Builder) MusicScript(mod *model.Mod) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("music_station = %q\n", mod.Name))

	for _, track := range mod.Tracks {
		sb.WriteString("\n")
		sb.WriteString("music = {\n")
		sb.WriteString(fmt.Sprintf("\tsong = %q\n", track.ID))
		sb.WriteString("\tchance = {\n")
		sb.WriteString("\t\tfactor = 1\n")
		sb.WriteString("\t}\n")
		sb.WriteString("}\n")
	}

	return sb.String()
}

// AssetFile renders the song manifest mapping logical song names to
// audio filenames and playback volume. Entry order matches input
// order; the volume is the same for every entry.
//
//	music = {
//		name = "My_Song"
//		file = "My Song.ogg"
//		volume = 0.65
//	}
func (b *Builder) AssetFile(mod *model.Mod) string {
	var sb strings.Builder

	for i, track := range mod.Tracks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("music = {\n")
		sb.WriteString(fmt.Sprintf("\tname = %q\n", track.ID))
		sb.WriteString(fmt.Sprintf("\tfile = %q\n", track.BaseName))
		sb.WriteString(fmt.Sprintf("\tvolume = %.2f\n", b.volume))
		sb.WriteString("}\n")
	}

	return sb.String()
}

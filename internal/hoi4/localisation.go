package hoi4

import (
	"fmt"
	"strings"

	"github.com/NoNameLmao/yt2hoi4/internal/model"
)

// BOM is the UTF-8 byte-order mark. The engine requires it on
// localisation files to detect the encoding; files without it show up
// in game as garbled keys.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Localisation renders the english localisation text, without the
// byte-order mark. The header maps the mod name to its station label,
// then each track id maps to its display name (by default, itself).
//
//	l_english:
//	 jazz_radio: "jazz_radio Radio"
//	 My_Song: "My_Song"
func (b *Builder) Localisation(mod *model.Mod) string {
	var sb strings.Builder

	sb.WriteString("l_english:\n")
	sb.WriteString(fmt.Sprintf(" %s: \"%s Radio\"\n", mod.Name, mod.Name))
	for _, track := range mod.Tracks {
		sb.WriteString(fmt.Sprintf(" %s: %q\n", track.ID, track.DisplayName))
	}

	return sb.String()
}

// LocalisationBytes renders the localisation file ready to write:
// byte-order mark first, then the UTF-8 payload.
func (b *Builder) LocalisationBytes(mod *model.Mod) []byte {
	content := b.Localisation(mod)
	out := make([]byte, 0, len(BOM)+len(content))
	out = append(out, BOM...)
	out = append(out, content...)
	return out
}

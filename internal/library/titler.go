package library

import (
	"strings"

	"github.com/bogem/id3v2"
)

// ID3Titler reads display titles from MP3 ID3 tags. It satisfies the
// generator's Titler interface; non-MP3 files and tag-read failures
// resolve to "", which keeps the default display name.
type ID3Titler struct{}

// NewID3Titler creates an ID3Titler.
func NewID3Titler() *ID3Titler {
	return &ID3Titler{}
}

// Title returns the TIT2 title frame of path, or "" when the file is
// not a taggable MP3 or carries no title. Errors are deliberately
// swallowed: a bad tag must never fail a generation run.
func (t *ID3Titler) Title(path string) string {
	title, _ := t.Probe(path)
	return title
}

// Probe returns the title and artist frames of path, "" for whatever
// is absent or unreadable.
func (t *ID3Titler) Probe(path string) (title, artist string) {
	if !strings.HasSuffix(strings.ToLower(path), ".mp3") {
		return "", ""
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Title", "Artist"}})
	if err != nil {
		return "", ""
	}
	defer tag.Close()

	return strings.TrimSpace(tag.Title()), strings.TrimSpace(tag.Artist())
}

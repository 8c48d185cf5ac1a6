package library

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_ListsPlayableFiles(t *testing.T) {
	memFs := afero.NewMemMapFs()
	for name, content := range map[string]string{
		"/downloads/B Song.ogg": "bb",
		"/downloads/a song.ogg": "aaaa",
		"/downloads/readme.txt": "not audio",
		"/downloads/cover.jpg":  "not audio",
		"/downloads/track.wav":  "www",
		"/downloads/UPPER.OGG":  "u",
	} {
		require.NoError(t, afero.WriteFile(memFs, name, []byte(content), 0644))
	}
	require.NoError(t, memFs.MkdirAll("/downloads/subdir", 0755))

	entries, err := NewScanner(memFs).Scan(context.Background(), "/downloads")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Track.BaseName)
	}
	assert.Equal(t, []string{"B Song.ogg", "UPPER.OGG", "a song.ogg", "track.wav"}, names)

	// Track ids come from the shared derivation.
	assert.Equal(t, "B_Song", entries[0].Track.ID)
	assert.Equal(t, int64(2), entries[0].Size)
}

func TestScanner_MissingDirectory(t *testing.T) {
	_, err := NewScanner(afero.NewMemMapFs()).Scan(context.Background(), "/nope")
	assert.Error(t, err)
}

func TestScanner_EmptyDirectory(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/downloads", 0755))

	entries, err := NewScanner(memFs).Scan(context.Background(), "/downloads")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestID3Titler_NonMP3(t *testing.T) {
	titler := NewID3Titler()
	assert.Empty(t, titler.Title("/downloads/song.ogg"))
	assert.Empty(t, titler.Title("/downloads/song.wav"))
}

func TestID3Titler_UnreadableMP3(t *testing.T) {
	// Path does not exist; the titler must swallow the error.
	assert.Empty(t, NewID3Titler().Title("/definitely/not/here.mp3"))
}

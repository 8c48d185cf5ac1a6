package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoNameLmao/yt2hoi4/internal/config"
	"github.com/NoNameLmao/yt2hoi4/internal/fsys"
	"github.com/NoNameLmao/yt2hoi4/internal/tracker"
)

func testSettings() *config.Settings {
	return &config.Settings{
		DownloadsPath:    "/downloads",
		OutputPath:       "/hoi4/mod",
		SupportedVersion: "1.16.5",
		Volume:           0.65,
	}
}

func seedDownloads(t *testing.T, memFs afero.Fs, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, afero.WriteFile(memFs, "/downloads/"+name, []byte("audio:"+name), 0644))
	}
}

func readFile(t *testing.T, memFs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(memFs, path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

func TestGenerate_FullPackage(t *testing.T) {
	memFs := afero.NewMemMapFs()
	seedDownloads(t, memFs, "My Song.ogg", "second.ogg")

	mem := tracker.NewMemory()
	gen := New(testSettings(), fsys.New(memFs), mem)

	err := gen.Generate(context.Background(), "jazz_radio", []string{
		"downloads/My Song.ogg",
		"downloads/second.ogg",
	})
	require.NoError(t, err)

	for _, path := range []string{
		"/hoi4/mod/jazz_radio.mod",
		"/hoi4/mod/jazz_radio/descriptor.mod",
		"/hoi4/mod/jazz_radio/music/jazz_radio/My Song.ogg",
		"/hoi4/mod/jazz_radio/music/jazz_radio/second.ogg",
		"/hoi4/mod/jazz_radio/music/jazz_radio/jazz_radio_music.txt",
		"/hoi4/mod/jazz_radio/music/jazz_radio/jazz_radio_music.asset",
		"/hoi4/mod/jazz_radio/localisation/jazz_radio_l_english.yml",
		"/hoi4/mod/jazz_radio/interface/jazz_radio.gfx",
		"/hoi4/mod/jazz_radio/interface/jazz_radio.gui",
		"/hoi4/mod/jazz_radio/gfx/jazz_radio_faceplate.dds",
	} {
		exists, err := afero.Exists(memFs, path)
		require.NoError(t, err)
		assert.True(t, exists, "missing output file %s", path)
	}

	assert.Equal(t, tracker.StepDone, mem.CurrentStep())

	// Copied audio is byte-for-byte the source.
	assert.Equal(t, "audio:My Song.ogg", readFile(t, memFs, "/hoi4/mod/jazz_radio/music/jazz_radio/My Song.ogg"))
}

func TestGenerate_DescriptorContents(t *testing.T) {
	memFs := afero.NewMemMapFs()
	gen := New(testSettings(), fsys.New(memFs), tracker.NewMemory())

	require.NoError(t, gen.Generate(context.Background(), "jazz_radio", nil))

	descriptor := readFile(t, memFs, "/hoi4/mod/jazz_radio/descriptor.mod")
	assert.Equal(t, "name=\"jazz_radio\"\nsupported_version=\"1.16.5\"\n", descriptor)

	external := readFile(t, memFs, "/hoi4/mod/jazz_radio.mod")
	assert.Contains(t, external, "\"Sound\"")
	assert.Contains(t, external, "path=\"mod/jazz_radio\"")
	assert.Contains(t, external, "version=\""+config.Version+"\"")
}

func TestGenerate_LocalisationBOM(t *testing.T) {
	memFs := afero.NewMemMapFs()
	gen := New(testSettings(), fsys.New(memFs), tracker.NewMemory())

	require.NoError(t, gen.Generate(context.Background(), "jazz_radio", nil))

	data, err := afero.ReadFile(memFs, "/hoi4/mod/jazz_radio/localisation/jazz_radio_l_english.yml")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.Contains(t, string(data[3:]), "jazz_radio: \"jazz_radio Radio\"")
}

func TestGenerate_EmptyTrackList(t *testing.T) {
	memFs := afero.NewMemMapFs()
	gen := New(testSettings(), fsys.New(memFs), tracker.NewMemory())

	require.NoError(t, gen.Generate(context.Background(), "empty_station", nil))

	script := readFile(t, memFs, "/hoi4/mod/empty_station/music/empty_station/empty_station_music.txt")
	assert.Equal(t, "music_station = \"empty_station\"\n", script)

	asset := readFile(t, memFs, "/hoi4/mod/empty_station/music/empty_station/empty_station_music.asset")
	assert.Empty(t, asset)
}

func TestGenerate_EmptyModName(t *testing.T) {
	gen := New(testSettings(), fsys.New(afero.NewMemMapFs()), tracker.NewMemory())
	assert.Error(t, gen.Generate(context.Background(), "", nil))
}

func TestGenerate_ResolvesByBaseName(t *testing.T) {
	memFs := afero.NewMemMapFs()
	// Only the downloads copy exists; the caller-supplied directory
	// part points somewhere else entirely and must be ignored.
	seedDownloads(t, memFs, "song.ogg")

	gen := New(testSettings(), fsys.New(memFs), tracker.NewMemory())
	err := gen.Generate(context.Background(), "x", []string{"/somewhere/else/song.ogg"})
	require.NoError(t, err)

	assert.Equal(t, "audio:song.ogg", readFile(t, memFs, "/hoi4/mod/x/music/x/song.ogg"))
}

func TestGenerate_AbortsOnMissingTrack(t *testing.T) {
	memFs := afero.NewMemMapFs()
	seedDownloads(t, memFs, "present.ogg")

	mem := tracker.NewMemory()
	gen := New(testSettings(), fsys.New(memFs), mem)

	err := gen.Generate(context.Background(), "x", []string{
		"downloads/present.ogg",
		"downloads/missing.ogg",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy_music")

	// The tracker pins the failing step.
	assert.Equal(t, tracker.StepCopyMusic, mem.CurrentStep())

	// Earlier work is left behind: no rollback.
	exists, _ := afero.Exists(memFs, "/hoi4/mod/x/music/x/present.ogg")
	assert.True(t, exists, "successfully copied track should remain after abort")

	// Later artifacts were never written.
	exists, _ = afero.Exists(memFs, "/hoi4/mod/x/descriptor.mod")
	assert.False(t, exists, "descriptor must not exist when copy_music failed")
}

func TestGenerate_RerunOverwritesButDoesNotPrune(t *testing.T) {
	memFs := afero.NewMemMapFs()
	seedDownloads(t, memFs, "a.ogg", "b.ogg")

	gen := New(testSettings(), fsys.New(memFs), tracker.NewMemory())
	ctx := context.Background()

	require.NoError(t, gen.Generate(ctx, "x", []string{"a.ogg", "b.ogg"}))
	require.NoError(t, gen.Generate(ctx, "x", []string{"a.ogg"}))

	script := readFile(t, memFs, "/hoi4/mod/x/music/x/x_music.txt")
	assert.Contains(t, script, "song = \"a\"")
	assert.NotContains(t, script, "song = \"b\"", "script must reflect the new track list only")

	// The stale audio copy from the first run is not pruned.
	exists, _ := afero.Exists(memFs, "/hoi4/mod/x/music/x/b.ogg")
	assert.True(t, exists, "default behavior leaves stale files in place")
}

func TestGenerate_CleanBeforeGenerate(t *testing.T) {
	memFs := afero.NewMemMapFs()
	seedDownloads(t, memFs, "a.ogg", "b.ogg")

	settings := testSettings()
	gen := New(settings, fsys.New(memFs), tracker.NewMemory())
	ctx := context.Background()

	require.NoError(t, gen.Generate(ctx, "x", []string{"a.ogg", "b.ogg"}))

	settings.CleanBeforeGenerate = true
	require.NoError(t, gen.Generate(ctx, "x", []string{"a.ogg"}))

	exists, _ := afero.Exists(memFs, "/hoi4/mod/x/music/x/b.ogg")
	assert.False(t, exists, "clean run should prune stale files")
}

type stubTitler struct {
	titles map[string]string
}

func (s stubTitler) Title(path string) string { return s.titles[path] }

func TestGenerate_DisplayTitlesFromTags(t *testing.T) {
	memFs := afero.NewMemMapFs()
	seedDownloads(t, memFs, "song.mp3")

	settings := testSettings()
	settings.DisplayTitlesFromTags = true

	gen := New(settings, fsys.New(memFs), tracker.NewMemory(),
		WithTitler(stubTitler{titles: map[string]string{"/downloads/song.mp3": "Proper Title"}}))

	require.NoError(t, gen.Generate(context.Background(), "x", []string{"song.mp3"}))

	loc := readFile(t, memFs, "/hoi4/mod/x/localisation/x_l_english.yml")
	assert.Contains(t, loc, " song: \"Proper Title\"")

	// The id itself is untouched; only the display text changes.
	script := readFile(t, memFs, "/hoi4/mod/x/music/x/x_music.txt")
	assert.Contains(t, script, "song = \"song\"")
}

func TestGenerate_TrackerSeesStepsInOrder(t *testing.T) {
	memFs := afero.NewMemMapFs()
	seedDownloads(t, memFs, "a.ogg")

	var seen []tracker.Step
	rec := trackerFunc(func(ctx context.Context, s tracker.Step) error {
		seen = append(seen, s)
		return nil
	})

	gen := New(testSettings(), fsys.New(memFs), rec)
	require.NoError(t, gen.Generate(context.Background(), "x", []string{"a.ogg"}))

	assert.Equal(t, tracker.Steps, seen)
}

type trackerFunc func(context.Context, tracker.Step) error

func (f trackerFunc) SetCurrentStep(ctx context.Context, s tracker.Step) error { return f(ctx, s) }

func TestGenerate_ProgressIsObservational(t *testing.T) {
	memFs := afero.NewMemMapFs()
	var messages []string

	gen := New(testSettings(), fsys.New(memFs), tracker.NewMemory(),
		WithProgress(func(event ProgressEvent) {
			messages = append(messages, event.Message)
		}))

	require.NoError(t, gen.Generate(context.Background(), "x", nil))
	require.NotEmpty(t, messages)
	assert.True(t, strings.Contains(messages[len(messages)-1], "Generated mod package"))
}

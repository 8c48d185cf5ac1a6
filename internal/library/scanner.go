package library

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/NoNameLmao/yt2hoi4/internal/model"
)

// audioExtensions are the file types the engine can play. Anything
// else in the downloads directory is ignored by Scan.
var audioExtensions = map[string]bool{
	".ogg": true,
	".mp3": true,
	".wav": true,
}

// Entry describes one candidate track found in the downloads
// directory.
type Entry struct {
	// Track is the derived track reference for the file.
	Track model.Track

	// Title is the ID3 title frame for MP3 files, "" otherwise or
	// when the file carries no usable tag.
	Title string

	// Artist is the ID3 artist frame, "" when absent.
	Artist string

	// Size is the file size in bytes.
	Size int64
}

// Scanner lists candidate audio files in a downloads directory.
type Scanner struct {
	fs     afero.Fs
	titler *ID3Titler

	// probeLimit caps concurrent tag probes; reading frames is cheap
	// but open-file handles are not free on large libraries.
	probeLimit int
}

// NewScanner creates a Scanner over fs.
func NewScanner(fs afero.Fs) *Scanner {
	return &Scanner{
		fs:         fs,
		titler:     NewID3Titler(),
		probeLimit: 8,
	}
}

// Scan lists playable files under dir, sorted by base filename, with
// MP3 tag metadata probed concurrently. The scan is informational
// only; generation itself never inspects audio content.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if !audioExtensions[strings.ToLower(filepath.Ext(info.Name()))] {
			continue
		}
		entries = append(entries, Entry{
			Track: model.NewTrack(info.Name()),
			Size:  info.Size(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Track.BaseName < entries[j].Track.BaseName
	})

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.probeLimit)

	var mu sync.Mutex
	for i := range entries {
		i := i
		if !strings.EqualFold(filepath.Ext(entries[i].Track.BaseName), ".mp3") {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			title, artist := s.titler.Probe(filepath.Join(dir, entries[i].Track.BaseName))
			mu.Lock()
			entries[i].Title = title
			entries[i].Artist = artist
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

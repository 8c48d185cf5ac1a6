package fsys

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Layer is the file/shell surface the generator writes through.
//
// Backing it with afero keeps the generator oblivious to where files
// actually land: production wires an OS filesystem, tests wire an
// in-memory one and assert on the resulting tree without touching
// disk.
type Layer struct {
	fs afero.Fs
}

// New creates a Layer over the given filesystem.
func New(fs afero.Fs) *Layer {
	return &Layer{fs: fs}
}

// NewOS creates a Layer over the real filesystem.
func NewOS() *Layer {
	return New(afero.NewOsFs())
}

// Fs exposes the underlying filesystem, mainly so tests can inspect
// what was written.
func (l *Layer) Fs() afero.Fs {
	return l.fs
}

// EnsureDir creates a directory and all parents. Creating an existing
// directory is not an error.
func (l *Layer) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.fs.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// CopyFile copies src to dst, truncating dst if it exists.
func (l *Layer) CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	source, err := l.fs.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer source.Close()

	dest, err := l.fs.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, source); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}

// WriteFile writes data to path, creating or truncating it.
func (l *Layer) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := afero.WriteFile(l.fs, path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteBytes writes a raw byte payload (e.g. a bundled texture) to
// path. Same semantics as WriteFile; separate name keeps call sites
// honest about binary versus generated-text content.
func (l *Layer) WriteBytes(ctx context.Context, path string, data []byte) error {
	return l.WriteFile(ctx, path, data)
}

// RemoveAll deletes path and everything under it. A missing path is
// not an error.
func (l *Layer) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.fs.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists.
func (l *Layer) Exists(path string) (bool, error) {
	return afero.Exists(l.fs, path)
}

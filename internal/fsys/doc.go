// Package fsys provides the filesystem layer the generator writes
// through.
//
// All operations go via an afero.Fs so the pipeline can run against
// the real disk in production and an in-memory filesystem in tests:
//
//	layer := fsys.New(afero.NewMemMapFs())
//	err := layer.EnsureDir(ctx, "mod/jazz_radio/music/jazz_radio")
//
// Every method takes a context and checks it before touching the
// filesystem, matching how the rest of the pipeline treats each file
// operation as a suspension point.
package fsys

// Package generator assembles complete Hearts of Iron IV music-mod
// packages.
//
// # Generator
//
// Generator runs a fixed, strictly sequential pipeline per invocation:
//
//  1. setup - create the package directory tree
//  2. copy_music - copy tracks from the downloads directory
//  3. descriptor - write the in-folder and external descriptors
//  4. localisation - write the english localisation file (UTF-8 BOM)
//  5. interface - write .gfx/.gui and copy the faceplate texture
//  6. music_script - write the station playlist script
//  7. asset_files - write the song volume manifest
//  8. done - terminal tracker update
//
// Each step is reported to the tracker before it runs; the first
// failing file operation aborts the run with no rollback, leaving a
// partially written package behind. Re-running with the same mod name
// overwrites in place.
//
// # Basic Usage
//
//	layer := fsys.NewOS()
//	gen := generator.New(settings, layer, tracker.NewMemory(),
//	    generator.WithProgress(func(event generator.ProgressEvent) {
//	        fmt.Println(event.Message)
//	    }))
//
//	err := gen.Generate(ctx, "jazz_radio", trackFiles)
//
// # Concurrency
//
// One logical thread of control per run: steps are sequential and
// tracks are copied one at a time in input order. Two concurrent runs
// for the same mod name race on the same output tree; don't.
package generator

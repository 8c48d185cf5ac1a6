package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/NoNameLmao/yt2hoi4/internal/assets"
	"github.com/NoNameLmao/yt2hoi4/internal/config"
	"github.com/NoNameLmao/yt2hoi4/internal/fsys"
	"github.com/NoNameLmao/yt2hoi4/internal/hoi4"
	"github.com/NoNameLmao/yt2hoi4/internal/model"
	"github.com/NoNameLmao/yt2hoi4/internal/tracker"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelSuccess
)

// ProgressEvent represents a generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Generator assembles mod packages.
//
// A Generator is an explicit value holding its collaborators; callers
// construct one per invocation (or share one, the Generator itself is
// stateless between runs) and there is no ambient singleton.
type Generator struct {
	settings *config.Settings
	layer    *fsys.Layer
	track    tracker.Tracker
	builder  *hoi4.Builder
	titler   Titler

	onProgress func(ProgressEvent)
}

// Titler resolves a nicer display name for a track source file.
// Implementations may return "" to keep the default (the track id).
type Titler interface {
	Title(path string) string
}

// Option configures a Generator.
type Option func(*Generator)

// WithProgress sets the progress callback. Progress is observational
// only and never affects control flow.
func WithProgress(fn func(ProgressEvent)) Option {
	return func(g *Generator) { g.onProgress = fn }
}

// WithTitler sets the display-name resolver used when the
// display_titles_from_tags setting is on.
func WithTitler(t Titler) Option {
	return func(g *Generator) { g.titler = t }
}

// New creates a Generator writing through layer and reporting steps to
// track.
func New(settings *config.Settings, layer *fsys.Layer, track tracker.Tracker, opts ...Option) *Generator {
	g := &Generator{
		settings: settings,
		layer:    layer,
		track:    track,
		builder:  hoi4.NewBuilder(settings.EngineVersion(), config.Version, settings.AssetVolume()),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the full pipeline for one mod.
//
// modName must be non-empty; trackFiles may be empty, which still
// produces a complete package with an empty station. Steps execute
// strictly in order and the first failure aborts the run: no retry, no
// rollback, no pruning of files already written. Re-running with the
// same name overwrites file contents but leaves stale files from a
// previous, larger track list in place unless the clean setting is on.
//
// Track sources are resolved by base filename against the configured
// downloads directory; any directory part of a supplied track path is
// ignored.
func (g *Generator) Generate(ctx context.Context, modName string, trackFiles []string) error {
	if modName == "" {
		return fmt.Errorf("mod name must not be empty")
	}

	mod := model.NewMod(modName, g.settings.OutputPath, trackFiles)

	if g.settings.CleanBeforeGenerate {
		if err := g.clean(ctx, mod); err != nil {
			return err
		}
	}

	if g.settings.DisplayTitlesFromTags && g.titler != nil {
		g.resolveTitles(mod)
	}

	steps := []struct {
		step tracker.Step
		run  func(context.Context, *model.Mod) error
	}{
		{tracker.StepSetup, g.setup},
		{tracker.StepCopyMusic, g.copyMusic},
		{tracker.StepDescriptor, g.writeDescriptors},
		{tracker.StepLocalisation, g.writeLocalisation},
		{tracker.StepInterface, g.writeInterface},
		{tracker.StepMusicScript, g.writeMusicScript},
		{tracker.StepAssetFiles, g.writeAssetFile},
	}

	for _, s := range steps {
		if err := g.track.SetCurrentStep(ctx, s.step); err != nil {
			return fmt.Errorf("track step %s: %w", s.step, err)
		}
		if err := s.run(ctx, mod); err != nil {
			return fmt.Errorf("step %s: %w", s.step, err)
		}
	}

	if err := g.track.SetCurrentStep(ctx, tracker.StepDone); err != nil {
		return fmt.Errorf("track step %s: %w", tracker.StepDone, err)
	}

	g.progress(ProgressEvent{Message: fmt.Sprintf("Generated mod package: %s", mod.Root()), Level: LevelSuccess})
	return nil
}

// clean removes the mod folder and external descriptor of a previous
// run. Only invoked when explicitly enabled; the default contract is
// overwrite-in-place.
func (g *Generator) clean(ctx context.Context, mod *model.Mod) error {
	g.progress(ProgressEvent{Message: fmt.Sprintf("Cleaning previous output for %s", mod.Name), Level: LevelVerbose})
	if err := g.layer.RemoveAll(ctx, mod.Root()); err != nil {
		return err
	}
	return g.layer.RemoveAll(ctx, mod.ExternalDescriptorPath())
}

func (g *Generator) resolveTitles(mod *model.Mod) {
	for i := range mod.Tracks {
		src := filepath.Join(g.settings.DownloadsPath, mod.Tracks[i].BaseName)
		if title := g.titler.Title(src); title != "" {
			mod.Tracks[i].DisplayName = title
		}
	}
}

func (g *Generator) setup(ctx context.Context, mod *model.Mod) error {
	dirs := []string{
		mod.Root(),
		mod.MusicDir(),
		mod.LocalisationDir(),
		mod.InterfaceDir(),
		mod.GfxDir(),
	}
	for _, dir := range dirs {
		if err := g.layer.EnsureDir(ctx, dir); err != nil {
			return err
		}
	}
	g.progress(ProgressEvent{Message: fmt.Sprintf("Created package directories under %s", mod.Root()), Level: LevelVerbose})
	return nil
}

func (g *Generator) copyMusic(ctx context.Context, mod *model.Mod) error {
	for _, track := range mod.Tracks {
		src := filepath.Join(g.settings.DownloadsPath, track.BaseName)
		dst := filepath.Join(mod.MusicDir(), track.BaseName)
		if err := g.layer.CopyFile(ctx, src, dst); err != nil {
			return err
		}
		g.progress(ProgressEvent{Message: fmt.Sprintf("Copied %s", track.BaseName), Level: LevelVerbose})
	}
	g.progress(ProgressEvent{Message: fmt.Sprintf("Copied %d track(s)", len(mod.Tracks)), Level: LevelInfo})
	return nil
}

func (g *Generator) writeDescriptors(ctx context.Context, mod *model.Mod) error {
	// In-folder first, then the external one the launcher reads.
	if err := g.layer.WriteFile(ctx, mod.DescriptorPath(), []byte(g.builder.Descriptor(mod))); err != nil {
		return err
	}
	if err := g.layer.WriteFile(ctx, mod.ExternalDescriptorPath(), []byte(g.builder.ExternalDescriptor(mod))); err != nil {
		return err
	}
	g.progress(ProgressEvent{Message: "Wrote descriptors", Level: LevelVerbose})
	return nil
}

func (g *Generator) writeLocalisation(ctx context.Context, mod *model.Mod) error {
	if err := g.layer.WriteFile(ctx, mod.LocalisationPath(), g.builder.LocalisationBytes(mod)); err != nil {
		return err
	}
	g.progress(ProgressEvent{Message: "Wrote localisation", Level: LevelVerbose})
	return nil
}

func (g *Generator) writeInterface(ctx context.Context, mod *model.Mod) error {
	if err := g.layer.WriteFile(ctx, mod.GfxPath(), []byte(g.builder.SpriteDefinitions(mod))); err != nil {
		return err
	}
	if err := g.layer.WriteFile(ctx, mod.GuiPath(), []byte(g.builder.PlayerLayout(mod))); err != nil {
		return err
	}
	if err := g.layer.WriteBytes(ctx, mod.FaceplatePath(), assets.Faceplate); err != nil {
		return err
	}
	g.progress(ProgressEvent{Message: "Wrote interface definitions and faceplate", Level: LevelVerbose})
	return nil
}

func (g *Generator) writeMusicScript(ctx context.Context, mod *model.Mod) error {
	if err := g.layer.WriteFile(ctx, mod.MusicScriptPath(), []byte(g.builder.MusicScript(mod))); err != nil {
		return err
	}
	g.progress(ProgressEvent{Message: "Wrote music script", Level: LevelVerbose})
	return nil
}

func (g *Generator) writeAssetFile(ctx context.Context, mod *model.Mod) error {
	if err := g.layer.WriteFile(ctx, mod.AssetFilePath(), []byte(g.builder.AssetFile(mod))); err != nil {
		return err
	}
	g.progress(ProgressEvent{Message: "Wrote asset file", Level: LevelVerbose})
	return nil
}

func (g *Generator) progress(event ProgressEvent) {
	if g.onProgress != nil {
		g.onProgress(event)
	}
}

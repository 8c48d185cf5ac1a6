package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/NoNameLmao/yt2hoi4/internal/fsys"
	"github.com/NoNameLmao/yt2hoi4/internal/generator"
	"github.com/NoNameLmao/yt2hoi4/internal/library"
	"github.com/NoNameLmao/yt2hoi4/internal/tracker"
)

var (
	downloadsFlag string
	outputFlag    string
	cleanFlag     bool
	tagTitlesFlag bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <mod-name> [track files...]",
	Short: "Generate a mod package",
	Long: `Generates a full mod package for the given name.

Track files may be passed as arguments; only their base filenames are
honored, and each is resolved against the downloads directory. With no
track arguments every playable file in the downloads directory is used,
in filename order. An empty downloads directory still yields a valid
package with an empty station.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modName := args[0]
		trackFiles := args[1:]

		if downloadsFlag != "" {
			settings.DownloadsPath = downloadsFlag
		}
		if outputFlag != "" {
			settings.OutputPath = outputFlag
		}
		if cleanFlag {
			settings.CleanBeforeGenerate = true
		}
		if tagTitlesFlag {
			settings.DisplayTitlesFromTags = true
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if len(trackFiles) == 0 {
			entries, err := library.NewScanner(fsys.NewOS().Fs()).Scan(ctx, settings.DownloadsPath)
			if err != nil {
				return fmt.Errorf("scan downloads: %w", err)
			}
			for _, entry := range entries {
				trackFiles = append(trackFiles, entry.Track.BaseName)
			}
		}

		mem := tracker.NewMemory()
		gen := generator.New(settings, fsys.NewOS(), mem,
			generator.WithTitler(library.NewID3Titler()),
			generator.WithProgress(func(event generator.ProgressEvent) {
				switch event.Level {
				case generator.LevelVerbose:
					slog.Debug(event.Message)
				default:
					slog.Info(event.Message)
				}
			}))

		if err := gen.Generate(ctx, modName, trackFiles); err != nil {
			slog.Error("generation failed", "step", string(mem.CurrentStep()), "error", err)
			return err
		}

		fmt.Printf("Generated %s with %d track(s) in %s\n", modName, len(trackFiles), settings.OutputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&downloadsFlag, "downloads", "", "Downloads directory (overrides config)")
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory (overrides config)")
	generateCmd.Flags().BoolVar(&cleanFlag, "clean", false, "Remove previous output for this mod before generating")
	generateCmd.Flags().BoolVar(&tagTitlesFlag, "tag-titles", false, "Use ID3 titles as display names where available")
}

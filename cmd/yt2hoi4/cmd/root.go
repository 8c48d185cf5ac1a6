package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NoNameLmao/yt2hoi4/internal/config"
	"github.com/NoNameLmao/yt2hoi4/internal/logging"
)

var (
	configPath string
	verbose    bool

	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "yt2hoi4",
	Short: "Build Hearts of Iron IV music mods from downloaded audio",
	Long: `yt2hoi4 assembles a complete, playable HOI4 music-mod package
from a mod name and the audio files in your downloads directory:
directory layout, descriptors, localisation, interface definitions,
music script, asset file, and the copied tracks.

Use "yt2hoi4 [command] --help" for more information about a command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.New(verbose)

		path := configPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
		}

		var err error
		settings, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		return nil
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")
}

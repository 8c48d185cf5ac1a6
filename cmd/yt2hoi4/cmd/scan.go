package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NoNameLmao/yt2hoi4/internal/fsys"
	"github.com/NoNameLmao/yt2hoi4/internal/library"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List playable files in the downloads directory",
	Long: `Lists the audio files a generate run would pick up, with the track
id each would receive and, for MP3s, any ID3 title/artist metadata.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if downloadsFlag != "" {
			settings.DownloadsPath = downloadsFlag
		}

		entries, err := library.NewScanner(fsys.NewOS().Fs()).Scan(cmd.Context(), settings.DownloadsPath)
		if err != nil {
			return fmt.Errorf("scan %s: %w", settings.DownloadsPath, err)
		}

		if len(entries) == 0 {
			fmt.Printf("No playable files in %s\n", settings.DownloadsPath)
			return nil
		}

		fmt.Printf("%d playable file(s) in %s:\n\n", len(entries), settings.DownloadsPath)
		for _, entry := range entries {
			line := fmt.Sprintf("  %-40s id=%s", entry.Track.BaseName, entry.Track.ID)
			if entry.Title != "" {
				line += fmt.Sprintf("  [%s", entry.Title)
				if entry.Artist != "" {
					line += " - " + entry.Artist
				}
				line += "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&downloadsFlag, "downloads", "", "Downloads directory (overrides config)")
}

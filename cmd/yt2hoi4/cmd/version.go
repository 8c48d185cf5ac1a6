package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NoNameLmao/yt2hoi4/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the generator version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("yt2hoi4 %s (targets HOI4 %s)\n", config.Version, config.SupportedVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

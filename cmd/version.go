package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openstructure/mkappa/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mkappa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mkappa v%s\n", version.Version)
		fmt.Println("Moment-curvature and beam deflection toolkit")

		if version.GitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("Built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}


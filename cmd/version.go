package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piezotools/gopiez/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gopiez",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gopiez v%s\n", version.Version)
		fmt.Println("Mountain Pipeline Hydraulics Tool")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

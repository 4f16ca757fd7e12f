package cmd

import (
	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Whole-system hydraulic analysis",
	Long: `Solve the hydraulics of all eight segments of the route for one
set of fluid and pipe parameters.

The flow is constant along the whole serial path (continuity), so the five
parameters fully determine every segment's velocity, losses, head and
power.

Subcommands:
  solve   - Solve all segments and print the result tables
  export  - Write the results and the energy trace as CSV files`,
}

func init() {
	rootCmd.AddCommand(systemCmd)
}

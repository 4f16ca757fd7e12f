package cmd

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "System-wide energy and terrain profiles",
	Long: `Walk the whole route and render its profiles.

The energy trace stitches the per-segment results into one continuous
piezometric profile: the energy grade line (EGL) jumps at every pump,
drops gradually with friction, loses the fitting head at each station
entrance, and resets at pressure-break tanks on gravity descents.

Subcommands:
  trace    - Piezometric profile with pump and valve/tank events
  terrain  - Route terrain profile at segment boundaries`,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

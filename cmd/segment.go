package cmd

import (
	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Single-segment queries and analysis",
	Long: `Inspect one of the eight fixed segments of the route, or solve
its hydraulics in isolation.

The segment topology (distances, elevations, fitting inventories, station
counts) is measured engineering data compiled into the tool; only the
fluid and pipe parameters vary.

Subcommands:
  show   - Registry record: geometry, fittings, control type, notes
  solve  - Hydraulic computation for this segment`,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
}

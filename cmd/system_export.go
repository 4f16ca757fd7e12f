package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piezotools/gopiez/internal/pipeline"
	"github.com/piezotools/gopiez/internal/report"
)

var (
	systemExportParams flowParams
	systemExportDir    string
)

var systemExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export results and the energy trace as CSV files",
	Long: `Solve the system, run the energy trace and write four CSV files
into the output directory:

  segments.csv  - per-segment hydraulics (geometry, losses, head, power)
  profile.csv   - the piezometric profile samples (EGL, HGL, pressure)
  pumps.csv     - discrete pump events (position, before/after energy)
  valves.csv    - throttling valve and pressure-break tank events

Examples:
  gopiez system export --out results/
  gopiez system export --flow 0.05 --out results-q50/`,
	RunE: runSystemExport,
}

func init() {
	systemCmd.AddCommand(systemExportCmd)
	systemExportParams.register(systemExportCmd)
	systemExportCmd.Flags().StringVarP(&systemExportDir, "out", "o", "results", "Output directory for the CSV files")
}

func runSystemExport(cmd *cobra.Command, args []string) error {
	c, err := systemExportParams.conduit()
	if err != nil {
		return err
	}

	sys, err := pipeline.Solve(c)
	if err != nil {
		return err
	}
	tr := pipeline.Trace(sys)

	if err := report.ExportAll(systemExportDir, sys, tr); err != nil {
		return err
	}

	fmt.Printf("Wrote segments.csv, profile.csv, pumps.csv, valves.csv to %s\n", systemExportDir)
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piezotools/gopiez/internal/hydraulics"
	"github.com/piezotools/gopiez/internal/pipeline"
)

var (
	segmentShowNumber int
	segmentShowParams flowParams
)

var segmentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the registry record of a segment",
	Long: `Print the fixed geometry, fitting inventory and engineering notes
of one segment. The per-fitting head losses are evaluated at the given
flow parameters.

Examples:
  gopiez segment show --segment 2
  gopiez segment show -s 8 --flow 0.05`,
	RunE: runSegmentShow,
}

func init() {
	segmentCmd.AddCommand(segmentShowCmd)

	segmentShowCmd.Flags().IntVarP(&segmentShowNumber, "segment", "s", 0, "Segment number 1..8 [required]")
	segmentShowCmd.MarkFlagRequired("segment")
	segmentShowParams.register(segmentShowCmd)
}

func runSegmentShow(cmd *cobra.Command, args []string) error {
	seg, err := pipeline.ByNumber(segmentShowNumber)
	if err != nil {
		return err
	}

	c, err := segmentShowParams.conduit()
	if err != nil {
		return err
	}
	area, err := hydraulics.Area(c.D)
	if err != nil {
		return err
	}
	hv := hydraulics.KineticHead(hydraulics.Velocity(c.Q, area))

	fmt.Println()
	fmt.Printf("═══ SEGMENT %d - %s ═══\n", seg.Number, seg.Control)
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Plan distance:\t%.2f m\n", seg.Distance)
	fmt.Fprintf(w, "  Elevation change:\t%.1f m\n", seg.Height)
	fmt.Fprintf(w, "  Slope:\t%.2f°\n", seg.Slope)
	fmt.Fprintf(w, "  Pipe length:\t%.2f m\n", seg.PipeLength)
	fmt.Fprintf(w, "  Stations:\t%d\n", seg.Stations)
	if seg.Descending {
		fmt.Fprintf(w, "  Pressure-break tank:\t%v\n", seg.PressureBreakTank)
	}
	if seg.ThrottleValveK > 0 {
		fmt.Fprintf(w, "  Throttling valve K:\t%.2f\n", seg.ThrottleValveK)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("FITTING INVENTORY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Fitting\tCount\tK\thead loss (m)")
	for _, f := range seg.Fittings {
		fmt.Fprintf(w, "  %s\t%d\t%.3f\t%.4f\n", f.Name, f.Count, f.K, float64(f.Count)*f.K*hv)
	}
	w.Flush()
	fmt.Printf("\n  ΣK = %.2f  |  total fitting loss = %.4f m\n", seg.FittingK, seg.FittingK*hv)
	fmt.Println()

	if len(seg.SubSegments) > 0 {
		fmt.Println("UNDERGROUND ROUTING:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Leg\tDistance (m)\tΔz (m)")
		for _, sub := range seg.SubSegments {
			if sub.Height != nil {
				fmt.Fprintf(w, "  %s\t%.1f\t%.0f\n", sub.Name, sub.Distance, *sub.Height)
			} else {
				fmt.Fprintf(w, "  %s\t%.1f\t-\n", sub.Name, sub.Distance)
			}
		}
		w.Flush()
		fmt.Println()
	}

	if seg.Notes != "" {
		fmt.Printf("  Note: %s\n\n", seg.Notes)
	}

	return nil
}

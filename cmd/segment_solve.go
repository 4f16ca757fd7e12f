package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piezotools/gopiez/internal/diagram"
	"github.com/piezotools/gopiez/internal/hydraulics"
	"github.com/piezotools/gopiez/internal/pipeline"
)

var (
	segmentSolveNumber int
	segmentSolveParams flowParams
)

var segmentSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the hydraulics of one segment",
	Long: `Run the segment hydraulic model for a single segment: flow
properties, the three friction factors, per-station losses and head, and
the pump power (zero on gravity descents).

Examples:
  gopiez segment solve --segment 1
  gopiez segment solve -s 6 --flow 0.05 --diameter 0.20`,
	RunE: runSegmentSolve,
}

func init() {
	segmentCmd.AddCommand(segmentSolveCmd)

	segmentSolveCmd.Flags().IntVarP(&segmentSolveNumber, "segment", "s", 0, "Segment number 1..8 [required]")
	segmentSolveCmd.MarkFlagRequired("segment")
	segmentSolveParams.register(segmentSolveCmd)
}

func runSegmentSolve(cmd *cobra.Command, args []string) error {
	seg, err := pipeline.ByNumber(segmentSolveNumber)
	if err != nil {
		return err
	}

	c, err := segmentSolveParams.conduit()
	if err != nil {
		return err
	}

	res, err := c.SolveSegment(seg.Geometry())
	if err != nil {
		return fmt.Errorf("segment %d: %w", seg.Number, err)
	}

	fmt.Println()
	fmt.Printf("═══ SEGMENT %d HYDRAULICS - %s ═══\n", seg.Number, seg.Control)
	fmt.Println()

	fmt.Println("FLOW PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.5f m²\n", res.Area)
	fmt.Fprintf(w, "  Velocity (v):\t%.3f m/s\n", res.Velocity)
	fmt.Fprintf(w, "  Kinetic head (hv):\t%.4f m\n", res.KineticHead)
	fmt.Fprintf(w, "  Reynolds (Re):\t%.0f\t(%s)\n", res.Reynolds, hydraulics.FlowRegime(res.Reynolds))
	w.Flush()
	fmt.Println()

	fmt.Println("FRICTION FACTORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Colebrook-White:\t%.6f\n", res.FColebrook)
	fmt.Fprintf(w, "  Haaland:\t%.6f\n", res.FHaaland)
	fmt.Fprintf(w, "  Swamee-Jain:\t%.6f\n", res.FSwameeJain)
	w.Flush()
	fmt.Println()

	fmt.Println("LOSSES AND HEAD (per station):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Station pipe length:\t%.2f m\n", res.StationLength)
	fmt.Fprintf(w, "  Station lift |Δz|:\t%.2f m\n", res.StationLift)
	fmt.Fprintf(w, "  Friction loss (Colebrook):\t%.4f m\n", res.FrictionColebrook)
	fmt.Fprintf(w, "  Friction loss (Haaland):\t%.4f m\n", res.FrictionHaaland)
	fmt.Fprintf(w, "  Minor loss (fittings, per segment):\t%.4f m\n", res.MinorLoss)
	fmt.Fprintf(w, "  Station head (H):\t%.2f m\n", res.StationHead)
	fmt.Fprintf(w, "  Segment total head:\t%.2f m\n", res.TotalHead)
	w.Flush()
	fmt.Println()

	if seg.Descending {
		fmt.Println(diagram.DrawSummaryBox("GRAVITY SEGMENT", []string{
			"No pump: the descent is gravity-driven and the excess",
			"head is dissipated by the throttling valve.",
		}))
	} else {
		fmt.Println(diagram.DrawSummaryBox("PUMP SIZING (per station)", []string{
			fmt.Sprintf("Head: %.2f m", res.StationHead),
			fmt.Sprintf("Power: %.2f kW (%.2f HP)", res.PowerKW, res.PowerHP),
			fmt.Sprintf("Stations: %d", seg.Stations),
		}))
	}

	return nil
}

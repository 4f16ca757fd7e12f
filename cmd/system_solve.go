package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/piezotools/gopiez/internal/diagram"
	"github.com/piezotools/gopiez/internal/hydraulics"
	"github.com/piezotools/gopiez/internal/pipeline"
)

var systemSolveParams flowParams

var systemSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the hydraulics of all eight segments",
	Long: `Solve every segment of the route for the given parameters and
print the per-segment geometry, hydraulics and power tables.

Examples:
  # Design operating point
  gopiez system solve

  # Higher flow through a larger pipe
  gopiez system solve --flow 0.05 --diameter 0.20

  # Parameters from a scenario file
  gopiez system solve --file design-point.json`,
	RunE: runSystemSolve,
}

func init() {
	systemCmd.AddCommand(systemSolveCmd)
	systemSolveParams.register(systemSolveCmd)
}

func runSystemSolve(cmd *cobra.Command, args []string) error {
	c, err := systemSolveParams.conduit()
	if err != nil {
		return err
	}

	sys, err := pipeline.Solve(c)
	if err != nil {
		return err
	}

	first := sys.Outcomes[0]

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PIPELINE SYSTEM ANALYSIS: RIVER TO PLANT (3.4 km)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flow rate (Q):\t%.4f m³/s\t(%.1f L/s)\n", c.Q, c.Q*1000)
	fmt.Fprintf(w, "  Diameter (D):\t%.4f m\t(%.1f cm)\n", c.D, c.D*100)
	fmt.Fprintf(w, "  Density (ρ):\t%.1f kg/m³\n", c.Rho)
	fmt.Fprintf(w, "  Viscosity (μ):\t%.6f Pa·s\n", c.Mu)
	fmt.Fprintf(w, "  Roughness (ε):\t%.6f m\n", c.Epsilon)
	w.Flush()
	fmt.Println()

	fmt.Println("FLOW PROPERTIES (uniform along the path):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Velocity (v):\t%.3f m/s\n", first.Velocity)
	fmt.Fprintf(w, "  Kinetic head (hv):\t%.4f m\n", first.KineticHead)
	fmt.Fprintf(w, "  Reynolds number (Re):\t%.0f\t(%s)\n", first.Reynolds, hydraulics.FlowRegime(first.Reynolds))
	fmt.Fprintf(w, "  f (Colebrook-White):\t%.6f\n", first.FColebrook)
	w.Flush()
	fmt.Println()

	fmt.Println("SEGMENT HYDRAULICS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Seg\tControl\tL pipe (m)\tStations\thf/st (m)\thm (m)\tH/st (m)\tH total (m)\tP (kW)\tP (HP)")
	for _, o := range sys.Outcomes {
		fmt.Fprintf(w, "  %d\t%s\t%.1f\t%d\t%.4f\t%.4f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			o.Number, o.Control, o.PipeLength, o.Stations,
			o.FrictionColebrook, o.MinorLoss, o.StationHead, o.TotalHead,
			o.PowerKW, o.PowerHP)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("FRICTION FACTOR COMPARISON:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fCol, fHaa, fSwa := first.FColebrook, first.FHaaland, first.FSwameeJain
	fmt.Fprintf(w, "  Colebrook-White (implicit):\t%.6f\t(baseline)\n", fCol)
	fmt.Fprintf(w, "  Haaland (explicit):\t%.6f\t%+.2f%%\n", fHaa, (fHaa-fCol)/fCol*100)
	fmt.Fprintf(w, "  Swamee-Jain (explicit):\t%.6f\t%+.2f%%\n", fSwa, (fSwa-fCol)/fCol*100)
	w.Flush()
	fmt.Println()

	// Every station of every pumped segment hosts its own full-flow pump.
	stationPowers := make([]float64, 0, len(sys.Outcomes))
	for _, o := range sys.Outcomes {
		stationPowers = append(stationPowers, o.PowerKW*float64(o.Stations))
	}
	totalKW := floats.Sum(stationPowers)

	fmt.Println(diagram.DrawSummaryBox("SYSTEM TOTALS", []string{
		fmt.Sprintf("Total pump power: %.1f kW (%.1f HP)", totalKW, hydraulics.KWToHP(totalKW)),
		fmt.Sprintf("Flow regime: %s (Re = %.0f)", hydraulics.FlowRegime(first.Reynolds), first.Reynolds),
		fmt.Sprintf("Velocity: %.2f m/s", first.Velocity),
	}))

	return nil
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piezotools/gopiez/internal/diagram"
	"github.com/piezotools/gopiez/internal/pipeline"
)

var (
	profileTraceParams   flowParams
	profileTraceChart    bool
	profileTraceOutput   string
	profileTracePressure string
)

var profileTraceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Trace the piezometric profile of the whole system",
	Long: `Solve the system and walk the route, printing the pump and
valve/tank event tables and the critical pressure point. Optionally render
the profile as a terminal chart or export it as an image.

Examples:
  gopiez profile trace
  gopiez profile trace --chart
  gopiez profile trace --output piezo.png
  gopiez profile trace --pressure pressure.png
  gopiez profile trace --flow 0.05 --chart`,
	RunE: runProfileTrace,
}

func init() {
	profileCmd.AddCommand(profileTraceCmd)
	profileTraceParams.register(profileTraceCmd)

	profileTraceCmd.Flags().BoolVar(&profileTraceChart, "chart", false, "Render an ASCII chart of the profile")
	profileTraceCmd.Flags().StringVarP(&profileTraceOutput, "output", "o", "", "Export the piezometric map to a file (png, svg, pdf)")
	profileTraceCmd.Flags().StringVar(&profileTracePressure, "pressure", "", "Export the gauge-pressure profile to a file (png, svg, pdf)")
}

func runProfileTrace(cmd *cobra.Command, args []string) error {
	c, err := profileTraceParams.conduit()
	if err != nil {
		return err
	}

	sys, err := pipeline.Solve(c)
	if err != nil {
		return err
	}
	tr := pipeline.Trace(sys)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PIEZOMETRIC PROFILE - ENERGY TRACE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("PUMP EVENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Seg\tStation\tx (m)\tEGL before (m)\tEGL after (m)\tΔH (m)\tP (kW)")
	for _, e := range tr.Pumps {
		fmt.Fprintf(w, "  %d\t%d\t%.0f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			e.Segment, e.Station, e.Distance, e.Before, e.After, e.Head, e.PowerKW)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("VALVE / TANK EVENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Seg\tx (m)\tEGL (m)\tEvent")
	for _, e := range tr.Valves {
		kind := fmt.Sprintf("tank reset, dissipates %.1f m", e.Magnitude)
		if e.Kind == pipeline.ValveGravityHandoff {
			kind = fmt.Sprintf("gravity hand-off, %.1f m available", e.Magnitude)
		}
		fmt.Fprintf(w, "  %d\t%.0f\t%.1f\t%s\n", e.Segment, e.Distance, e.Energy, kind)
	}
	w.Flush()
	fmt.Println()

	minP := tr.MinPressure()
	status := "all gauge pressures are positive"
	if minP.Pressure < 0 {
		status = "SUB-ATMOSPHERIC pressure on the profile (cavitation risk)"
	}
	fmt.Println(diagram.DrawSummaryBox("CRITICAL POINT", []string{
		fmt.Sprintf("Min gauge pressure: %.2f m at x = %.0f m", minP.Pressure, minP.Distance),
		status,
	}))

	if profileTraceChart {
		x := make([]float64, len(tr.Points))
		elev := make([]float64, len(tr.Points))
		egl := make([]float64, len(tr.Points))
		hgl := make([]float64, len(tr.Points))
		press := make([]float64, len(tr.Points))
		for i, p := range tr.Points {
			x[i], elev[i], egl[i], hgl[i], press[i] = p.Distance, p.Elevation, p.EGL, p.HGL, p.Pressure
		}

		fmt.Println()
		fmt.Println(diagram.DrawProfileChart([]diagram.Series{
			{Name: "EGL", X: x, Y: egl},
			{Name: "HGL", X: x, Y: hgl},
			{Name: "Terrain", X: x, Y: elev},
		}, 100, 20, "Energy and hydraulic grade lines (m) vs distance"))
		fmt.Println()
		fmt.Println(diagram.DrawPressureChart(x, press, 100, 12))
		fmt.Println()
	}

	if profileTraceOutput != "" {
		if err := exportPiezoMap(tr, profileTraceOutput); err != nil {
			return fmt.Errorf("exporting piezometric map: %w", err)
		}
		fmt.Printf("Piezometric map written to %s\n", profileTraceOutput)
	}

	if profileTracePressure != "" {
		x := make([]float64, len(tr.Points))
		press := make([]float64, len(tr.Points))
		for i, p := range tr.Points {
			x[i], press[i] = p.Distance, p.Pressure
		}
		if err := diagram.ExportPressureProfile(x, press, profileTracePressure); err != nil {
			return fmt.Errorf("exporting pressure profile: %w", err)
		}
		fmt.Printf("Pressure profile written to %s\n", profileTracePressure)
	}

	return nil
}

func exportPiezoMap(tr *pipeline.TraceResult, filename string) error {
	data := diagram.PiezoMapData{
		Title: "Piezometric Map - Energy and Hydraulic Grade Lines",
	}
	for _, p := range tr.Points {
		data.Distance = append(data.Distance, p.Distance)
		data.Elevation = append(data.Elevation, p.Elevation)
		data.EGL = append(data.EGL, p.EGL)
		data.HGL = append(data.HGL, p.HGL)
	}
	for _, e := range tr.Pumps {
		data.Pumps = append(data.Pumps, diagram.PumpMarker{X: e.Distance, Before: e.Before, After: e.After})
	}
	for _, e := range tr.Valves {
		data.Valves = append(data.Valves, diagram.ValveMarker{X: e.Distance, Y: e.Energy})
	}
	return diagram.ExportPiezometricMap(data, filename)
}

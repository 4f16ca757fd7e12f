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
	profileTerrainChart  bool
	profileTerrainOutput string
)

var profileTerrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Show the route terrain profile",
	Long: `Print the cumulative distance and elevation at every segment
boundary and at segment 8's underground routing breakpoints. The profile
is fixed survey data and takes no flow parameters.

Examples:
  gopiez profile terrain
  gopiez profile terrain --chart
  gopiez profile terrain --output terrain.png`,
	RunE: runProfileTerrain,
}

func init() {
	profileCmd.AddCommand(profileTerrainCmd)

	profileTerrainCmd.Flags().BoolVar(&profileTerrainChart, "chart", false, "Render an ASCII chart of the terrain")
	profileTerrainCmd.Flags().StringVarP(&profileTerrainOutput, "output", "o", "", "Export the terrain profile to a file (png, svg, pdf)")
}

func runProfileTerrain(cmd *cobra.Command, args []string) error {
	points := pipeline.CumulativeElevations()

	fmt.Println()
	fmt.Println("TERRAIN PROFILE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  x (m)\tElevation (m)\tSegment\tPoint")
	for _, p := range points {
		seg := fmt.Sprintf("%d", p.Segment)
		if p.Segment == 0 {
			seg = "-"
		}
		fmt.Fprintf(w, "  %.1f\t%.1f\t%s\t%s\n", p.Distance, p.Elevation, seg, p.Label)
	}
	w.Flush()
	fmt.Println()

	x := make([]float64, len(points))
	elev := make([]float64, len(points))
	for i, p := range points {
		x[i], elev[i] = p.Distance, p.Elevation
	}

	if profileTerrainChart {
		fmt.Println(diagram.DrawProfileChart([]diagram.Series{
			{Name: "Terrain", X: x, Y: elev},
		}, 100, 16, "Terrain elevation (m) vs distance"))
		fmt.Println()
	}

	if profileTerrainOutput != "" {
		if err := diagram.ExportTerrainProfile(x, elev, profileTerrainOutput); err != nil {
			return fmt.Errorf("exporting terrain profile: %w", err)
		}
		fmt.Printf("Terrain profile written to %s\n", profileTerrainOutput)
	}

	return nil
}

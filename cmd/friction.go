package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piezotools/gopiez/internal/hydraulics"
)

var frictionParams flowParams

var frictionCmd = &cobra.Command{
	Use:   "friction",
	Short: "Compare the three friction-factor correlations",
	Long: `Compute the Darcy friction factor from the given parameters with
all three correlations and show their deviations:

  Colebrook-White  - implicit, solved iteratively (canonical)
  Haaland          - explicit, also the iteration seed
  Swamee-Jain      - explicit, for comparison

Examples:
  gopiez friction
  gopiez friction --flow 0.05 --roughness 0.0002`,
	RunE: runFriction,
}

func init() {
	rootCmd.AddCommand(frictionCmd)
	frictionParams.register(frictionCmd)
}

func runFriction(cmd *cobra.Command, args []string) error {
	c, err := frictionParams.conduit()
	if err != nil {
		return err
	}

	area, err := hydraulics.Area(c.D)
	if err != nil {
		return err
	}
	v := hydraulics.Velocity(c.Q, area)
	re, err := hydraulics.Reynolds(c.Rho, v, c.D, c.Mu)
	if err != nil {
		return err
	}

	fCol, err := hydraulics.Colebrook(re, c.Epsilon, c.D)
	if err != nil {
		return err
	}
	fHaa := hydraulics.Haaland(re, c.Epsilon, c.D)
	fSwa := hydraulics.SwameeJain(re, c.Epsilon, c.D)

	fmt.Println()
	fmt.Println("FRICTION FACTOR COMPARISON:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Reynolds number:\t%.0f\t(%s)\n", re, hydraulics.FlowRegime(re))
	fmt.Fprintf(w, "  Relative roughness (ε/D):\t%.2e\n", c.Epsilon/c.D)
	fmt.Fprintln(w, "  \t\t")
	fmt.Fprintf(w, "  Colebrook-White (implicit):\t%.6f\t-\n", fCol)
	fmt.Fprintf(w, "  Haaland (explicit):\t%.6f\t%+.2f%%\n", fHaa, (fHaa-fCol)/fCol*100)
	fmt.Fprintf(w, "  Swamee-Jain (explicit):\t%.6f\t%+.2f%%\n", fSwa, (fSwa-fCol)/fCol*100)
	w.Flush()
	fmt.Println()

	return nil
}

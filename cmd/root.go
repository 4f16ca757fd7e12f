package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piezotools/gopiez/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gopiez",
	Short: "Mountain Pipeline Hydraulics Tool",
	Long: `gopiez - Go Piezometric Pipeline Analyzer

A CLI tool for steady-state hydraulic analysis of the fixed eight-segment
pipeline that carries river water over a mountain to an industrial plant,
3.4 km away.

This tool helps hydraulic engineers compute:
  - Flow velocity, Reynolds number and flow regime
  - Darcy friction factors (Colebrook-White, Haaland, Swamee-Jain)
  - Friction and fitting losses per segment and per station
  - Required pump head and power, or valve-dissipated energy
  - The system-wide piezometric profile (EGL, HGL, gauge pressure)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gopiez v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Piezometric Pipeline Analyzer                        ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Steady-state hydraulics of the river-to-plant mountain pipeline.")
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    • system solve    - solve all eight segments")
		fmt.Println("    • system export   - write CSV reports")
		fmt.Println("    • segment show    - registry record and fitting inventory")
		fmt.Println("    • segment solve   - single-segment hydraulics")
		fmt.Println("    • profile trace   - piezometric profile and pump/valve events")
		fmt.Println("    • profile terrain - route terrain profile")
		fmt.Println("    • friction        - compare friction-factor correlations")
		fmt.Println()
		fmt.Println("  Use 'gopiez --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

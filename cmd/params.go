package cmd

import (
	"github.com/spf13/cobra"

	"github.com/piezotools/gopiez/internal/hydraulics"
)

// Default operating point of the design study.
const (
	defaultFlow      = 0.025    // Q (m³/s)
	defaultDiameter  = 0.1541   // D (m), 6" schedule 40
	defaultDensity   = 998.0    // ρ (kg/m³), water at 20 °C
	defaultViscosity = 0.001    // μ (Pa·s)
	defaultRoughness = 0.000046 // ε (m), commercial steel
)

// flowParams are the five fluid/pipe parameters shared by every compute
// command, adjustable per run. Accepted ranges: Q 0.005–0.100 m³/s,
// D 0.05–0.30 m, ε 0.00001–0.001 m, ρ 900–1100 kg/m³, μ 0.0005–0.0020 Pa·s.
type flowParams struct {
	flow      float64
	diameter  float64
	density   float64
	viscosity float64
	roughness float64
	scenario  string
}

func (p *flowParams) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&p.flow, "flow", "q", defaultFlow, "Volumetric flow rate Q (m³/s)")
	cmd.Flags().Float64VarP(&p.diameter, "diameter", "d", defaultDiameter, "Internal pipe diameter D (m)")
	cmd.Flags().Float64Var(&p.density, "density", defaultDensity, "Fluid density ρ (kg/m³)")
	cmd.Flags().Float64Var(&p.viscosity, "viscosity", defaultViscosity, "Dynamic viscosity μ (Pa·s)")
	cmd.Flags().Float64Var(&p.roughness, "roughness", defaultRoughness, "Absolute pipe roughness ε (m)")
	cmd.Flags().StringVarP(&p.scenario, "file", "f", "", "Scenario JSON file (overrides the parameter flags)")
}

func (p *flowParams) conduit() (*hydraulics.Conduit, error) {
	if p.scenario != "" {
		s, err := hydraulics.LoadScenario(p.scenario)
		if err != nil {
			return nil, err
		}
		return s.Conduit(), nil
	}

	c := hydraulics.NewConduit(p.flow, p.diameter, p.density, p.viscosity, p.roughness)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

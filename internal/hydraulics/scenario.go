package hydraulics

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scenario is a parameter set loaded from a JSON file, so a studied
// operating point can be rerun without retyping the five flags.
//
// Example file:
//
//	{
//	  "name": "Design point",
//	  "flow": 0.025,
//	  "diameter": 0.1541,
//	  "density": 998,
//	  "viscosity": 0.001,
//	  "roughness": 0.000046
//	}
type Scenario struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Flow        float64 `json:"flow"`      // Q (m³/s)
	Diameter    float64 `json:"diameter"`  // D (m)
	Density     float64 `json:"density"`   // ρ (kg/m³)
	Viscosity   float64 `json:"viscosity"` // μ (Pa·s)
	Roughness   float64 `json:"roughness"` // ε (m)
}

// LoadScenario reads and validates a scenario JSON file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}

	if err := s.Conduit().Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Conduit builds the shared parameter set from the scenario.
func (s *Scenario) Conduit() *Conduit {
	return NewConduit(s.Flow, s.Diameter, s.Density, s.Viscosity, s.Roughness)
}

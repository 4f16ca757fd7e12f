package hydraulics

import "fmt"

// Conduit holds the fluid and pipe parameters shared by the whole serial
// pipeline. Flow continuity on a single path makes Q, and therefore the
// velocity for a given D, identical in every segment.
type Conduit struct {
	Q       float64 // volumetric flow rate (m³/s)
	D       float64 // internal pipe diameter (m)
	Rho     float64 // fluid density (kg/m³)
	Mu      float64 // dynamic viscosity (Pa·s)
	Epsilon float64 // absolute pipe roughness (m)
}

// NewConduit creates the shared parameter set for one computation.
func NewConduit(q, d, rho, mu, epsilon float64) *Conduit {
	return &Conduit{Q: q, D: d, Rho: rho, Mu: mu, Epsilon: epsilon}
}

// Validate fails fast on geometry or fluid values the engine cannot divide
// by. Q = 0 is allowed: it propagates the Re <= 0 no-flow sentinel rather
// than an error.
func (c *Conduit) Validate() error {
	if c.D <= 0 {
		return fmt.Errorf("invalid conduit: D=%.4f m (must be positive)", c.D)
	}
	if c.Mu <= 0 {
		return fmt.Errorf("invalid conduit: μ=%.6f Pa·s (must be positive)", c.Mu)
	}
	if c.Q < 0 {
		return fmt.Errorf("invalid conduit: Q=%.4f m³/s (must be non-negative)", c.Q)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("invalid conduit: ε=%.6f m (must be non-negative)", c.Epsilon)
	}
	return nil
}

// SegmentGeometry is the per-segment input of the hydraulic model: the run
// geometry and the engineering decisions taken for the segment.
type SegmentGeometry struct {
	PipeLength float64 // true pipe run length (m)
	StaticLift float64 // elevation the stations must pump (m); 0 on gravity runs
	FittingK   float64 // ΣK over the segment's fitting inventory
	Stations   int     // pumping or throttling stations subdividing the run
	Descending bool    // gravity-driven, throttling valve instead of a pump
}

// SegmentResult holds every hydraulic quantity computed for one segment.
// Results are ephemeral: recomputed in full on every parameter change and
// never mutated in place.
type SegmentResult struct {
	// Shared flow properties (uniform along the segment)
	Area        float64 // cross-sectional area (m²)
	Velocity    float64 // mean flow velocity (m/s)
	KineticHead float64 // velocity head (m)
	Reynolds    float64

	// Friction factors from the three correlations
	FColebrook  float64
	FHaaland    float64
	FSwameeJain float64

	// Per-station quantities
	StationLength     float64 // pipe length per station (m)
	StationLift       float64 // |Δz| per station (m)
	FrictionColebrook float64 // per-station friction loss, Colebrook f (m)
	FrictionHaaland   float64 // per-station friction loss, Haaland f (m)
	MinorLoss         float64 // fitting loss, applied once per segment (m)
	StationHead       float64 // per-station total head (m)

	// Segment totals
	TotalHead float64 // StationHead × station count (m)
	PowerKW   float64 // per-station pump power; 0 on gravity runs
	PowerHP   float64
}

// SolveSegment runs the segment hydraulic model for one segment geometry.
//
// The friction loss is apportioned per station while the fitting loss is
// applied once per segment at the characteristic velocity: the inventory
// of fittings is specified per physical run, not per station. The original
// engineering workbook does exactly this and the asymmetry is preserved.
func (c *Conduit) SolveSegment(g SegmentGeometry) (*SegmentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if g.Stations < 1 {
		return nil, fmt.Errorf("invalid segment: %d stations (must be >= 1)", g.Stations)
	}
	if g.PipeLength <= 0 {
		return nil, fmt.Errorf("invalid segment: pipe length %.2f m (must be positive)", g.PipeLength)
	}

	area, err := Area(c.D)
	if err != nil {
		return nil, err
	}
	v := Velocity(c.Q, area)
	hv := KineticHead(v)
	re, err := Reynolds(c.Rho, v, c.D, c.Mu)
	if err != nil {
		return nil, err
	}

	fCol, err := Colebrook(re, c.Epsilon, c.D)
	if err != nil {
		return nil, err
	}
	fHaa := Haaland(re, c.Epsilon, c.D)
	fSwa := SwameeJain(re, c.Epsilon, c.D)

	n := float64(g.Stations)
	stationLength := g.PipeLength / n
	stationLift := g.StaticLift / n

	hfCol := FrictionLoss(fCol, stationLength, c.D, v)
	hfHaa := FrictionLoss(fHaa, stationLength, c.D, v)
	hm := MinorLoss(g.FittingK, v)

	stationHead := TotalHead(abs(stationLift), hfCol, hm)
	totalHead := stationHead * n

	// Each station hosts one full-flow pump sized for its own head, so the
	// power figure is per station, not per segment. Gravity runs dissipate
	// through a throttling valve and draw no power at all.
	var powerKW, powerHP float64
	if !g.Descending {
		powerKW = PumpPowerKW(c.Rho, c.Q, stationHead)
		powerHP = KWToHP(powerKW)
	}

	return &SegmentResult{
		Area:              area,
		Velocity:          v,
		KineticHead:       hv,
		Reynolds:          re,
		FColebrook:        fCol,
		FHaaland:          fHaa,
		FSwameeJain:       fSwa,
		StationLength:     stationLength,
		StationLift:       stationLift,
		FrictionColebrook: hfCol,
		FrictionHaaland:   hfHaa,
		MinorLoss:         hm,
		StationHead:       stationHead,
		TotalHead:         totalHead,
		PowerKW:           powerKW,
		PowerHP:           powerHP,
	}, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

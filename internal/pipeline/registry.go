// Package pipeline holds the fixed eight-segment topology of the
// river-to-plant line, the system solver that runs the hydraulic model over
// it, and the energy-trace walk that turns per-segment results into a
// continuous piezometric profile.
package pipeline

import (
	"fmt"

	"github.com/piezotools/gopiez/internal/hydraulics"
)

// SegmentCount is the number of physical segments on the route.
const SegmentCount = 8

// Control is the energy-control device installed on a segment.
type Control int

const (
	// ControlPump marks an ascending or flat segment driven by one
	// full-flow pump per station.
	ControlPump Control = iota

	// ControlThrottleValve marks a gravity descent where a throttling
	// valve dissipates the excess head instead of a pump supplying it.
	ControlThrottleValve
)

func (c Control) String() string {
	switch c {
	case ControlPump:
		return "pump"
	case ControlThrottleValve:
		return "throttling valve"
	default:
		return "unknown"
	}
}

// Fitting is one entry of a segment's minor-loss inventory.
type Fitting struct {
	Name  string
	Count int
	K     float64 // loss coefficient per fitting
}

// SubSegment describes one leg of segment 8's underground routing. It only
// shapes the terrain profile; the energy trace treats segment 8 as a single
// run. A nil Height marks a leg with no surveyed elevation figure.
type SubSegment struct {
	Name     string
	Distance float64  // m
	Height   *float64 // elevation delta (m), nil if not surveyed
}

// Segment is one of the eight fixed records of the route. The geometry,
// fitting inventory and station decisions are measured engineering data
// from the survey and the topographic map, not derived quantities, so the
// numeric fields are reproduced exactly as recorded.
type Segment struct {
	Number int

	Distance   float64 // plan distance (m)
	Height     float64 // signed terrain elevation change (m)
	Slope      float64 // degrees, informational
	PipeLength float64 // true pipe run length (m)

	StaticLift float64 // elevation the stations must pump (m); 0 on gravity runs
	Stations   int
	Descending bool
	Control    Control

	Fittings []Fitting
	// FittingK is the recorded ΣK for the segment. It is the authoritative
	// figure from the workbook and is not recomputed from the inventory.
	FittingK float64

	// ThrottleValveK is the sized loss coefficient of the throttling valve
	// on descents that carry one (segments 6 and 7).
	ThrottleValveK float64

	// PressureBreakTank marks a descent that ends in an open tank,
	// resetting the energy line to local hydrostatic conditions.
	PressureBreakTank bool

	SubSegments []SubSegment

	Notes string
}

// Geometry maps the registry record onto the hydraulic model input.
func (s Segment) Geometry() hydraulics.SegmentGeometry {
	return hydraulics.SegmentGeometry{
		PipeLength: s.PipeLength,
		StaticLift: s.StaticLift,
		FittingK:   s.FittingK,
		Stations:   s.Stations,
		Descending: s.Descending,
	}
}

func height(v float64) *float64 { return &v }

// segments is the process-wide constant route table. It is initialized once
// and never mutated; accessors hand out copies.
var segments = [SegmentCount]Segment{
	{
		Number:     1,
		Distance:   182.53,
		Height:     100.0,
		Slope:      28.72,
		PipeLength: 211.13,
		StaticLift: 100.0,
		Stations:   1,
		Control:    ControlPump,
		Fittings: []Fitting{
			{Name: "River intake (projected)", Count: 1, K: 0.5},
			{Name: "30° elbow", Count: 2, K: 0.12},
			{Name: "Swing check valve", Count: 0, K: 0.0},
			{Name: "Gate valve", Count: 0, K: 0.0},
			{Name: "Outlet to receiving tank", Count: 1, K: 1.0},
		},
		FittingK: 1.62,
		Notes:    "River intake; initial 100 m climb.",
	},
	{
		Number:     2,
		Distance:   112.39,
		Height:     200.0,
		Slope:      60.67,
		PipeLength: 235.42,
		StaticLift: 200.0,
		Stations:   2,
		Control:    ControlPump,
		Fittings: []Fitting{
			{Name: "Suction from previous tank", Count: 1, K: 0.5},
			{Name: "60° elbow", Count: 2, K: 0.375},
			{Name: "Swing check valve", Count: 0, K: 1.5},
			{Name: "Gate valve", Count: 0, K: 0.12},
			{Name: "Outlet to receiving tank", Count: 1, K: 1.0},
		},
		FittingK: 3.87,
		Notes:    "Two pumping stations. Steep slope (60.67°).",
	},
	{
		Number:     3,
		Distance:   163.87,
		Height:     200.0,
		Slope:      50.67,
		PipeLength: 264.56,
		StaticLift: 200.0,
		Stations:   2,
		Control:    ControlPump,
		Fittings: []Fitting{
			{Name: "Outlet from previous tank", Count: 1, K: 0.5},
			{Name: "51° elbow", Count: 2, K: 0.28},
			{Name: "Swing check valve", Count: 0, K: 1.5},
			{Name: "Gate valve", Count: 0, K: 0.12},
			{Name: "Outlet to receiving tank", Count: 1, K: 1.0},
		},
		FittingK: 3.68,
		Notes:    "Two pumping stations. Mountain summit.",
	},
	{
		Number:     4,
		Distance:   251.55,
		Height:     0.0,
		Slope:      0.0,
		PipeLength: 254.55,
		StaticLift: 0.0,
		Stations:   1,
		Control:    ControlPump,
		Fittings: []Fitting{
			{Name: "Outlet from previous tank", Count: 1, K: 0.5},
			{Name: "90° elbow (ground routing)", Count: 2, K: 0.45},
			{Name: "Swing check valve", Count: 0, K: 1.5},
			{Name: "Gate valve", Count: 0, K: 0.12},
			{Name: "Outlet to receiving tank", Count: 1, K: 1.0},
		},
		FittingK: 4.02,
		Notes:    "Flat run. Small 2 kW pump to avoid overload.",
	},
	{
		Number:     5,
		Distance:   129.05,
		Height:     -200.0,
		Slope:      -57.17,
		PipeLength: 235.02,
		StaticLift: 0.0, // gravity does the work, nothing is pumped
		Stations:   1,
		Descending: true,
		Control:    ControlThrottleValve,
		Fittings: []Fitting{
			{Name: "Outlet from previous tank", Count: 1, K: 0.5},
			{Name: "Elbow (surveyed angle)", Count: 2, K: 0.35},
			{Name: "Gate valve", Count: 0, K: 0.12},
			{Name: "Outlet to receiving tank", Count: 1, K: 1.0},
		},
		FittingK:          2.31,
		PressureBreakTank: true,
		Notes:             "Gravity descent. Throttling valve holds the velocity at 1.34 m/s.",
	},
	{
		Number:     6,
		Distance:   71.33,
		Height:     -200.0,
		Slope:      -70.37,
		PipeLength: 209.34,
		StaticLift: 0.0,
		Stations:   1,
		Descending: true,
		Control:    ControlThrottleValve,
		Fittings: []Fitting{
			{Name: "Outlet from previous tank", Count: 1, K: 0.5},
			{Name: "Elbow (surveyed angle)", Count: 2, K: 0.53},
			{Name: "Gate valve", Count: 0, K: 0.12},
			{Name: "Outlet to receiving tank", Count: 1, K: 1.0},
		},
		FittingK:          2.68,
		ThrottleValveK:    1077.42,
		PressureBreakTank: true,
		Notes:             "Steep descent (70.37°). Throttling valve K = 1077.42.",
	},
	{
		Number:     7,
		Distance:   57.60,
		Height:     -100.0,
		Slope:      -60.06,
		PipeLength: 112.40,
		StaticLift: 0.0,
		Stations:   1,
		Descending: true,
		Control:    ControlThrottleValve,
		Fittings: []Fitting{
			{Name: "Outlet from previous tank", Count: 1, K: 0.5},
			{Name: "60° elbow", Count: 2, K: 0.38},
			{Name: "Gate valve", Count: 0, K: 0.12},
			{Name: "Outlet to receiving tank", Count: 1, K: 1.0},
		},
		FittingK:          2.37,
		ThrottleValveK:    1076.84,
		PressureBreakTank: true,
		Notes:             "Final descent to the flat. Throttling valve K = 1076.84.",
	},
	{
		Number:     8,
		Distance:   1837.50,
		Height:     100.0,
		Slope:      0.0,
		PipeLength: 1911.52,
		StaticLift: 100.0,
		Stations:   1,
		Control:    ControlPump,
		Fittings: []Fitting{
			{Name: "Tank inlet", Count: 1, K: 0.5},
			{Name: "90° elbow", Count: 4, K: 0.45},
			{Name: "60° elbow", Count: 2, K: 0.375},
			{Name: "Gate valve", Count: 1, K: 0.12},
			{Name: "Check valve", Count: 1, K: 1.5},
			{Name: "Outlet to plant tank", Count: 1, K: 1.0},
		},
		FittingK: 5.67,
		Notes:    "Buried run. Crosses the highway (700 m). Four 90° and two 60° elbows.",
		SubSegments: []SubSegment{
			{Name: "Approach to road crossing", Distance: 250.0, Height: height(0)},
			{Name: "Drop", Distance: 0.0, Height: height(-10)},
			{Name: "Buried pipe", Distance: 312.5, Height: height(-10)},
			{Name: "Direction change", Distance: 25.0, Height: height(-10)},
			{Name: "Buried run", Distance: 1187.5, Height: height(-10)},
			{Name: "Rise to plant", Distance: 62.5, Height: height(100)},
			{Name: "Climb run", Distance: 126.52, Height: nil},
		},
	},
}

// Segments returns the eight segment records in path order. The returned
// slice is a copy; the underlying table is immutable.
func Segments() []Segment {
	out := make([]Segment, SegmentCount)
	copy(out, segments[:])
	return out
}

// ByNumber returns the registry record of segment n (1..8).
func ByNumber(n int) (Segment, error) {
	if n < 1 || n > SegmentCount {
		return Segment{}, fmt.Errorf("no such segment: %d (route has segments 1..%d)", n, SegmentCount)
	}
	return segments[n-1], nil
}

package pipeline

import "fmt"

// subSamples is the number of intermediate profile points emitted per
// station, so friction shows as a gradual drop instead of a step.
const subSamples = 5

// tankJumpTolerance is the smallest tank dissipation (m) that gets its own
// vertical profile point. Smaller resets would draw as noise.
const tankJumpTolerance = 0.01

// ProfilePoint is one sample of the piezometric profile. Pressure is always
// derived, never set independently: P = EGL − hv − elevation.
type ProfilePoint struct {
	Distance  float64 // cumulative plan distance (m)
	Elevation float64 // terrain elevation (m)
	EGL       float64 // energy grade line (m)
	HGL       float64 // hydraulic grade line = EGL − hv (m)
	Pressure  float64 // gauge pressure head = HGL − elevation (m)
	Label     string
}

// PumpEvent records the discrete energy jump at a pumping station.
type PumpEvent struct {
	Segment  int
	Station  int     // 1-based within the segment
	Distance float64 // m
	Before   float64 // EGL just upstream of the pump (m)
	After    float64 // EGL just downstream (m)
	Head     float64 // ΔH added, equals the segment's per-station head (m)
	PowerKW  float64
	Label    string
}

// ValveEventKind distinguishes the two ways a gravity descent ends.
type ValveEventKind int

const (
	// ValveTankReset marks a pressure-break tank dissipating the energy
	// surplus down to local hydrostatic conditions.
	ValveTankReset ValveEventKind = iota

	// ValveGravityHandoff marks a descent without a tank: nothing is
	// dissipated and the surplus head carries into the next segment. The
	// event is purely informational.
	ValveGravityHandoff
)

// ValveEvent records a throttling valve or pressure-break tank at the foot
// of a gravity descent.
type ValveEvent struct {
	Kind     ValveEventKind
	Segment  int
	Station  int
	Distance float64 // m
	Energy   float64 // EGL at the valve, before any reset (m)
	// Magnitude is the dissipated head for a tank reset, or the available
	// gravitational head for a hand-off marker (m).
	Magnitude float64
	Label     string
}

// TraceResult is the full energy profile of the system plus the discrete
// pump and valve event records external renderers annotate with.
type TraceResult struct {
	Points []ProfilePoint
	Pumps  []PumpEvent
	Valves []ValveEvent
}

// Trace walks the route segment by segment, station by station, carrying
// cumulative distance, terrain elevation and energy, and emits the dense
// piezometric profile.
//
// Per station: a pump segment first jumps the energy line by the station
// head (a discrete event at the station's start), then the station run is
// sampled in five equal sub-steps where friction is bled off gradually and
// the segment's minor loss is lumped into the first sub-step (fittings
// cluster at the station entrance). A gravity segment ends either in a
// pressure-break tank, which resets the energy line so gauge pressure at
// the tank is exactly zero, or in a plain hand-off of the surplus head to
// the next segment.
//
// Energy is monotonically non-increasing everywhere except at a pump jump,
// and gauge pressure is always derived as EGL − hv − elevation.
func Trace(sys *SystemResult) *TraceResult {
	tr := &TraceResult{
		Points: []ProfilePoint{
			{Distance: 0, Elevation: 0, EGL: 0, HGL: 0, Pressure: 0, Label: "River intake"},
		},
	}
	if len(sys.Outcomes) == 0 {
		return tr
	}

	// The velocity head is the same on every segment (one flow, one
	// diameter), so segment 1's figure serves the whole walk.
	hv := sys.Outcomes[0].KineticHead

	var dist, elev, energy float64

	for _, o := range sys.Outcomes {
		stations := o.Stations
		hfStation := o.FrictionColebrook
		hm := o.MinorLoss
		zStation := o.Height / float64(stations)
		distStation := o.Distance / float64(stations)

		for st := 1; st <= stations; st++ {
			startDist := dist

			if !o.Descending {
				before := energy
				energy += o.StationHead
				tr.Pumps = append(tr.Pumps, PumpEvent{
					Segment:  o.Number,
					Station:  st,
					Distance: startDist,
					Before:   before,
					After:    energy,
					Head:     o.StationHead,
					PowerKW:  o.PowerKW,
					Label:    pumpLabel(o, st),
				})
			}

			for j := 1; j <= subSamples; j++ {
				frac := float64(j) / subSamples

				energy -= hfStation / subSamples
				if j == 1 {
					energy -= hm
				}

				x := startDist + distStation*frac
				z := elev + zStation*frac

				label := ""
				if j == subSamples {
					label = stationLabel(o, st) + " end"
				}
				tr.Points = append(tr.Points, ProfilePoint{
					Distance:  x,
					Elevation: z,
					EGL:       energy,
					HGL:       energy - hv,
					Pressure:  energy - hv - z,
					Label:     label,
				})
			}

			elev += zStation
			dist += distStation

			if o.Descending {
				if o.PressureBreakTank {
					// Reset so the gauge pressure at the tank is zero:
					// target EGL = elevation + hv.
					target := elev + hv
					dissipated := energy - target

					tr.Valves = append(tr.Valves, ValveEvent{
						Kind:      ValveTankReset,
						Segment:   o.Number,
						Station:   st,
						Distance:  dist,
						Energy:    energy,
						Magnitude: dissipated,
						Label: fmt.Sprintf("Pressure-break tank %s: dissipates %.1f m",
							stationLabel(o, st), dissipated),
					})

					energy = target

					if abs(dissipated) > tankJumpTolerance {
						tr.Points = append(tr.Points, ProfilePoint{
							Distance:  dist,
							Elevation: elev,
							EGL:       energy,
							HGL:       energy - hv,
							Pressure:  energy - hv - elev,
							Label:     "Tank " + stationLabel(o, st),
						})
					}
				} else {
					available := energy - hv - elev
					tr.Valves = append(tr.Valves, ValveEvent{
						Kind:      ValveGravityHandoff,
						Segment:   o.Number,
						Station:   st,
						Distance:  dist,
						Energy:    energy,
						Magnitude: available,
						Label: fmt.Sprintf("S%d → gravity to S%d: %.1f m head available",
							o.Number, o.Number+1, available),
					})
				}
			}
		}
	}

	return tr
}

// MinPressure returns the lowest gauge pressure on the profile and the
// point where it occurs. Negative values flag sub-atmospheric zones the
// caller may judge for cavitation risk.
func (tr *TraceResult) MinPressure() ProfilePoint {
	min := tr.Points[0]
	for _, p := range tr.Points[1:] {
		if p.Pressure < min.Pressure {
			min = p
		}
	}
	return min
}

func stationLabel(o SegmentOutcome, station int) string {
	if o.Stations > 1 {
		return fmt.Sprintf("S%d-%d", o.Number, station)
	}
	return fmt.Sprintf("S%d", o.Number)
}

func pumpLabel(o SegmentOutcome, station int) string {
	return fmt.Sprintf("Pump %s: ΔH = %.1f m, P = %.1f kW",
		stationLabel(o, station), o.StationHead, o.PowerKW)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

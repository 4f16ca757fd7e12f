package hydraulics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func designConduit() *Conduit {
	return NewConduit(0.025, 0.1541, 998, 0.001, 0.000046)
}

// Segment 1 of the route: 100 m climb, one station.
func climbGeometry() SegmentGeometry {
	return SegmentGeometry{
		PipeLength: 211.13,
		StaticLift: 100.0,
		FittingK:   1.62,
		Stations:   1,
	}
}

func TestSolveSegmentDesignPoint(t *testing.T) {
	res, err := designConduit().SolveSegment(climbGeometry())
	require.NoError(t, err)

	assert.InDelta(t, 1.34, res.Velocity, 0.01)
	assert.Greater(t, res.Reynolds, ReTurbulentLimit)
	assert.Greater(t, res.FColebrook, 0.0)
	assert.Greater(t, res.PowerKW, 0.0, "climbing segment must need pump power")
	assert.InDelta(t, res.PowerKW/0.7457, res.PowerHP, 1e-9)

	// One station: station figures equal segment figures.
	assert.Equal(t, res.StationHead, res.TotalHead)
	assert.Equal(t, 211.13, res.StationLength)
	assert.Equal(t, 100.0, res.StationLift)

	// H = |z| + hf + hm
	assert.InDelta(t, res.StationLift+res.FrictionColebrook+res.MinorLoss, res.StationHead, 1e-12)
}

func TestSolveSegmentGravity(t *testing.T) {
	g := SegmentGeometry{
		PipeLength: 235.02,
		StaticLift: 0,
		FittingK:   2.31,
		Stations:   1,
		Descending: true,
	}

	res, err := designConduit().SolveSegment(g)
	require.NoError(t, err)

	assert.Zero(t, res.PowerKW, "gravity segment draws no pump power")
	assert.Zero(t, res.PowerHP)
	assert.Greater(t, res.StationHead, 0.0, "losses still accumulate on the descent")
}

func TestSolveSegmentStationSplit(t *testing.T) {
	// Halving a segment into two stations must halve the per-station
	// pipe length and lift, and change the per-station power.
	g1 := SegmentGeometry{PipeLength: 209.34, StaticLift: 200, FittingK: 2.68, Stations: 1}
	g2 := g1
	g2.Stations = 2

	c := designConduit()
	r1, err := c.SolveSegment(g1)
	require.NoError(t, err)
	r2, err := c.SolveSegment(g2)
	require.NoError(t, err)

	assert.InDelta(t, r1.StationLength/2, r2.StationLength, 1e-12)
	assert.InDelta(t, r1.StationLift/2, r2.StationLift, 1e-12)
	assert.InDelta(t, r1.FrictionColebrook/2, r2.FrictionColebrook, 1e-12)
	assert.NotEqual(t, r1.PowerKW, r2.PowerKW)

	// Minor losses are the segment's fixed fitting inventory: they do not
	// split across stations.
	assert.Equal(t, r1.MinorLoss, r2.MinorLoss)
}

func TestSolveSegmentZeroFlow(t *testing.T) {
	c := NewConduit(0, 0.1541, 998, 0.001, 0.000046)

	res, err := c.SolveSegment(climbGeometry())
	require.NoError(t, err)

	// Re <= 0 propagates the friction-factor sentinel: losses collapse to
	// zero, head reduces to the static lift, power to zero.
	assert.Zero(t, res.Reynolds)
	assert.Zero(t, res.FColebrook)
	assert.Zero(t, res.FrictionColebrook)
	assert.Zero(t, res.MinorLoss)
	assert.Equal(t, 100.0, res.StationHead)
	assert.Zero(t, res.PowerKW)
}

func TestSolveSegmentValidation(t *testing.T) {
	cases := []struct {
		name string
		c    *Conduit
		g    SegmentGeometry
	}{
		{"zero diameter", NewConduit(0.025, 0, 998, 0.001, 0.000046), climbGeometry()},
		{"negative diameter", NewConduit(0.025, -1, 998, 0.001, 0.000046), climbGeometry()},
		{"zero viscosity", NewConduit(0.025, 0.1541, 998, 0, 0.000046), climbGeometry()},
		{"negative flow", NewConduit(-0.025, 0.1541, 998, 0.001, 0.000046), climbGeometry()},
		{"zero stations", designConduit(), SegmentGeometry{PipeLength: 100, Stations: 0}},
		{"zero pipe length", designConduit(), SegmentGeometry{PipeLength: 0, Stations: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.c.SolveSegment(tc.g)
			assert.Error(t, err)
		})
	}
}

func TestSolveSegmentDeterministic(t *testing.T) {
	c := designConduit()
	g := climbGeometry()

	r1, err := c.SolveSegment(g)
	require.NoError(t, err)
	r2, err := c.SolveSegment(g)
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "identical inputs must give bit-identical results")
}

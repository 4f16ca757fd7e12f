package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piezotools/gopiez/internal/hydraulics"
)

func designConduit() *hydraulics.Conduit {
	return hydraulics.NewConduit(0.025, 0.1541, 998.0, 0.001, 0.000046)
}

func TestSolveDesignPoint(t *testing.T) {
	sys, err := Solve(designConduit())
	require.NoError(t, err)
	require.Len(t, sys.Outcomes, SegmentCount)

	for i, o := range sys.Outcomes {
		assert.Equal(t, i+1, o.Number)
		assert.Greater(t, o.Velocity, 0.0)
		assert.Greater(t, o.FColebrook, 0.0)
		assert.Greater(t, o.TotalHead, 0.0)

		// Station count and descent flag are registry data, exposed through
		// the outcome as a single unambiguous selector.
		seg, err := ByNumber(o.Number)
		require.NoError(t, err)
		assert.Equal(t, seg.Stations, o.Stations)
		assert.Equal(t, seg.Descending, o.Descending)

		if o.Descending {
			assert.Zero(t, o.PowerKW, "segment %d runs on gravity", o.Number)
			assert.Zero(t, o.PowerHP, "segment %d", o.Number)
		} else {
			assert.Greater(t, o.PowerKW, 0.0, "segment %d", o.Number)
		}
	}
}

func TestSolveSharedConduitProperties(t *testing.T) {
	sys, err := Solve(designConduit())
	require.NoError(t, err)

	// One flow and one diameter on a serial path: velocity, Reynolds and
	// friction factor are identical on every segment.
	first := sys.Outcomes[0]
	for _, o := range sys.Outcomes[1:] {
		assert.Equal(t, first.Velocity, o.Velocity)
		assert.Equal(t, first.Reynolds, o.Reynolds)
		assert.Equal(t, first.FColebrook, o.FColebrook)
		assert.Equal(t, first.KineticHead, o.KineticHead)
	}
}

func TestSolveRejectsInvalidConduit(t *testing.T) {
	bad := hydraulics.NewConduit(0.025, -1, 998.0, 0.001, 0.000046)
	_, err := Solve(bad)
	assert.Error(t, err)
}

func TestOutcomeLookup(t *testing.T) {
	sys, err := Solve(designConduit())
	require.NoError(t, err)

	o7, err := sys.Outcome(7)
	require.NoError(t, err)
	assert.Equal(t, 7, o7.Number)
	assert.True(t, o7.Descending)

	_, err = sys.Outcome(0)
	assert.Error(t, err)
	_, err = sys.Outcome(9)
	assert.Error(t, err)
}

func TestTotalPowerCountsEveryStation(t *testing.T) {
	sys, err := Solve(designConduit())
	require.NoError(t, err)

	var want float64
	for _, o := range sys.Outcomes {
		want += o.PowerKW * float64(o.Stations)
	}
	assert.InDelta(t, want, sys.TotalPowerKW(), 1e-12)
	assert.Greater(t, sys.TotalPowerKW(), sys.Outcomes[0].PowerKW,
		"system total must exceed any single station")
}

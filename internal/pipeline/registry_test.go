package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryShape(t *testing.T) {
	segs := Segments()
	require.Len(t, segs, SegmentCount)

	for i, s := range segs {
		assert.Equal(t, i+1, s.Number, "segments must be in path order")
		assert.GreaterOrEqual(t, s.Stations, 1)
		assert.Greater(t, s.Distance, 0.0)
		assert.GreaterOrEqual(t, s.PipeLength, s.Distance,
			"pipe run cannot be shorter than the plan distance")
		assert.Greater(t, s.FittingK, 0.0)
		assert.NotEmpty(t, s.Fittings)
	}
}

func TestRegistryControls(t *testing.T) {
	for _, s := range Segments() {
		switch s.Number {
		case 5, 6, 7:
			assert.True(t, s.Descending, "segment %d", s.Number)
			assert.Equal(t, ControlThrottleValve, s.Control)
			assert.True(t, s.PressureBreakTank, "descents end in a pressure-break tank")
			assert.Zero(t, s.StaticLift, "gravity does the work on a descent")
			assert.Less(t, s.Height, 0.0)
		default:
			assert.False(t, s.Descending, "segment %d", s.Number)
			assert.Equal(t, ControlPump, s.Control)
			assert.Equal(t, s.Height, s.StaticLift,
				"pumped segments lift exactly their elevation change")
		}
	}
}

func TestRegistryRecordedConstants(t *testing.T) {
	s1, err := ByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, 182.53, s1.Distance)
	assert.Equal(t, 100.0, s1.Height)
	assert.Equal(t, 28.72, s1.Slope)
	assert.Equal(t, 211.13, s1.PipeLength)
	assert.Equal(t, 1.62, s1.FittingK)

	s2, err := ByNumber(2)
	require.NoError(t, err)
	assert.Equal(t, 2, s2.Stations)
	assert.Equal(t, 3.87, s2.FittingK)

	s6, err := ByNumber(6)
	require.NoError(t, err)
	assert.Equal(t, 1077.42, s6.ThrottleValveK)

	s7, err := ByNumber(7)
	require.NoError(t, err)
	assert.Equal(t, 1076.84, s7.ThrottleValveK)

	s8, err := ByNumber(8)
	require.NoError(t, err)
	assert.Equal(t, 1837.50, s8.Distance)
	assert.Equal(t, 1911.52, s8.PipeLength)
	assert.Equal(t, 5.67, s8.FittingK)
	require.Len(t, s8.SubSegments, 7)
	assert.Nil(t, s8.SubSegments[6].Height, "final climb leg has no surveyed elevation")
}

func TestByNumberBounds(t *testing.T) {
	for _, n := range []int{0, -1, 9, 100} {
		_, err := ByNumber(n)
		assert.Error(t, err, "segment %d", n)
	}
	for n := 1; n <= SegmentCount; n++ {
		s, err := ByNumber(n)
		require.NoError(t, err)
		assert.Equal(t, n, s.Number)
	}
}

func TestSegmentsReturnsCopy(t *testing.T) {
	segs := Segments()
	segs[0].Distance = -1

	again, err := ByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, 182.53, again.Distance, "mutating the returned slice must not touch the table")
}

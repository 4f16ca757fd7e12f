package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCumulativeElevations(t *testing.T) {
	points := CumulativeElevations()

	// Intake + 7 segment boundaries + 6 surveyed breakpoints on segment 8
	// (the final climb leg carries no elevation and is skipped).
	require.Len(t, points, 14)

	assert.Equal(t, ElevationPoint{0, 0, 0, "River intake"}, points[0])

	// Distances never go backwards; the survey's vertical drop leg makes
	// them non-strict.
	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].Distance, points[i-1].Distance)
		assert.GreaterOrEqual(t, points[i].Segment, points[i-1].Segment)
	}

	// Segment 7 bottoms out at river level before the long segment 8 run.
	s7 := points[7]
	assert.Equal(t, 7, s7.Segment)
	assert.InDelta(t, 968.32, s7.Distance, 1e-9)
	assert.InDelta(t, 0.0, s7.Elevation, 1e-9)

	// The surveyed route ends 60 m above the intake.
	last := points[len(points)-1]
	assert.Equal(t, 8, last.Segment)
	assert.InDelta(t, 2805.82, last.Distance, 1e-9)
	assert.InDelta(t, 60.0, last.Elevation, 1e-9)
}

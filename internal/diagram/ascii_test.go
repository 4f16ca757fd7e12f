package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleUniform(t *testing.T) {
	x := []float64{0, 10, 20}
	y := []float64{0, 100, 0}

	out := ResampleUniform(x, y, 5)
	require.Len(t, out, 5)
	assert.InDelta(t, 0.0, out[0], 1e-12)
	assert.InDelta(t, 50.0, out[1], 1e-12)
	assert.InDelta(t, 100.0, out[2], 1e-12)
	assert.InDelta(t, 50.0, out[3], 1e-12)
	assert.InDelta(t, 0.0, out[4], 1e-12)
}

func TestResampleUniformVerticalJump(t *testing.T) {
	// A pump boost repeats a distance with two energies. Samples at the jump
	// must land on the post-jump value.
	x := []float64{0, 5, 5, 10}
	y := []float64{0, 0, 100, 100}

	out := ResampleUniform(x, y, 3)
	require.Len(t, out, 3)
	assert.InDelta(t, 0.0, out[0], 1e-12)
	assert.InDelta(t, 100.0, out[1], 1e-12)
	assert.InDelta(t, 100.0, out[2], 1e-12)
}

func TestResampleUniformDegenerate(t *testing.T) {
	assert.Nil(t, ResampleUniform(nil, nil, 10))
	assert.Nil(t, ResampleUniform([]float64{1}, []float64{2}, 0))

	flat := ResampleUniform([]float64{3}, []float64{7}, 4)
	assert.Equal(t, []float64{7, 7, 7, 7}, flat)
}

func TestDrawProfileChart(t *testing.T) {
	series := []Series{
		{Name: "EGL", X: []float64{0, 100, 200}, Y: []float64{0, 90, 80}},
		{Name: "Terrain", X: []float64{0, 100, 200}, Y: []float64{0, 50, 60}},
	}

	chart := DrawProfileChart(series, 60, 10, "Piezometric profile")
	assert.Contains(t, chart, "EGL")
	assert.Contains(t, chart, "Terrain")
	assert.Contains(t, chart, "Piezometric profile")

	assert.Empty(t, DrawProfileChart(nil, 60, 10, ""))
}

func TestDrawPressureChart(t *testing.T) {
	x := []float64{0, 100, 200}
	p := []float64{10, -3.5, 20}

	chart := DrawPressureChart(x, p, 60, 8)
	assert.Contains(t, chart, "min -3.5 m")
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("PUMP SIZING", []string{"Head: 120.0 m", "Power: 35.2 kW"})

	assert.Contains(t, box, "PUMP SIZING")
	assert.Contains(t, box, "Head: 120.0 m")
	assert.Contains(t, box, "Power: 35.2 kW")
	assert.Contains(t, box, "╔")
	assert.Contains(t, box, "╚")

	// Every row, borders included, has the same width.
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	for _, line := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)))
	}
}

func TestDrawSummaryBoxUnicodeLabels(t *testing.T) {
	// Multi-byte engineering symbols must not shift the right edge: widths
	// are rune counts, not byte counts.
	box := DrawSummaryBox("CRITICAL POINT", []string{
		"ΔH = 120.0 m",
		"ρ = 998 kg/m³, slope 28.72°",
	})

	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	for _, line := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)))
	}
}

// Package diagram renders the engine's profiles: ASCII charts for the
// terminal and gonum/plot exports for files.
package diagram

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
)

// Series is one named curve sampled at arbitrary distances.
type Series struct {
	Name string
	X    []float64 // cumulative distance (m), non-decreasing
	Y    []float64
}

// ResampleUniform linearly interpolates a curve onto n evenly spaced
// samples between x[0] and x[len-1]. Terminal charts index by column, so
// unevenly spaced profile points must be regridded first.
func ResampleUniform(x, y []float64, n int) []float64 {
	if len(x) == 0 || n <= 0 {
		return nil
	}
	if len(x) == 1 {
		out := make([]float64, n)
		for i := range out {
			out[i] = y[0]
		}
		return out
	}

	lo, hi := x[0], x[len(x)-1]
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		xi := lo + (hi-lo)*float64(i)/float64(n-1)
		out[i] = interpolate(x, y, xi)
	}
	return out
}

func interpolate(x, y []float64, xi float64) float64 {
	// First sample strictly beyond xi. Vertical jumps (pump boosts, tank
	// resets) repeat a distance; the upper-bound search skips past every
	// duplicate so an exact hit lands on the post-jump value.
	j := sort.Search(len(x), func(i int) bool { return x[i] > xi })
	if j == 0 {
		return y[0]
	}
	if j == len(x) {
		return y[len(x)-1]
	}
	if x[j-1] == xi {
		return y[j-1]
	}
	t := (xi - x[j-1]) / (x[j] - x[j-1])
	return y[j-1] + t*(y[j]-y[j-1])
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red,  // EGL
	asciigraph.Blue, // HGL
	asciigraph.Gray, // terrain
	asciigraph.Green,
}

// DrawProfileChart renders one or more curves over shared distance bounds
// as a terminal chart.
func DrawProfileChart(series []Series, width, height int, caption string) string {
	if len(series) == 0 {
		return ""
	}

	data := make([][]float64, len(series))
	legends := make([]string, len(series))
	colors := make([]asciigraph.AnsiColor, len(series))
	for i, s := range series {
		data[i] = ResampleUniform(s.X, s.Y, width)
		legends[i] = s.Name
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

// DrawPressureChart renders the gauge-pressure profile with a caption
// flagging the minimum (sub-atmospheric pressure means cavitation risk).
func DrawPressureChart(x, pressure []float64, width, height int) string {
	resampled := ResampleUniform(x, pressure, width)
	caption := fmt.Sprintf("Gauge pressure head (m), min %.1f m", floats.Min(pressure))
	return asciigraph.Plot(resampled,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// DrawSummaryBox renders a titled box around result lines. Widths are
// measured in runes so labels with Δ, ρ or ° keep the edges aligned.
func DrawSummaryBox(title string, lines []string) string {
	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}

	var sb strings.Builder
	border := strings.Repeat("═", width+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

package pipeline

import "fmt"

// ElevationPoint is one terrain sample at a segment boundary or at one of
// segment 8's internal routing breakpoints.
type ElevationPoint struct {
	Distance  float64 // cumulative plan distance (m)
	Elevation float64 // cumulative terrain elevation (m)
	Segment   int     // 0 marks the river intake
	Label     string
}

// CumulativeElevations walks the route and returns the terrain profile
// points used for rendering: the river intake, the end of segments 1..7,
// and segment 8's surveyed sub-segment breakpoints (legs without an
// elevation figure are skipped, as in the survey sheet).
func CumulativeElevations() []ElevationPoint {
	points := []ElevationPoint{
		{Distance: 0.0, Elevation: 0.0, Segment: 0, Label: "River intake"},
	}

	var dist, elev float64
	for i := 0; i < SegmentCount-1; i++ {
		s := segments[i]
		dist += s.Distance
		elev += s.Height
		points = append(points, ElevationPoint{
			Distance:  dist,
			Elevation: elev,
			Segment:   s.Number,
			Label:     fmt.Sprintf("End of segment %d", s.Number),
		})
	}

	for _, sub := range segments[SegmentCount-1].SubSegments {
		if sub.Height == nil {
			continue
		}
		dist += sub.Distance
		elev += *sub.Height
		points = append(points, ElevationPoint{
			Distance:  dist,
			Elevation: elev,
			Segment:   8,
			Label:     sub.Name,
		})
	}

	return points
}

package pipeline

import (
	"fmt"

	"github.com/piezotools/gopiez/internal/hydraulics"
)

// SegmentOutcome pairs one segment's registry record with its computed
// hydraulics, so downstream consumers (trace, reports, charts) need no
// second registry lookup.
type SegmentOutcome struct {
	Segment
	hydraulics.SegmentResult
}

// SystemResult is the complete per-segment result set for one set of
// parameters. Outcomes are ordered 1..8 along the physical path.
type SystemResult struct {
	Conduit  hydraulics.Conduit
	Outcomes []SegmentOutcome
}

// Solve runs the segment hydraulic model over every segment of the route.
//
// There is no cross-segment coupling: the flow is identical everywhere on
// the single serial path, so each segment is solved independently and
// gravity segments borrow no energy from their pumped neighbors.
func Solve(c *hydraulics.Conduit) (*SystemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sys := &SystemResult{
		Conduit:  *c,
		Outcomes: make([]SegmentOutcome, 0, SegmentCount),
	}
	for _, seg := range segments {
		res, err := c.SolveSegment(seg.Geometry())
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", seg.Number, err)
		}
		sys.Outcomes = append(sys.Outcomes, SegmentOutcome{
			Segment:       seg,
			SegmentResult: *res,
		})
	}
	return sys, nil
}

// Outcome returns the result for segment n (1..8).
func (s *SystemResult) Outcome(n int) (SegmentOutcome, error) {
	if n < 1 || n > len(s.Outcomes) {
		return SegmentOutcome{}, fmt.Errorf("no such segment: %d", n)
	}
	return s.Outcomes[n-1], nil
}

// TotalPowerKW sums the pump power drawn across the system, counting every
// station of every pumped segment.
func (s *SystemResult) TotalPowerKW() float64 {
	var total float64
	for _, o := range s.Outcomes {
		total += o.PowerKW * float64(o.Stations)
	}
	return total
}

// Package report exports the engine's results as CSV tables.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/piezotools/gopiez/internal/pipeline"
)

// SegmentRow is one line of the per-segment hydraulics table.
type SegmentRow struct {
	Segment         int     `csv:"segment"`
	Control         string  `csv:"control"`
	Distance        float64 `csv:"distance_m"`
	Height          float64 `csv:"height_m"`
	Slope           float64 `csv:"slope_deg"`
	PipeLength      float64 `csv:"pipe_length_m"`
	Stations        int     `csv:"stations"`
	Area            float64 `csv:"area_m2"`
	Velocity        float64 `csv:"velocity_m_s"`
	KineticHead     float64 `csv:"kinetic_head_m"`
	Reynolds        float64 `csv:"reynolds"`
	FColebrook      float64 `csv:"f_colebrook"`
	FHaaland        float64 `csv:"f_haaland"`
	FSwameeJain     float64 `csv:"f_swamee_jain"`
	StationFriction float64 `csv:"station_friction_loss_m"`
	MinorLoss       float64 `csv:"minor_loss_m"`
	StationHead     float64 `csv:"station_head_m"`
	TotalHead       float64 `csv:"total_head_m"`
	PowerKW         float64 `csv:"power_kw"`
	PowerHP         float64 `csv:"power_hp"`
}

// ProfileRow is one energy-trace sample.
type ProfileRow struct {
	Distance  float64 `csv:"distance_m"`
	Elevation float64 `csv:"elevation_m"`
	EGL       float64 `csv:"egl_m"`
	HGL       float64 `csv:"hgl_m"`
	Pressure  float64 `csv:"pressure_m"`
	Label     string  `csv:"label"`
}

// PumpRow is one discrete pump event.
type PumpRow struct {
	Segment  int     `csv:"segment"`
	Station  int     `csv:"station"`
	Distance float64 `csv:"distance_m"`
	Before   float64 `csv:"egl_before_m"`
	After    float64 `csv:"egl_after_m"`
	Head     float64 `csv:"head_m"`
	PowerKW  float64 `csv:"power_kw"`
}

// ValveRow is one throttling-valve or pressure-break-tank event.
type ValveRow struct {
	Kind      string  `csv:"kind"`
	Segment   int     `csv:"segment"`
	Station   int     `csv:"station"`
	Distance  float64 `csv:"distance_m"`
	Energy    float64 `csv:"egl_m"`
	Magnitude float64 `csv:"magnitude_m"`
	Label     string  `csv:"label"`
}

// SegmentRows flattens the system result into the per-segment table.
func SegmentRows(sys *pipeline.SystemResult) []SegmentRow {
	rows := make([]SegmentRow, 0, len(sys.Outcomes))
	for _, o := range sys.Outcomes {
		rows = append(rows, SegmentRow{
			Segment:         o.Number,
			Control:         o.Control.String(),
			Distance:        o.Distance,
			Height:          o.Height,
			Slope:           o.Slope,
			PipeLength:      o.PipeLength,
			Stations:        o.Stations,
			Area:            o.Area,
			Velocity:        o.Velocity,
			KineticHead:     o.KineticHead,
			Reynolds:        o.Reynolds,
			FColebrook:      o.FColebrook,
			FHaaland:        o.FHaaland,
			FSwameeJain:     o.FSwameeJain,
			StationFriction: o.FrictionColebrook,
			MinorLoss:       o.MinorLoss,
			StationHead:     o.StationHead,
			TotalHead:       o.TotalHead,
			PowerKW:         o.PowerKW,
			PowerHP:         o.PowerHP,
		})
	}
	return rows
}

// ProfileRows flattens the trace into profile samples.
func ProfileRows(tr *pipeline.TraceResult) []ProfileRow {
	rows := make([]ProfileRow, 0, len(tr.Points))
	for _, p := range tr.Points {
		rows = append(rows, ProfileRow{
			Distance:  p.Distance,
			Elevation: p.Elevation,
			EGL:       p.EGL,
			HGL:       p.HGL,
			Pressure:  p.Pressure,
			Label:     p.Label,
		})
	}
	return rows
}

// PumpRows flattens the pump events.
func PumpRows(tr *pipeline.TraceResult) []PumpRow {
	rows := make([]PumpRow, 0, len(tr.Pumps))
	for _, e := range tr.Pumps {
		rows = append(rows, PumpRow{
			Segment:  e.Segment,
			Station:  e.Station,
			Distance: e.Distance,
			Before:   e.Before,
			After:    e.After,
			Head:     e.Head,
			PowerKW:  e.PowerKW,
		})
	}
	return rows
}

// ValveRows flattens the valve/tank events.
func ValveRows(tr *pipeline.TraceResult) []ValveRow {
	rows := make([]ValveRow, 0, len(tr.Valves))
	for _, e := range tr.Valves {
		kind := "tank_reset"
		if e.Kind == pipeline.ValveGravityHandoff {
			kind = "gravity_handoff"
		}
		rows = append(rows, ValveRow{
			Kind:      kind,
			Segment:   e.Segment,
			Station:   e.Station,
			Distance:  e.Distance,
			Energy:    e.Energy,
			Magnitude: e.Magnitude,
			Label:     e.Label,
		})
	}
	return rows
}

// ExportAll writes segments.csv, profile.csv, pumps.csv and valves.csv into
// dir, creating it if needed.
func ExportAll(dir string, sys *pipeline.SystemResult, tr *pipeline.TraceResult) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	files := []struct {
		name string
		rows interface{}
	}{
		{"segments.csv", SegmentRows(sys)},
		{"profile.csv", ProfileRows(tr)},
		{"pumps.csv", PumpRows(tr)},
		{"valves.csv", ValveRows(tr)},
	}

	for _, f := range files {
		if err := writeCSV(filepath.Join(dir, f.name), f.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, rows interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.Marshal(rows, file); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

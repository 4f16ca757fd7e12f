package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	terrainFill = color.RGBA{R: 213, G: 202, B: 189, A: 128}
	terrainLine = color.RGBA{R: 166, G: 144, B: 118, A: 255}
	eglColor    = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	hglColor    = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	pumpColor   = color.RGBA{R: 16, G: 185, B: 129, A: 255}
	valveColor  = color.RGBA{R: 245, G: 158, B: 11, A: 255}
	slateColor  = color.RGBA{R: 30, G: 41, B: 59, A: 255}
)

// PumpMarker is the vertical energy jump drawn at a pumping station.
type PumpMarker struct {
	X      float64
	Before float64
	After  float64
}

// ValveMarker is a throttling valve or pressure-break tank position.
type ValveMarker struct {
	X float64
	Y float64
}

// PiezoMapData carries everything the piezometric map plot needs. All
// series share the Distance axis.
type PiezoMapData struct {
	Title     string
	Distance  []float64
	Elevation []float64
	EGL       []float64
	HGL       []float64
	Pumps     []PumpMarker
	Valves    []ValveMarker
}

// ExportPiezometricMap writes the piezometric map (terrain fill, energy
// grade line, hydraulic grade line, pump jumps, valve markers) to an image
// file. Format follows the extension (png, svg, pdf).
func ExportPiezometricMap(data PiezoMapData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Elevation / Energy (m)"
	p.Legend.Top = true

	// Terrain as a filled polygon closed along the zero line.
	terrainPts := make(plotter.XYs, 0, len(data.Distance)+2)
	terrainPts = append(terrainPts, plotter.XY{X: data.Distance[0], Y: 0})
	for i := range data.Distance {
		terrainPts = append(terrainPts, plotter.XY{X: data.Distance[i], Y: data.Elevation[i]})
	}
	terrainPts = append(terrainPts, plotter.XY{X: data.Distance[len(data.Distance)-1], Y: 0})

	terrain, err := plotter.NewPolygon(terrainPts)
	if err != nil {
		return err
	}
	terrain.Color = terrainFill
	terrain.LineStyle.Color = terrainLine
	p.Add(terrain)

	egl, err := line(data.Distance, data.EGL, eglColor, 2, nil)
	if err != nil {
		return err
	}
	p.Add(egl)
	p.Legend.Add("EGL", egl)

	hgl, err := line(data.Distance, data.HGL, hglColor, 2, []vg.Length{vg.Points(6), vg.Points(3)})
	if err != nil {
		return err
	}
	p.Add(hgl)
	p.Legend.Add("HGL", hgl)

	for _, pm := range data.Pumps {
		jump, err := line([]float64{pm.X, pm.X}, []float64{pm.Before, pm.After}, pumpColor, 3, nil)
		if err != nil {
			return err
		}
		p.Add(jump)
	}

	if len(data.Valves) > 0 {
		valvePts := make(plotter.XYs, len(data.Valves))
		for i, v := range data.Valves {
			valvePts[i] = plotter.XY{X: v.X, Y: v.Y}
		}
		valves, err := plotter.NewScatter(valvePts)
		if err != nil {
			return err
		}
		valves.GlyphStyle.Color = valveColor
		valves.GlyphStyle.Radius = vg.Points(5)
		valves.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(valves)
		p.Legend.Add("Valve / tank", valves)
	}

	return save(p, filename, 10*vg.Inch, 6*vg.Inch)
}

// ExportPressureProfile writes the gauge-pressure profile with the
// atmospheric (zero) reference line.
func ExportPressureProfile(x, pressure []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Gauge Pressure Along the System"
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Pressure head (m)"

	pr, err := line(x, pressure, slateColor, 2, nil)
	if err != nil {
		return err
	}
	p.Add(pr)

	zero, err := line([]float64{x[0], x[len(x)-1]}, []float64{0, 0}, eglColor, 1,
		[]vg.Length{vg.Points(2), vg.Points(2)})
	if err != nil {
		return err
	}
	p.Add(zero)
	p.Legend.Add("atmospheric", zero)

	return save(p, filename, 10*vg.Inch, 4*vg.Inch)
}

// ExportTerrainProfile writes the route's terrain profile with breakpoint
// markers.
func ExportTerrainProfile(x, elevation []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Terrain Profile"
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Elevation (m)"

	terrain, err := line(x, elevation, terrainLine, 2, nil)
	if err != nil {
		return err
	}
	p.Add(terrain)

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: elevation[i]}
	}
	marks, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = slateColor
	marks.GlyphStyle.Radius = vg.Points(3)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	return save(p, filename, 10*vg.Inch, 5*vg.Inch)
}

func line(x, y []float64, c color.Color, width float64, dashes []vg.Length) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(width)
	l.LineStyle.Color = c
	l.LineStyle.Dashes = dashes
	return l, nil
}

func save(p *plot.Plot, filename string, w, h vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(w, h, filename)
	default:
		return p.Save(w, h, filename+".png")
	}
}

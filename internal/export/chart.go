package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/san-kum/faraday/internal/analysis"
	"github.com/san-kum/faraday/internal/sim"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 6 * vg.Inch
	chartDPI    = 150
)

var (
	fluxColor = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	emfColor  = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}

	ErrEmptyTrace = errors.New("export: trace has fewer than two frames")
)

func linePlot(title, ylabel string, xs, ys []float64, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	p.Add(line)
	return p, nil
}

// ChartPlots returns the flux and EMF plots of a run, each with its own
// vertical scale.
func ChartPlots(tr *sim.Trace) (flux, emf *plot.Plot, err error) {
	if len(tr.Frames) < 2 {
		return nil, nil, ErrEmptyTrace
	}
	t := tr.Column(func(f sim.Frame) float64 { return f.Time })
	flux, err = linePlot("Magnetic flux", "flux (Wb)", t, tr.Column(func(f sim.Frame) float64 { return f.Flux }), fluxColor)
	if err != nil {
		return nil, nil, err
	}
	flux.Y.Min = 0
	emf, err = linePlot(fmt.Sprintf("Induced EMF (N=%d)", tr.Scenario.Turns), "emf (V)", t, tr.Column(func(f sim.Frame) float64 { return f.EMF }), emfColor)
	if err != nil {
		return nil, nil, err
	}
	return flux, emf, nil
}

type chartCanvas interface {
	vg.CanvasSizer
	io.WriterTo
}

func newCanvas(f Format) (chartCanvas, error) {
	switch f {
	case FormatPNG:
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(chartWidth, chartHeight), vgimg.UseDPI(chartDPI))}, nil
	case FormatSVG:
		return vgsvg.New(chartWidth, chartHeight), nil
	}
	return nil, fmt.Errorf("not a chart format: %q", f)
}

// WriteChart draws flux above EMF, both against time.
func WriteChart(w io.Writer, tr *sim.Trace, f Format) error {
	flux, emf, err := ChartPlots(tr)
	if err != nil {
		return err
	}
	c, err := newCanvas(f)
	if err != nil {
		return err
	}

	plots := [][]*plot.Plot{{flux}, {emf}}
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadX: vg.Millimeter, PadY: 4 * vg.Millimeter, PadTop: 2 * vg.Millimeter, PadBottom: 2 * vg.Millimeter}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	_, err = c.WriteTo(w)
	return err
}

// WritePortrait draws EMF against magnet position.
func WritePortrait(w io.Writer, p *analysis.Portrait, f Format) error {
	if p == nil || len(p.Points) < 2 {
		return ErrEmptyTrace
	}
	pl := plot.New()
	pl.Title.Text = "EMF against magnet position"
	pl.X.Label.Text = "position"
	pl.Y.Label.Text = "emf (V)"
	pl.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(p.Points))
	for i, pt := range p.Points {
		pts[i].X, pts[i].Y = pt.X, pt.Y
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = emfColor
	sc.GlyphStyle.Radius = vg.Points(1)
	pl.Add(sc)

	c, err := newCanvas(f)
	if err != nil {
		return err
	}
	pl.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/faraday/internal/induction"
)

// ChartSeries splits samples into parallel time, flux and EMF columns.
func ChartSeries(samples []induction.Sample) (times, flux, emf []float64) {
	times = make([]float64, len(samples))
	flux = make([]float64, len(samples))
	emf = make([]float64, len(samples))
	for i, s := range samples {
		times[i], flux[i], emf[i] = s.Time, s.Flux, s.EMF
	}
	return times, flux, emf
}

// RenderChart plots flux and EMF over the same samples, each against its
// own vertical scale.
func RenderChart(samples []induction.Sample, width, rows int) string {
	if len(samples) < 2 {
		return "waiting for samples..."
	}
	times, flux, emf := ChartSeries(samples)
	span := fmt.Sprintf("t %.1fs to %.1fs", times[0], times[len(times)-1])

	fluxPlot := asciigraph.Plot(flux,
		asciigraph.Height(rows),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.LowerBound(0),
		asciigraph.SeriesColors(asciigraph.Blue),
		asciigraph.Caption("flux (Wb)  "+span),
	)
	emfPlot := asciigraph.Plot(emf,
		asciigraph.Height(rows),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Red),
		asciigraph.Caption("emf (V)  "+span),
	)
	return fluxPlot + "\n\n" + emfPlot
}

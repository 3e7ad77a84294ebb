// Package analysis summarises recorded induction runs.
//
//   - [Peak]: the frame with the largest |EMF|
//   - [Spectrum] and [DominantFrequency]: EMF frequency content
//   - [Summarize]: mean, extremes and RMS of a series
//   - [EMFPortrait]: EMF against magnet position, with an ASCII plot
//   - [Crossings]: times the magnet passes through the coil centre
//
// For a magnet swept at constant speed the EMF peaks where the flux slope
// is steepest, at ±FluxWidth/√2:
//
//	p := analysis.Peak(trace)
//	fmt.Printf("peak %.2f V at x=%.1f\n", p.EMF, p.Position)
package analysis

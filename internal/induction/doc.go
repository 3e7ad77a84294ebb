// Package induction implements the per-tick physics of a bar magnet moving
// through a coil.
//
// The package is deliberately free of I/O and clocks. Callers feed it a
// timestamp and a magnet position on every frame and read back:
//
//   - [Params.Flux]: Gaussian flux linkage as a function of position
//   - [Params.FluxSlope]: closed-form dΦ/dx
//   - [Params.EMF]: Faraday EMF, -N · dΦ/dx · v
//   - [Core]: carries velocity and display smoothing between ticks and
//     records a downsampled, bounded [History]
//
// # Example
//
//	core := induction.NewCore(induction.DefaultParams())
//	core.Start(0, 0)
//	out, ok := core.Step(16.7, 12.5)
//	if ok {
//	    fmt.Println(out.Flux, out.EMFDisplay)
//	}
//
// # Thread Safety
//
// Core is NOT thread-safe. A single owner (see package sim) steps it and
// hands out value snapshots to readers.
package induction

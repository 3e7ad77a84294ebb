// Package viz is the terminal front end of the induction lab.
//
// The lab is a Bubble Tea program:
//
//   - [Model]: magnet, coil and field lines, a galvanometer and the
//     flux/EMF history chart, driven by bubbletea ticks
//   - [Canvas]: braille dot matrix used for the galvanometer dial
//   - [RenderChart]: two asciigraph plots with independent scales
//
// Drawing only reads session snapshots. All state changes go through the
// session setters.
//
// # Key Bindings
//
//	drag    - Move the magnet with the mouse
//	←/→     - Nudge the magnet
//	Space   - Auto-play on/off
//	+/-     - Coil turns
//	]/[     - Oscillation speed
//	R       - Reset
//	E       - Ask the tutor about this moment
//	T       - Cycle color themes
//	?       - Show help
package viz

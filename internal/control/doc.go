// Package control decides where the magnet is on every tick.
//
// A [Source] is a tagged variant resolved once per tick into a scalar
// position:
//
//   - [Manual]: whatever the last drag update set, held between events
//   - [Oscillating]: Amplitude · sin(t · 0.001 · 2 · Speed)
//
// [Magnet] owns the drag/auto-play state machine. Any drag interrupts
// auto-play; releasing a drag never resumes it.
//
// # Usage
//
//	m := control.NewMagnet(control.DefaultTravel(), control.DefaultAmplitude)
//	m.SetPlaying(true)
//	x := m.Resolve(nowMillis) // oscillator
//	m.BeginDrag(x)            // playing is now false
//	m.DragTo(x + 25)
//	m.EndDrag()
package control

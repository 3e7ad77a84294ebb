package sim

import (
	"sync"

	"github.com/san-kum/faraday/internal/control"
	"github.com/san-kum/faraday/internal/induction"
)

// Snapshot is a read-only copy of the session handed to sinks.
type Snapshot struct {
	State   induction.State    `json:"state"`
	Speed   float64            `json:"speed"`
	History []induction.Sample `json:"history"`
}

// Observer receives a snapshot after every accepted tick.
type Observer interface {
	OnTick(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) OnTick(s Snapshot) { f(s) }

// Session binds the physics core to the magnet controls. It is the single
// owner of simulation state; user actions go through its setters and
// derived fields are only ever written by Tick.
type Session struct {
	mu        sync.Mutex
	core      *induction.Core
	magnet    *control.Magnet
	observers []Observer
}

func NewSession(p induction.Params, magnet *control.Magnet) *Session {
	return &Session{
		core:      induction.NewCore(p),
		magnet:    magnet,
		observers: make([]Observer, 0),
	}
}

func (s *Session) AddObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Start sets the tick clock epoch in milliseconds, measuring the first
// velocity from wherever the magnet currently is.
func (s *Session) Start(now float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.core.Start(now, s.magnet.Resolve(now))
}

// Tick resolves the magnet position for now and advances the core. It
// reports whether the tick was accepted.
func (s *Session) Tick(now float64) bool {
	s.mu.Lock()
	// The magnet only moves if the core accepts the tick.
	x := s.magnet.Peek(now)
	_, ok := s.core.Step(now, x)
	if ok {
		s.magnet.Place(x)
	}
	var snap Snapshot
	var obs []Observer
	if ok && len(s.observers) > 0 {
		snap = s.snapshotLocked()
		obs = s.observers
	}
	s.mu.Unlock()

	for _, o := range obs {
		o.OnTick(snap)
	}
	return ok
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	st := s.core.State()
	st.Position = s.magnet.Position()
	st.Dragging = s.magnet.Dragging()
	st.Playing = s.magnet.Playing()
	return Snapshot{State: st, Speed: s.magnet.Speed(), History: s.core.History()}
}

func (s *Session) SetTurns(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.core.SetTurns(n)
}

func (s *Session) SetSpeed(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.magnet.SetSpeed(v)
}

func (s *Session) SetPlaying(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.magnet.SetPlaying(on)
}

func (s *Session) TogglePlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.magnet.TogglePlay()
}

func (s *Session) BeginDrag(x float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.magnet.BeginDrag(x)
}

func (s *Session) DragTo(x float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.magnet.DragTo(x)
}

func (s *Session) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.magnet.EndDrag()
}

func (s *Session) Nudge(dx float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.magnet.Nudge(dx)
}

// Reset centres the magnet, stops auto-play and clears history in one
// step.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.magnet.Reset()
	s.core.Reset()
}

func (s *Session) Params() induction.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Params()
}

// Skipped returns how many ticks were dropped for non-positive dt.
func (s *Session) Skipped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Skipped()
}

func (s *Session) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Ticks()
}

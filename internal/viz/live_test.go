package viz

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/faraday/internal/config"
	"github.com/san-kum/faraday/internal/tutor"
)

func newTestModel() Model {
	cfg := config.DefaultConfig()
	logger := log.New(io.Discard)
	return NewModel(cfg.NewSession(), tutor.New(nil, logger, 0), cfg.Travel(), Options{Logger: logger})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Keys(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, key("+"))
	m, _ = update(t, m, key("]"))
	m, _ = update(t, m, key(" "))
	snap := m.session.Snapshot()
	if snap.State.Turns != 6 || snap.Speed != 1.5 || !snap.State.Playing {
		t.Fatalf("after +, ], space: turns=%d speed=%v playing=%v", snap.State.Turns, snap.Speed, snap.State.Playing)
	}

	m, _ = update(t, m, key("left"))
	snap = m.session.Snapshot()
	if snap.State.Playing || snap.State.Position != -NudgeStep {
		t.Errorf("nudge: playing=%v pos=%v", snap.State.Playing, snap.State.Position)
	}

	m, _ = update(t, m, key("r"))
	if pos := m.session.Snapshot().State.Position; pos != 0 {
		t.Errorf("reset left magnet at %v", pos)
	}

	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not produce QuitMsg")
	}
}

func TestModel_TurnsClamped(t *testing.T) {
	m := newTestModel()
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, key("+"))
	}
	if n := m.session.Snapshot().State.Turns; n != 20 {
		t.Errorf("turns = %d, want 20", n)
	}
}

func TestModel_Drag(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, key(" "))

	col := magnetColumn(m)
	m, _ = update(t, m, tea.MouseMsg{X: col, Y: sceneTop + 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	snap := m.session.Snapshot()
	if !snap.State.Dragging || snap.State.Playing {
		t.Fatalf("press: dragging=%v playing=%v", snap.State.Dragging, snap.State.Playing)
	}
	if snap.State.Position != 0 {
		t.Errorf("magnet jumped to %v on grab", snap.State.Position)
	}

	m, _ = update(t, m, tea.MouseMsg{X: col + 10, Y: sceneTop + 4, Action: tea.MouseActionMotion})
	if pos := m.session.Snapshot().State.Position; pos != 100 {
		t.Errorf("drag to +10 cols: pos=%v, want 100", pos)
	}

	// Leaving the scene keeps the drag alive.
	m, _ = update(t, m, tea.MouseMsg{X: col + 20, Y: 40, Action: tea.MouseActionMotion})
	if pos := m.session.Snapshot().State.Position; pos != 200 {
		t.Errorf("drag off-scene: pos=%v, want 200", pos)
	}

	m, _ = update(t, m, tea.MouseMsg{X: col + 20, Y: 40, Action: tea.MouseActionRelease})
	snap = m.session.Snapshot()
	if snap.State.Dragging || snap.State.Playing {
		t.Errorf("release: dragging=%v playing=%v", snap.State.Dragging, snap.State.Playing)
	}
}

func TestModel_PressOffMagnet(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: sceneTop + 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: sceneTop + 4, Action: tea.MouseActionMotion})
	if snap := m.session.Snapshot(); snap.State.Dragging || snap.State.Position != 0 {
		t.Errorf("press away from magnet grabbed it: %+v", snap.State)
	}
}

func TestModel_TickAdvancesSession(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, TickMsg(m.epoch.Add(100*time.Millisecond)))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.session.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", m.session.Ticks())
	}

	m, _ = update(t, m, TickMsg(m.epoch.Add(100*time.Millisecond)))
	if m.session.Ticks() != 1 || m.session.Skipped() != 1 {
		t.Errorf("repeated timestamp: ticks=%d skipped=%d", m.session.Ticks(), m.session.Skipped())
	}
}

func TestModel_Explain(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, key("e"))
	if cmd == nil || !m.explaining {
		t.Fatal("e should start an explanation")
	}
	if _, again := update(t, m, key("e")); again != nil {
		t.Error("second e while pending should be ignored")
	}

	m, _ = update(t, m, cmd())
	if m.explaining || m.explanation != tutor.FallbackMissingKey {
		t.Errorf("explanation = %q", m.explanation)
	}
	if !strings.Contains(m.View(), "API Key") {
		t.Error("view does not show the tutor answer")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel()
	out := m.View()
	for _, want := range []string{"PAUSED", "position", "turns", "waiting for samples"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLauncher_StartsLab(t *testing.T) {
	l := newLauncher(config.DefaultConfig(), nil, log.New(io.Discard))
	next, _ := l.Update(key("j"))
	next, _ = next.(launcher).Update(tea.KeyMsg{Type: tea.KeyEnter})
	l = next.(launcher)
	if l.state != stateConfig {
		t.Fatalf("state = %d, want config", l.state)
	}

	next, _ = l.Update(key("l"))
	next, cmd := next.(launcher).Update(key("s"))
	l = next.(launcher)
	if l.state != stateLab || cmd == nil {
		t.Fatalf("state = %d, err = %v", l.state, l.err)
	}
	want := config.GetPreset(l.presets[1]).Controls.Turns + 1
	if got := l.lab.session.Snapshot().State.Turns; got != want {
		t.Errorf("turns = %d, want %d", got, want)
	}
}

func TestLauncher_RejectsInvalid(t *testing.T) {
	l := newLauncher(config.DefaultConfig(), nil, log.New(io.Discard))
	next, _ := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 30; i++ {
		next, _ = next.(launcher).Update(key("l"))
	}
	next, _ = next.(launcher).Update(key("s"))
	l = next.(launcher)
	if l.state != stateConfig || l.err == nil {
		t.Errorf("state = %d, err = %v", l.state, l.err)
	}
}

// magnetColumn is the scene column under the magnet centre.
func magnetColumn(m Model) int {
	return m.track().ToScreen(m.session.Snapshot().State.Position)
}

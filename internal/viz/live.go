package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/faraday/internal/control"
	"github.com/san-kum/faraday/internal/induction"
	"github.com/san-kum/faraday/internal/sim"
	"github.com/san-kum/faraday/internal/tutor"
)

const (
	defaultCols = 80
	minCols     = 40
	maxCols     = 120
	sceneTop    = 2
	sceneRows   = 9
	gaugeCols   = 24
	gaugeRows   = 5

	// NudgeStep is how far one arrow key press moves the magnet.
	NudgeStep = 10.0
)

type TickMsg time.Time

type explainMsg string

type Options struct {
	Theme     string
	FPS       int
	ChartRows int
	Logger    *log.Logger
}

// Model is the interactive lab: the magnet and coil, a galvanometer and the
// flux/EMF chart. It drives the session from bubbletea ticks.
type Model struct {
	session *sim.Session
	tutor   *tutor.Tutor
	travel  control.Travel
	logger  *log.Logger

	epoch     time.Time
	fps       int
	chartRows int
	cols      int

	theme  Theme
	styles Styles

	grabbing   bool
	grabOffset float64

	explaining  bool
	explanation string
	showHelp    bool
}

// NewModel starts the session clock at construction time.
func NewModel(s *sim.Session, tu *tutor.Tutor, travel control.Travel, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.ChartRows < 2 {
		opts.ChartRows = 6
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	theme := GetTheme(opts.Theme)
	s.Start(0)
	return Model{
		session:   s,
		tutor:     tu,
		travel:    travel,
		logger:    opts.Logger,
		epoch:     time.Now(),
		fps:       opts.FPS,
		chartRows: opts.ChartRows,
		cols:      defaultCols,
		theme:     theme,
		styles:    NewStyles(theme),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.cols = max(minCols, min(maxCols, msg.Width-2))
	case TickMsg:
		m.session.Tick(sim.Millis(time.Time(msg).Sub(m.epoch)))
		return m, m.tick()
	case explainMsg:
		m.explaining = false
		m.explanation = string(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.session.TogglePlay()
	case "left", "h":
		m.session.Nudge(-NudgeStep)
	case "right", "l":
		m.session.Nudge(NudgeStep)
	case "+", "=":
		m.session.SetTurns(m.session.Snapshot().State.Turns + 1)
	case "-", "_":
		m.session.SetTurns(m.session.Snapshot().State.Turns - 1)
	case "]":
		m.session.SetSpeed(m.session.Snapshot().Speed + control.SpeedStep)
	case "[":
		m.session.SetSpeed(m.session.Snapshot().Speed - control.SpeedStep)
	case "r":
		m.grabbing = false
		m.session.Reset()
	case "t":
		m.theme = NextTheme(m.theme)
		m.styles = NewStyles(m.theme)
		m.logger.Debug("theme", "name", m.theme.Name)
	case "e":
		if !m.explaining {
			m.explaining = true
			return m, m.explain()
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) track() control.Track {
	return control.Track{Columns: m.cols, Viewport: m.travel.Viewport}
}

// handleMouse grabs the magnet on a left press over the scene. Once
// grabbed, motion anywhere on screen keeps dragging until release.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y < sceneTop || msg.Y >= sceneTop+sceneRows {
			return
		}
		x := m.session.Snapshot().State.Position
		offset, ok := m.track().Grab(msg.X, x)
		if !ok {
			return
		}
		m.grabbing, m.grabOffset = true, offset
		m.session.BeginDrag(x)
	case tea.MouseActionMotion:
		if m.grabbing {
			m.session.DragTo(m.track().Drag(msg.X, m.grabOffset))
		}
	case tea.MouseActionRelease:
		if m.grabbing {
			m.grabbing = false
			m.session.EndDrag()
		}
	}
}

// explain asks the tutor about the current moment. The request is built
// now; the answer arrives as a message while ticks keep running.
func (m Model) explain() tea.Cmd {
	st := m.session.Snapshot().State
	req := tutor.Request{EMF: st.EMF, Flux: st.Flux, Velocity: st.Velocity, Turns: st.Turns}
	tu, logger := m.tutor, m.logger
	return func() tea.Msg {
		if tu == nil {
			return explainMsg(tutor.FallbackMissingKey)
		}
		logger.Debug("explain", "emf", req.EMF, "flux", req.Flux)
		return explainMsg(tu.Explain(context.Background(), req))
	}
}

func (m Model) View() string {
	snap := m.session.Snapshot()
	st := snap.State
	s := m.styles

	var b strings.Builder
	b.WriteString(GradientText("FARADAY'S LAW", m.theme.Primary, m.theme.Accent) + "  " + m.status(st.Dragging, st.Playing) + "\n\n")
	b.WriteString(RenderScene(st, m.travel, m.cols, sceneRows, s) + "\n\n")

	gauge := s.Panel.Render(RenderGauge(st.EMFDisplay, gaugeCols, gaugeRows, s))

	fluxMax := m.session.Params().FluxScale
	row := func(label, value string) string { return s.Label.Render(label) + s.Value.Render(value) + "\n" }
	var r strings.Builder
	r.WriteString(row("position", fmt.Sprintf("%7.1f", st.Position)))
	r.WriteString(row("velocity", fmt.Sprintf("%7.1f u/s", st.Velocity)))
	r.WriteString(row("flux", fmt.Sprintf("%7.2f Wb", st.Flux)))
	r.WriteString(s.Label.Render("") + s.Flux.Render(Meter(st.Flux, fluxMax, 16)) + "\n")
	r.WriteString(row("emf", fmt.Sprintf("%7.2f V", st.EMF)))
	r.WriteString(row("turns", fmt.Sprintf("%7d", st.Turns)))
	r.WriteString(row("speed", fmt.Sprintf("%7.1fx", snap.Speed)))
	readouts := s.Panel.Render(strings.TrimSuffix(r.String(), "\n"))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, gauge, " ", readouts) + "\n\n")
	b.WriteString(RenderChart(snap.History, max(10, m.cols-12), m.chartRows) + "\n")

	switch {
	case m.explaining:
		b.WriteString(s.Tutor.Render("asking the tutor...") + "\n")
	case m.explanation != "":
		b.WriteString(s.Tutor.Width(m.cols).Render(m.explanation) + "\n")
	}

	if m.showHelp {
		b.WriteString("\n" + m.help())
	} else {
		b.WriteString("\n" + s.Hint.Render("drag magnet  ←/→ nudge  space play  ? help  q quit"))
	}
	return b.String()
}

func (m Model) status(dragging, playing bool) string {
	switch {
	case dragging:
		return m.styles.Value.Render("DRAGGING")
	case playing:
		return m.styles.Playing.Render("PLAYING")
	}
	return m.styles.Paused.Render("PAUSED")
}

func (m Model) help() string {
	keys := [][2]string{
		{"drag", "move the magnet"},
		{"←/→", "nudge the magnet"},
		{"space", "auto-play on/off"},
		{"+/-", fmt.Sprintf("coil turns (%d-%d)", induction.MinTurns, induction.MaxTurns)},
		{"]/[", fmt.Sprintf("oscillation speed (%.1f-%.1f)", control.MinSpeed, control.MaxSpeed)},
		{"r", "reset"},
		{"e", "explain this moment"},
		{"t", "cycle theme"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(m.styles.Key.Render(fmt.Sprintf("%-6s", k[0])) + " " + m.styles.Hint.Render(k[1]) + "\n")
	}
	return b.String()
}

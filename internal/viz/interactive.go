package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/faraday/internal/config"
	"github.com/san-kum/faraday/internal/tutor"
)

const (
	stateMenu = iota
	stateConfig
	stateLab
)

type setting struct {
	name string
	step float64
	get  func(*config.Config) float64
	set  func(*config.Config, float64)
}

var settings = []setting{
	{"turns", 1,
		func(c *config.Config) float64 { return float64(c.Controls.Turns) },
		func(c *config.Config, v float64) { c.Controls.Turns = int(v) }},
	{"speed", 0.5,
		func(c *config.Config) float64 { return c.Controls.Speed },
		func(c *config.Config, v float64) { c.Controls.Speed = v }},
	{"amplitude", 10,
		func(c *config.Config) float64 { return c.Controls.Amplitude },
		func(c *config.Config, v float64) { c.Controls.Amplitude = v }},
	{"fps", 10,
		func(c *config.Config) float64 { return float64(c.Controls.FPS) },
		func(c *config.Config, v float64) { c.Controls.FPS = int(v) }},
	{"sample every", 1,
		func(c *config.Config) float64 { return float64(c.Physics.SampleEvery) },
		func(c *config.Config, v float64) { c.Physics.SampleEvery = int(v) }},
}

// launcher picks a preset, lets the user adjust it, then hands over to the
// lab.
type launcher struct {
	state, cursor int
	presets       []string
	base          *config.Config
	cfg           *config.Config
	setCursor     int
	playing       bool
	tutor         *tutor.Tutor
	logger        *log.Logger
	lab           Model
	width         int
	err           error
	styles        Styles
}

func newLauncher(base *config.Config, tu *tutor.Tutor, logger *log.Logger) launcher {
	if logger == nil {
		logger = log.Default()
	}
	return launcher{
		state:   stateMenu,
		presets: append([]string{"current"}, config.ListPresets()...),
		base:    base,
		tutor:   tu,
		logger:  logger,
		styles:  NewStyles(GetTheme(base.Display.Theme)),
	}
}

func (l launcher) Init() tea.Cmd { return nil }

func (l launcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if l.state == stateLab {
		next, cmd := l.lab.Update(msg)
		l.lab = next.(Model)
		return l, cmd
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch l.state {
		case stateMenu:
			return l.menuKey(msg)
		case stateConfig:
			return l.configKey(msg)
		}
	case tea.WindowSizeMsg:
		l.width = msg.Width
	}
	return l, nil
}

func (l launcher) menuKey(msg tea.KeyMsg) (launcher, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return l, tea.Quit
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.presets)-1 {
			l.cursor++
		}
	case "enter", " ":
		l.cfg = l.selected()
		l.state, l.setCursor, l.err = stateConfig, 0, nil
	}
	return l, nil
}

func (l launcher) selected() *config.Config {
	name := l.presets[l.cursor]
	cfg := *l.base
	if p, ok := config.Presets[name]; ok {
		p.Apply(&cfg)
	}
	return &cfg
}

func (l launcher) configKey(msg tea.KeyMsg) (launcher, tea.Cmd) {
	s := settings[l.setCursor]
	switch msg.String() {
	case "ctrl+c":
		return l, tea.Quit
	case "q", "esc":
		l.state = stateMenu
	case "up", "k":
		if l.setCursor > 0 {
			l.setCursor--
		}
	case "down", "j":
		if l.setCursor < len(settings)-1 {
			l.setCursor++
		}
	case "left", "h":
		s.set(l.cfg, s.get(l.cfg)-s.step)
	case "right", "l":
		s.set(l.cfg, s.get(l.cfg)+s.step)
	case "p":
		l.cfg.Controls.Playing = !l.cfg.Controls.Playing
	case "enter", "s":
		return l.start()
	}
	return l, nil
}

func (l launcher) start() (launcher, tea.Cmd) {
	if err := l.cfg.Validate(); err != nil {
		l.err = err
		return l, nil
	}
	l.logger.Info("starting lab", "preset", l.presets[l.cursor], "turns", l.cfg.Controls.Turns, "speed", l.cfg.Controls.Speed)
	l.lab = NewModel(l.cfg.NewSession(), l.tutor, l.cfg.Travel(), Options{
		Theme:     l.cfg.Display.Theme,
		FPS:       l.cfg.Controls.FPS,
		ChartRows: l.cfg.Display.ChartRows,
		Logger:    l.logger,
	})
	if l.width > 0 {
		next, _ := l.lab.Update(tea.WindowSizeMsg{Width: l.width})
		l.lab = next.(Model)
	}
	l.state = stateLab
	return l, l.lab.Init()
}

func (l launcher) View() string {
	switch l.state {
	case stateMenu:
		return l.viewMenu()
	case stateConfig:
		return l.viewConfig()
	}
	return l.lab.View()
}

func (l launcher) viewMenu() string {
	s := l.styles
	var b strings.Builder
	b.WriteString("\n  " + s.Title.Render("FARADAY") + "\n  " + s.Hint.Render("electromagnetic induction lab") + "\n\n")
	for i, name := range l.presets {
		desc := "settings from config"
		if p, ok := config.Presets[name]; ok {
			desc = p.Description
		}
		cursor := "  "
		if i == l.cursor {
			cursor = s.Key.Render("▸ ")
			b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, s.Value.Render(fmt.Sprintf("%-10s", name)), s.Hint.Render(desc)))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, s.Hint.Render(fmt.Sprintf("%-10s", name)), s.Hint.Render(desc)))
	}
	b.WriteString("\n  " + s.Key.Render("j/k") + s.Hint.Render(" navigate  ") + s.Key.Render("enter") + s.Hint.Render(" select  ") + s.Key.Render("q") + s.Hint.Render(" quit") + "\n")
	return b.String()
}

func (l launcher) viewConfig() string {
	s := l.styles
	var b strings.Builder
	b.WriteString("\n  " + s.Title.Render(strings.ToUpper(l.presets[l.cursor])) + "\n\n")
	for i, st := range settings {
		line := fmt.Sprintf("%-12s %8.1f", st.name, st.get(l.cfg))
		if i == l.setCursor {
			b.WriteString("  " + s.Key.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("    " + s.Hint.Render(line) + "\n")
		}
	}
	play := "paused"
	if l.cfg.Controls.Playing {
		play = "auto-play"
	}
	b.WriteString("\n    " + s.Label.Render("start") + s.Value.Render(play) + "\n")
	if l.err != nil {
		b.WriteString("\n  " + s.Paused.Render(l.err.Error()) + "\n")
	}
	b.WriteString("\n  " + s.Key.Render("h/l") + s.Hint.Render(" adjust  ") + s.Key.Render("p") + s.Hint.Render(" play  ") + s.Key.Render("s") + s.Hint.Render(" start  ") + s.Key.Render("esc") + s.Hint.Render(" back") + "\n")
	return b.String()
}

func run(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// RunInteractive opens the preset launcher.
func RunInteractive(cfg *config.Config, tu *tutor.Tutor, logger *log.Logger) error {
	return run(newLauncher(cfg, tu, logger))
}

// RunLab opens the lab directly with cfg.
func RunLab(cfg *config.Config, tu *tutor.Tutor, logger *log.Logger) error {
	return run(NewModel(cfg.NewSession(), tu, cfg.Travel(), Options{
		Theme:     cfg.Display.Theme,
		FPS:       cfg.Controls.FPS,
		ChartRows: cfg.Display.ChartRows,
		Logger:    logger,
	}))
}

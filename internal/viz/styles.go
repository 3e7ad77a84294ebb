package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Title   lipgloss.Style
	Panel   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Key     lipgloss.Style
	Hint    lipgloss.Style
	North   lipgloss.Style
	South   lipgloss.Style
	MagnetN lipgloss.Style
	MagnetS lipgloss.Style
	Coil    lipgloss.Style
	Flux    lipgloss.Style
	EMF     lipgloss.Style
	Playing lipgloss.Style
	Paused  lipgloss.Style
	Tutor   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Label:   lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		Value:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Key:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted),
		North:   lipgloss.NewStyle().Foreground(t.North),
		South:   lipgloss.NewStyle().Foreground(t.South),
		MagnetN: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(t.North),
		MagnetS: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(t.South),
		Coil:    lipgloss.NewStyle().Foreground(t.Coil),
		Flux:    lipgloss.NewStyle().Foreground(t.Flux),
		EMF:     lipgloss.NewStyle().Foreground(t.EMF),
		Playing: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Tutor: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(t.Muted).
			Foreground(t.Text).
			Italic(true),
	}
}

// GradientText colours each rune of text along a linear ramp.
func GradientText(text string, from, to lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	fr, fg, fb := parseHex(string(from))
	tr, tg, tb := parseHex(string(to))

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := hexColor(lerp(fr, tr, t), lerp(fg, tg, t), lerp(fb, tb, t))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return b.String()
}

// Meter is a horizontal bar of width cells filled to value/full.
func Meter(value, full float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if full > 0 {
		filled = int(value / full * float64(width))
	}
	filled = min(width, filled)
	filled = max0(filled)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func lerp(a, b int, t float64) int { return a + int(t*float64(b-a)) }

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func hexColor(r, g, b int) string {
	clamp := func(v int) int { return min(255, max0(v)) }
	return "#" + strconv.FormatInt(int64(0x1000000|clamp(r)<<16|clamp(g)<<8|clamp(b)), 16)[1:]
}

package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the lab.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	North   lipgloss.Color
	South   lipgloss.Color
	Coil    lipgloss.Color
	Flux    lipgloss.Color
	EMF     lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeLab = Theme{
		Name:    "lab",
		Primary: lipgloss.Color("#38bdf8"),
		Accent:  lipgloss.Color("#facc15"),
		Text:    lipgloss.Color("#e2e8f0"),
		Muted:   lipgloss.Color("#64748b"),
		North:   lipgloss.Color("#ef4444"),
		South:   lipgloss.Color("#3b82f6"),
		Coil:    lipgloss.Color("#d97706"),
		Flux:    lipgloss.Color("#3b82f6"),
		EMF:     lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f97316"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		North:   lipgloss.Color("#88ff88"),
		South:   lipgloss.Color("#00aa00"),
		Coil:    lipgloss.Color("#00cc00"),
		Flux:    lipgloss.Color("#00cc00"),
		EMF:     lipgloss.Color("#ffff00"),
		Warning: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		North:   lipgloss.Color("#ffffff"),
		South:   lipgloss.Color("#888888"),
		Coil:    lipgloss.Color("#cccccc"),
		Flux:    lipgloss.Color("#cccccc"),
		EMF:     lipgloss.Color("#0088ff"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"),
		Accent:  lipgloss.Color("#feca57"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		North:   lipgloss.Color("#ff4757"),
		South:   lipgloss.Color("#5f27cd"),
		Coil:    lipgloss.Color("#ffc048"),
		Flux:    lipgloss.Color("#48dbfb"),
		EMF:     lipgloss.Color("#ff9ff3"),
		Warning: lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{ThemeLab, ThemeRetro, ThemeMinimal, ThemeSunset}
)

// GetTheme returns the named theme, falling back to the lab theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLab
}

// NextTheme cycles through Themes.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

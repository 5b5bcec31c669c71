package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome palette around the canvas. Scene geometry carries
// its own generated colors; the theme only covers text, borders, and the
// fallback ink for unpainted dots.
type Theme struct {
	Name    string
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Overlay lipgloss.Color
	Default Ink
}

var (
	ThemeNebula = Theme{
		Name:    "nebula",
		Accent:  lipgloss.Color("#b388ff"),
		Text:    lipgloss.Color("#ece7ff"),
		Muted:   lipgloss.Color("#6f6a8a"),
		Border:  lipgloss.Color("#3a3360"),
		Overlay: lipgloss.Color("#ffd166"),
		Default: Ink{0.55, 0.5, 0.85},
	}

	ThemeChalk = Theme{
		Name:    "chalk",
		Accent:  lipgloss.Color("#8ecae6"),
		Text:    lipgloss.Color("#f1faee"),
		Muted:   lipgloss.Color("#5c6b73"),
		Border:  lipgloss.Color("#33424a"),
		Overlay: lipgloss.Color("#ffb703"),
		Default: Ink{0.8, 0.85, 0.82},
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Accent:  lipgloss.Color("#00ff88"),
		Text:    lipgloss.Color("#ccffcc"),
		Muted:   lipgloss.Color("#2f7f4f"),
		Border:  lipgloss.Color("#174a2c"),
		Overlay: lipgloss.Color("#aaffaa"),
		Default: Ink{0.1, 0.9, 0.45},
	}

	ThemeEmber = Theme{
		Name:    "ember",
		Accent:  lipgloss.Color("#ff7b54"),
		Text:    lipgloss.Color("#ffe8d6"),
		Muted:   lipgloss.Color("#8a5a44"),
		Border:  lipgloss.Color("#57312a"),
		Overlay: lipgloss.Color("#ffd166"),
		Default: Ink{0.95, 0.55, 0.3},
	}

	Themes = []Theme{ThemeNebula, ThemeChalk, ThemePhosphor, ThemeEmber}

	CurrentTheme = ThemeNebula
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNebula
}

// SetTheme changes the active theme.
func SetTheme(name string) { CurrentTheme = GetTheme(name) }

// NextTheme cycles to the theme after the active one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

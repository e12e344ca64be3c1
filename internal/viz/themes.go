package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the contour canvas and the side panel.
type Theme struct {
	Name    string
	Contour lipgloss.Color
	Accent  lipgloss.Color
	Graph   lipgloss.Color
	Muted   lipgloss.Color
}

var Themes = []Theme{
	{
		Name:    "phosphor",
		Contour: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Graph:   lipgloss.Color("#00cc00"),
		Muted:   lipgloss.Color("#005500"),
	},
	{
		Name:    "ink",
		Contour: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Graph:   lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#888888"),
	},
	{
		Name:    "ocean",
		Contour: lipgloss.Color("#00a8cc"),
		Accent:  lipgloss.Color("#ffd700"),
		Graph:   lipgloss.Color("#0077be"),
		Muted:   lipgloss.Color("#4488aa"),
	},
	{
		Name:    "sunset",
		Contour: lipgloss.Color("#feca57"),
		Accent:  lipgloss.Color("#ff9ff3"),
		Graph:   lipgloss.Color("#ff6b6b"),
		Muted:   lipgloss.Color("#8b6b8c"),
	},
}

// ThemeIndex returns the position of the named theme, or 0 when unknown.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) canvas() lipgloss.Style {
	return canvasStyle.Foreground(t.Contour)
}

func (t Theme) active() lipgloss.Style {
	return activeStyle.Foreground(t.Accent)
}

func (t Theme) graph() lipgloss.Style {
	return graphStyle.Foreground(t.Graph)
}

func (t Theme) help() lipgloss.Style {
	return helpStyle.Foreground(t.Muted)
}

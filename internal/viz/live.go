package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/equipot/internal/config"
	"github.com/san-kum/equipot/internal/levels"
	"github.com/san-kum/equipot/internal/profile"
	"github.com/san-kum/equipot/internal/renderer"
)

const (
	width  = 64
	height = 28
)

var params = []string{"m1", "m2", "d", "g"}

// Model is the terminal equipotential explorer. Every parameter change
// recomputes the field and redraws the contours.
type Model struct {
	cfg      config.Config
	initial  config.Config
	canvas   *Canvas
	result   *renderer.Result
	err      error
	selected int
	theme    int
	showHelp bool
}

// NewModel builds the explorer for cfg and draws the first frame.
func NewModel(cfg *config.Config, theme string) Model {
	m := Model{
		cfg:     *cfg,
		initial: *cfg,
		canvas:  NewCanvas(width, height),
		theme:   ThemeIndex(theme),
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key input; there is no animation, so no ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.selected = (m.selected + 1) % len(params)
	case "shift+tab":
		m.selected = (m.selected + len(params) - 1) % len(params)
	case "up", "k":
		m.scale(1.1)
	case "down", "j":
		m.scale(1 / 1.1)
	case "n":
		m.cfg.Negate = !m.cfg.Negate
		m.recompute()
	case "l":
		m.cycleStrategy()
		m.recompute()
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
	case "r":
		m.cfg = m.initial
		m.recompute()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) param(name string) *float64 {
	switch name {
	case "m1":
		return &m.cfg.M1
	case "m2":
		return &m.cfg.M2
	case "d":
		return &m.cfg.Distance
	default:
		return &m.cfg.G
	}
}

func (m *Model) scale(factor float64) {
	p := m.param(params[m.selected])
	*p *= factor
	m.recompute()
}

func (m *Model) cycleStrategy() {
	names := levels.Names()
	for i, name := range names {
		if name == m.cfg.Levels.Strategy {
			m.cfg.Levels.Strategy = names[(i+1)%len(names)]
			return
		}
	}
	m.cfg.Levels.Strategy = names[0]
}

// recompute samples the field; a failure keeps the last good frame and
// shows the error instead.
func (m *Model) recompute() {
	res, err := renderer.Compute(&m.cfg)
	m.err = err
	if err != nil {
		return
	}
	m.result = res
	DrawContours(m.canvas, res.Field, res.Levels)

	x1, x2 := res.System.Positions()
	for _, x := range []float64{x1, x2} {
		px, py := m.canvas.Project(x, 0)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				m.canvas.Set(px+dx, py+dy)
			}
		}
	}
}

func (m Model) View() string {
	theme := Themes[m.theme]
	var s strings.Builder
	s.WriteString(headerStyle.Render("EQUIPOTENTIAL") + "\n")

	for i, name := range params {
		line := fmt.Sprintf("%-4s %.4g", name, *m.param(name))
		if i == m.selected {
			s.WriteString(theme.active().Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	s.WriteString("\n")

	if m.result != nil {
		sys := m.result.System
		x1, x2 := sys.Positions()
		l1, phiL1 := sys.L1()
		s.WriteString(labelStyle.Render("q") + valueStyle.Render(fmt.Sprintf("%.4f", sys.MassFraction())) + "\n")
		s.WriteString(labelStyle.Render("x1, x2") + valueStyle.Render(fmt.Sprintf("%.4g, %.4g", x1, x2)) + "\n")
		s.WriteString(labelStyle.Render("L1") + valueStyle.Render(fmt.Sprintf("%.4g (Φ %.4g)", l1, phiL1)) + "\n")
		s.WriteString(labelStyle.Render("levels") + valueStyle.Render(fmt.Sprintf("%d %s", len(m.result.Levels), m.cfg.Levels.Strategy)) + "\n")
		s.WriteString(labelStyle.Render("negated") + valueStyle.Render(fmt.Sprintf("%v", m.cfg.Negate)) + "\n")

		p := profile.Along(sys, 40, m.cfg.Grid.Extent, m.cfg.Negate)
		s.WriteString(theme.graph().Render(p.ASCII(profile.Limit(sys), 36, 6, "Φ(x, 0)")) + "\n")
	}

	if m.err != nil {
		s.WriteString(Errorf("%v", m.err) + "\n")
	}

	if m.showHelp {
		s.WriteString(theme.help().Render("TAB:Param ↑↓:Scale N:Negate\nL:Levels T:Theme R:Reset Q:Quit"))
	} else {
		s.WriteString(theme.help().Render("?:Help Q:Quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		theme.canvas().Render(m.canvas.String()),
		panelStyle.Render(s.String()),
	)
}

// Run starts the explorer on the alternate screen.
func Run(cfg *config.Config, theme string) error {
	_, err := tea.NewProgram(NewModel(cfg, theme), tea.WithAltScreen()).Run()
	return err
}

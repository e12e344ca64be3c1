package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().
			Padding(1, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(48)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	graphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("49")).
			Padding(1, 0)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

// Row is one labelled value of a summary table.
type Row struct {
	Label string
	Value string
}

// Summary renders a titled block of label/value rows.
func Summary(title string, rows []Row) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title) + "\n")
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.Label) + valueStyle.Render(r.Value) + "\n")
	}
	return b.String()
}

// Errorf renders an error line.
func Errorf(format string, args ...any) string {
	return errorStyle.Render(fmt.Sprintf(format, args...))
}

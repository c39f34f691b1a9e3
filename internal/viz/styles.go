package viz

import (
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	canvas  lipgloss.Style
	panel   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	active  lipgloss.Style
	graph   lipgloss.Style
	help    lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	idle    lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	overlay lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Heading).
			MarginBottom(1),
		canvas: lipgloss.NewStyle().
			Foreground(t.Surface).
			Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Waterline).
			Padding(1, 2).
			Width(panelWidth),
		label:   lipgloss.NewStyle().Foreground(t.Dim).Width(12),
		value:   lipgloss.NewStyle().Foreground(t.Readout),
		active:  lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		graph:   lipgloss.NewStyle().Foreground(t.Surface).Padding(1, 0),
		help:    lipgloss.NewStyle().Foreground(t.Dim).Italic(true).MarginTop(1),
		running: lipgloss.NewStyle().Bold(true).Foreground(t.Calm),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Caution),
		idle:    lipgloss.NewStyle().Bold(true).Foreground(t.Dim),
		warning: lipgloss.NewStyle().Foreground(t.Caution),
		err:     lipgloss.NewStyle().Foreground(t.Alarm).Bold(true),
		overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Heading).
			Padding(0, 2),
	}
}

package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const spanWidth = 26

// styles renders CLI output. Colors are dropped when out is not a terminal.
type styles struct {
	title   lipgloss.Style
	span    lipgloss.Style
	handler lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(out io.Writer) styles {
	renderer := lipgloss.NewRenderer(out)

	return styles{
		title:   renderer.NewStyle().Bold(true),
		span:    renderer.NewStyle().Width(spanWidth),
		handler: renderer.NewStyle().Foreground(lipgloss.Color("12")),
		faint:   renderer.NewStyle().Faint(true),
	}
}

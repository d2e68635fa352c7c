package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	rule    lipgloss.Style
	step    lipgloss.Style
	detail  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	command lipgloss.Style
	spinner lipgloss.Style
}

func newStyles(renderer *lipgloss.Renderer) styles {
	return styles{
		title:   renderer.NewStyle().Bold(true),
		rule:    renderer.NewStyle().Foreground(lipgloss.Color("241")),
		step:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  renderer.NewStyle().Foreground(lipgloss.Color("252")),
		success: renderer.NewStyle().Foreground(lipgloss.Color("114")),
		warning: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		failure: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		command: renderer.NewStyle().Foreground(lipgloss.Color("159")),
		spinner: renderer.NewStyle().Foreground(lipgloss.Color("69")),
	}
}

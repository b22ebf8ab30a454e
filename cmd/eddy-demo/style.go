package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Field  lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
}

func defaultStyles(accent string) styles {
	ac := lipgloss.Color(accent)
	return styles{
		Field:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ac).Padding(0, 1),
		Cursor: lipgloss.NewStyle().Foreground(ac),
		Status: lipgloss.NewStyle().Faint(true),
		Help:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(ac).Padding(1, 2),
	}
}

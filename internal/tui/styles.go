// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F44336"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true)
	unreadStyle      = lipgloss.NewStyle().Bold(true)
	starStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
)

// swatch renders a colored block for an item's accent color.
func swatch(color string) string {
	if color == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(colorOf(color)).Render("■")
}

func colorOf(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

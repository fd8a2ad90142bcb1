// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	page  string
}

// MenuModel lists the screens of the main loop.
type MenuModel struct {
	session *sessionState
	items   []menuItem
	idx     int
}

func NewMenuModel(session *sessionState) *MenuModel {
	return &MenuModel{
		session: session,
		items: []menuItem{
			{title: "Home", page: pageHome},
			{title: "Archive", page: pageArchive},
			{title: "Notifications", page: pageNotifications},
			{title: "Settings", page: pageSettings},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case "down", "j":
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case "enter":
		page := m.items[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("#")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	screenColWidth := lipgloss.Width("Screen")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > screenColWidth {
			screenColWidth = w
		}
	}

	b.WriteString("Hello, ")
	b.WriteString(m.session.user().DisplayName())
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", screenColWidth, "Screen"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", screenColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, screenColWidth, item.title))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ 1-4: jump │ v: version")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var notificationIcons = map[string]string{
	"star":  "★",
	"info":  "ℹ",
	"error": "!",
}

type NotificationsModel struct {
	ctx      context.Context
	services *service.ClientServices

	items        []models.NotificationItem
	idx          int
	loading      bool
	confirmClear bool
	errMsg       string

	now func() time.Time
}

func NewNotificationsModel(ctx context.Context, services *service.ClientServices) *NotificationsModel {
	return &NotificationsModel{
		ctx:      ctx,
		services: services,
		now:      time.Now,
	}
}

func (m *NotificationsModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *NotificationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case notificationChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmClear {
		switch keyMsg.String() {
		case "y":
			m.confirmClear = false
			return m, m.cmdClear()
		case "n", "esc":
			m.confirmClear = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case "down", "j":
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case "enter":
		if len(m.items) == 0 || m.items[m.idx].IsRead {
			return m, nil
		}
		return m, m.cmdMarkAsRead(m.items[m.idx].ID)
	case "r":
		m.loading = true
		return m, m.cmdLoad()
	case "x":
		if len(m.items) > 0 {
			m.confirmClear = true
		}
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}

	return m, nil
}

func (m *NotificationsModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Unread: %d\n\n", m.unread()))

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No notifications\n")
	default:
		now := m.now()
		for i, n := range m.items {
			title := fitText(n.Title, titleColumnWidth)
			if !n.IsRead {
				title = unreadStyle.Render(title)
			}
			b.WriteString(fmt.Sprintf("%s%s %s %s\n",
				cursorMark(i == m.idx),
				readMark(n.IsRead),
				notificationIcon(n),
				title,
			))
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				helpStyle.Render(n.Detail),
				helpStyle.Render(humanize.RelTime(n.Time, now, "ago", "from now")),
			))
		}
	}

	if m.confirmClear {
		b.WriteString("\n")
		b.WriteString(confirmModel{question: "Delete all notifications?"}.View())
		b.WriteString("\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("NOTIFICATIONS", strings.TrimRight(b.String(), "\n"), "enter: mark as read │ r: refresh │ x: clear all │ esc: menu")
}

func (m *NotificationsModel) capturingInput() bool {
	return m.confirmClear
}

func (m *NotificationsModel) unread() int {
	count := 0
	for _, n := range m.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func readMark(read bool) string {
	if read {
		return " "
	}
	return unreadStyle.Render("●")
}

func notificationIcon(n models.NotificationItem) string {
	icon, ok := notificationIcons[n.IconName]
	if !ok {
		icon = "•"
	}
	if n.IconColor == "" {
		return icon
	}
	return lipgloss.NewStyle().Foreground(colorOf(n.IconColor)).Render(icon)
}

func (m *NotificationsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotificationService
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return notificationsLoadedMsg{items: items, err: err}
	}
}

func (m *NotificationsModel) cmdMarkAsRead(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotificationService
	return func() tea.Msg {
		return notificationChangedMsg{err: svc.MarkAsRead(ctx, id)}
	}
}

func (m *NotificationsModel) cmdClear() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotificationService
	return func() tea.Msg {
		return notificationChangedMsg{err: svc.Clear(ctx)}
	}
}

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
	"github.com/dustin/go-humanize"
)

// HomeModel greets the user and lists recently viewed documents. Selecting
// an entry reopens its file.
type HomeModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  *sessionState

	items        []models.HistoryItem
	idx          int
	loading      bool
	confirmClear bool
	status       string
	errMsg       string

	now func() time.Time
}

func NewHomeModel(ctx context.Context, services *service.ClientServices, session *sessionState) *HomeModel {
	return &HomeModel{
		ctx:      ctx,
		services: services,
		session:  session,
		now:      time.Now,
	}
}

func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoadHistory()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case reopenDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Opened"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmClear {
		switch keyMsg.String() {
		case "y":
			m.confirmClear = false
			m.loading = true
			return m, m.cmdClearHistory()
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
	case "r":
		m.loading = true
		return m, m.cmdLoadHistory()
	case "x":
		if len(m.items) > 0 {
			m.confirmClear = true
		}
	case "enter":
		if len(m.items) == 0 {
			return m, nil
		}
		return m, m.cmdReopen(m.items[m.idx])
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString("Welcome back, ")
	b.WriteString(m.session.user().DisplayName())
	b.WriteString("\n\nRecently viewed\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("Nothing opened yet. Open a document from the Archive.\n")
	default:
		now := m.now()
		for i, item := range m.items {
			b.WriteString(fmt.Sprintf("%s%s %-*s %s\n",
				cursorMark(i == m.idx),
				swatch(item.Color),
				titleColumnWidth, fitText(item.Title, titleColumnWidth),
				helpStyle.Render(humanize.RelTime(item.Time, now, "ago", "from now")),
			))
		}
	}

	if m.confirmClear {
		b.WriteString("\n")
		b.WriteString(confirmModel{question: "Clear the viewing history?"}.View())
		b.WriteString("\n")
	}
	renderMessages(&b, m.status, m.errMsg)

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "enter: open │ r: refresh │ x: clear history │ 1-4: screens │ esc: menu")
}

func (m *HomeModel) capturingInput() bool {
	return m.confirmClear
}

func (m *HomeModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m *HomeModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		if err := svc.Clear(ctx); err != nil {
			return historyLoadedMsg{err: err}
		}
		items, err := svc.List(ctx)
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m *HomeModel) cmdReopen(item models.HistoryItem) tea.Cmd {
	ctx := m.ctx
	svc := m.services.OpenService
	return func() tea.Msg {
		return reopenDoneMsg{err: svc.Reopen(ctx, item)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

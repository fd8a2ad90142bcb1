// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type archiveMode int

const (
	archiveBrowse archiveMode = iota
	archiveSearch
	archiveOpenPrompt
	archiveConfirmDelete
	archiveRating
)

// clipboardWriter is swapped in tests.
var clipboardWriter = clipboard.WriteAll

// ArchiveModel is the Archive screen: two tabs, a search field, and the
// download, open, rate, copy and delete actions on the selected item.
type ArchiveModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  *sessionState
	view     *service.ArchiveView

	idx         int
	mode        archiveMode
	search      textinput.Model
	spinner     spinner.Model
	loading     bool
	downloading bool
	pending     models.Activation
	rating      ratingDialog
	status      string
	errMsg      string
}

func NewArchiveModel(ctx context.Context, services *service.ClientServices, session *sessionState) *ArchiveModel {
	search := textinput.New()
	search.Placeholder = "search by title"
	search.CharLimit = 100
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ArchiveModel{
		ctx:      ctx,
		services: services,
		session:  session,
		view:     service.NewArchiveView(services.ArchiveService, session.userID()),
		search:   search,
		spinner:  s,
	}
}

// Init rebuilds the active tab every time the screen gains focus. The last
// list stays on screen until the new one arrives.
func (m *ArchiveModel) Init() tea.Cmd {
	m.view.SetUserID(m.session.userID())
	m.downloading = m.services.OpenService.Downloading()
	return m.startLoading(m.view.ActiveTab())
}

func (m *ArchiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading && !m.downloading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case archiveLoadedMsg:
		m.view.Apply(msg.tab, msg.items, msg.err)
		if msg.tab == m.view.ActiveTab() {
			m.loading = false
			m.errMsg = humanizeError(msg.err)
			m.idx = moveCursor(m.idx, 0, len(m.view.Visible()))
		}
		return m, nil
	case activateDoneMsg:
		return m.handleActivation(msg)
	case openDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Opened"
		return m, cmdClearStatus()
	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Removed from device"
		return m, tea.Batch(m.startLoading(m.view.ActiveTab()), cmdClearStatus())
	case rateableMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.rating = newRatingDialog(msg.item)
		m.mode = archiveRating
		return m, nil
	case ratingDoneMsg:
		m.rating.submitting = false
		if msg.err != nil {
			m.rating.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = archiveBrowse
		m.status = "Thank you for rating!"
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Path copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == archiveSearch {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.mode {
	case archiveSearch:
		return m.updateSearch(keyMsg)
	case archiveOpenPrompt:
		return m.updateOpenPrompt(keyMsg)
	case archiveConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case archiveRating:
		return m.updateRating(keyMsg)
	}
	return m.updateBrowse(keyMsg)
}

func (m *ArchiveModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.view.Visible()

	switch {
	case key.Matches(msg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(visible))
	case key.Matches(msg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(visible))
	case key.Matches(msg, keys.tab):
		next := m.view.ActiveTab().Other()
		m.view.SwitchTab(next)
		m.search.SetValue("")
		m.idx = 0
		m.errMsg = humanizeError(m.view.Err(next))
		return m, m.startLoading(next)
	case key.Matches(msg, keys.search):
		m.mode = archiveSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.refresh):
		return m, m.startLoading(m.view.ActiveTab())
	case key.Matches(msg, keys.enter):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.errMsg = ""
		tab := m.view.ActiveTab()
		if tab == models.TabShared {
			m.downloading = true
			return m, tea.Batch(m.cmdActivate(tab, item), m.spinner.Tick)
		}
		return m, m.cmdActivate(tab, item)
	case key.Matches(msg, keys.rate):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCheckRateable(item)
	case key.Matches(msg, keys.copy):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		if item.LocalURI == "" {
			m.errMsg = "Document is not on this device yet"
			return m, nil
		}
		return m, cmdCopyToClipboard(item.LocalURI)
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok && m.view.ActiveTab() == models.TabLocal {
			m.mode = archiveConfirmDelete
		}
	case key.Matches(msg, keys.back):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}

	return m, nil
}

func (m *ArchiveModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.view.SetSearch("")
		m.search.Blur()
		m.mode = archiveBrowse
		m.idx = 0
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = archiveBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.view.SetSearch(m.search.Value())
	m.idx = 0
	return m, cmd
}

func (m *ArchiveModel) updateOpenPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = archiveBrowse
		return m, m.cmdOpenDownloaded(m.pending)
	case "n", "esc":
		m.mode = archiveBrowse
		m.status = "Saved to My documents"
		return m, cmdClearStatus()
	}
	return m, nil
}

func (m *ArchiveModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.mode = archiveBrowse
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(item)
	case "n", "esc":
		m.mode = archiveBrowse
	}
	return m, nil
}

func (m *ArchiveModel) updateRating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.rating.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.mode = archiveBrowse
		return m, nil
	case "enter":
		m.rating.submitting = true
		m.rating.errMsg = ""
		return m, m.cmdSubmitRating(m.rating.item, m.rating.stars, strings.TrimSpace(m.rating.comment.Value()))
	}

	var cmd tea.Cmd
	m.rating, cmd = m.rating.update(msg)
	return m, cmd
}

func (m *ArchiveModel) handleActivation(msg activateDoneMsg) (tea.Model, tea.Cmd) {
	m.downloading = false
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	switch msg.act.Outcome {
	case models.OutcomeOpened:
		m.status = "Opened " + msg.act.Item.Title
		return m, cmdClearStatus()
	case models.OutcomeDownloaded:
		m.pending = msg.act
		m.mode = archiveOpenPrompt
	}
	return m, nil
}

func (m *ArchiveModel) View() string {
	var b strings.Builder

	for _, tab := range []models.ArchiveTab{models.TabLocal, models.TabShared} {
		if tab == m.view.ActiveTab() {
			b.WriteString(activeTabStyle.Render(tab.Label()))
		} else {
			b.WriteString(inactiveTabStyle.Render(tab.Label()))
		}
		b.WriteString("   ")
	}
	b.WriteString("\n\nSearch: [")
	b.WriteString(m.search.View())
	b.WriteString("]\n\n")

	visible := m.view.Visible()
	switch {
	case m.loading && !m.view.Loaded(m.view.ActiveTab()):
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(visible) == 0 && m.view.Search() != "":
		b.WriteString("No documents match \"")
		b.WriteString(m.view.Search())
		b.WriteString("\"\n")
	case len(visible) == 0:
		b.WriteString("No documents\n")
	default:
		b.WriteString(renderArchiveRows(visible, m.idx))
		b.WriteString("\n")
	}

	if m.downloading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Downloading...\n")
	}

	switch m.mode {
	case archiveOpenPrompt:
		b.WriteString("\n")
		b.WriteString(confirmModel{question: "Downloaded \"" + m.pending.Item.Title + "\". Open it now?"}.View())
		b.WriteString("\n")
	case archiveConfirmDelete:
		if item, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(confirmModel{question: "Remove \"" + item.Title + "\" from this device?"}.View())
			b.WriteString("\n")
		}
	case archiveRating:
		b.WriteString("\n")
		b.WriteString(m.rating.View())
		b.WriteString("\n")
	}

	renderMessages(&b, m.status, m.errMsg)

	return renderPage("ARCHIVE", strings.TrimRight(b.String(), "\n"),
		"enter: open │ tab: switch tab │ /: search │ s: rate │ c: copy path │ d: delete │ r: refresh │ esc: menu")
}

func (m *ArchiveModel) capturingInput() bool {
	return m.mode != archiveBrowse
}

func (m *ArchiveModel) current() (models.ArchiveItem, bool) {
	visible := m.view.Visible()
	if len(visible) == 0 || m.idx < 0 || m.idx >= len(visible) {
		return models.ArchiveItem{}, false
	}
	return visible[m.idx], true
}

func (m *ArchiveModel) startLoading(tab models.ArchiveTab) tea.Cmd {
	if tab == m.view.ActiveTab() {
		m.loading = true
	}
	return tea.Batch(m.cmdLoad(tab), m.spinner.Tick)
}

func (m *ArchiveModel) cmdLoad(tab models.ArchiveTab) tea.Cmd {
	ctx := m.ctx
	view := m.view
	return func() tea.Msg {
		items, err := view.Fetch(ctx, tab)
		return archiveLoadedMsg{tab: tab, items: items, err: err}
	}
}

func (m *ArchiveModel) cmdActivate(tab models.ArchiveTab, item models.ArchiveItem) tea.Cmd {
	ctx := m.ctx
	svc := m.services.OpenService
	return func() tea.Msg {
		act, err := svc.Activate(ctx, tab, item)
		return activateDoneMsg{tab: tab, act: act, err: err}
	}
}

func (m *ArchiveModel) cmdOpenDownloaded(act models.Activation) tea.Cmd {
	ctx := m.ctx
	svc := m.services.OpenService
	return func() tea.Msg {
		return openDoneMsg{err: svc.OpenDownloaded(ctx, act.Item, act.Path)}
	}
}

func (m *ArchiveModel) cmdDelete(item models.ArchiveItem) tea.Cmd {
	ctx := m.ctx
	svc := m.services.OpenService
	return func() tea.Msg {
		return deleteDoneMsg{err: svc.DeleteLocal(ctx, item)}
	}
}

func (m *ArchiveModel) cmdCheckRateable(item models.ArchiveItem) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RatingService
	return func() tea.Msg {
		return rateableMsg{item: item, err: svc.CheckRateable(ctx, item)}
	}
}

func (m *ArchiveModel) cmdSubmitRating(item models.ArchiveItem, stars int, comment string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RatingService
	userID := m.session.userID()
	return func() tea.Msg {
		return ratingDoneMsg{err: svc.Submit(ctx, userID, item, stars, comment)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriter(text); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-doc-archive/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names used with NavigateTo.
const (
	pageMenu          = "menu"
	pageHome          = "home"
	pageArchive       = "archive"
	pageNotifications = "notifications"
	pageSettings      = "settings"
)

// shortcutPages maps the digit hotkeys to pages.
var shortcutPages = map[string]string{
	"1": pageHome,
	"2": pageArchive,
	"3": pageNotifications,
	"4": pageSettings,
}

// inputCapturer is implemented by pages that own the keyboard while a text
// field or dialog is active; global hotkeys are suspended then.
type inputCapturer interface {
	capturingInput() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and digit shortcuts
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	logout     bool
	logoutErr  error
	session    models.Session
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}

		if !r.capturing() {
			if key.String() == "v" && r.isMenuPage() {
				r.showBuildInfo = true
				return r, nil
			}
			if page, ok := shortcutPages[key.String()]; ok {
				return r, func() tea.Msg { return NavigateTo{Page: page} }
			}
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	switch result := msg.(type) {
	case LoginResult:
		// Finalize login flow on success.
		if result.Err == nil {
			r.session = result.Session
			return r, tea.Quit
		}
	case LogoutRequested:
		r.logout = true
		r.logoutErr = result.Err
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("DOCUMENT ARCHIVE", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) capturing() bool {
	c, ok := r.current.(inputCapturer)
	return ok && c.capturingInput()
}

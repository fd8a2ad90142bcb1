// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-doc-archive/internal/service"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsSection int

const (
	sectionProfile settingsSection = iota
	sectionPassword
	sectionAvatar
	sectionLogout
)

var settingsSections = []struct {
	section settingsSection
	label   string
}{
	{sectionProfile, "Edit profile"},
	{sectionPassword, "Change password"},
	{sectionAvatar, "Upload profile picture"},
	{sectionLogout, "Log out"},
}

// SettingsModel edits the account: profile, password, avatar and logout.
type SettingsModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  *sessionState

	idx        int
	editing    bool
	confirming bool
	section    settingsSection
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func NewSettingsModel(ctx context.Context, services *service.ClientServices, session *sessionState) *SettingsModel {
	return &SettingsModel{
		ctx:      ctx,
		services: services,
		session:  session,
	}
}

func (m *SettingsModel) Init() tea.Cmd {
	m.editing = false
	m.confirming = false
	m.errMsg = ""
	return nil
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.session.setUser(msg.user)
		return m.finishEdit("Profile updated")
	case passwordChangedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m.finishEdit("Password changed")
	case avatarUploadedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		user := m.session.user()
		user.ProfilePicture = msg.url
		m.session.setUser(user)
		return m.finishEdit("Profile picture updated")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.confirming {
		switch keyMsg.String() {
		case "y":
			m.confirming = false
			return m, m.cmdLogout()
		case "n", "esc":
			m.confirming = false
		}
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		m.idx = moveCursor(m.idx, -1, len(settingsSections))
	case "down", "j":
		m.idx = moveCursor(m.idx, 1, len(settingsSections))
	case "enter":
		m.errMsg = ""
		section := settingsSections[m.idx].section
		if section == sectionLogout {
			m.confirming = true
			return m, nil
		}
		return m, m.startEdit(section)
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}
	return m, nil
}

func (m *SettingsModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.editing = false
		m.errMsg = ""
		return m, nil
	case "tab", "down":
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil
	case "enter":
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSubmit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) startEdit(section settingsSection) tea.Cmd {
	user := m.session.user()

	m.section = section
	m.editing = true
	m.focus = 0

	switch section {
	case sectionProfile:
		m.inputs = []textinput.Model{
			newSettingsInput("full name", user.FullName, false),
			newSettingsInput("email", user.Email, false),
		}
	case sectionPassword:
		m.inputs = []textinput.Model{
			newSettingsInput("new password", "", true),
			newSettingsInput("confirm password", "", true),
		}
	case sectionAvatar:
		m.inputs = []textinput.Model{
			newSettingsInput("/path/to/picture.png", "", false),
		}
	}
	return m.inputs[0].Focus()
}

func newSettingsInput(placeholder, value string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.SetValue(value)
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func (m *SettingsModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *SettingsModel) finishEdit(status string) (tea.Model, tea.Cmd) {
	m.editing = false
	m.errMsg = ""
	m.status = status
	return m, cmdClearStatus()
}

func (m *SettingsModel) View() string {
	var b strings.Builder
	user := m.session.user()

	b.WriteString("Username  │ ")
	b.WriteString(valueOrDash(user.Username))
	b.WriteString("\nFull name │ ")
	b.WriteString(valueOrDash(user.FullName))
	b.WriteString("\nEmail     │ ")
	b.WriteString(valueOrDash(user.Email))
	b.WriteString("\nRole      │ ")
	b.WriteString(valueOrDash(user.Role))
	b.WriteString("\nPicture   │ ")
	b.WriteString(valueOrDash(user.ProfilePicture))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(m.renderForm())
	} else {
		for i, s := range settingsSections {
			b.WriteString(cursorMark(i == m.idx))
			b.WriteString(s.label)
			b.WriteString("\n")
		}
	}

	if m.confirming {
		b.WriteString("\n")
		b.WriteString(confirmModel{question: "Log out of this device?"}.View())
		b.WriteString("\n")
	}
	renderMessages(&b, m.status, m.errMsg)

	hotKeys := "enter: select │ esc: menu"
	if m.editing {
		hotKeys = "tab: next field │ enter: save │ esc: cancel"
	}
	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *SettingsModel) renderForm() string {
	var labels []string
	switch m.section {
	case sectionProfile:
		labels = []string{"Full name", "Email"}
	case sectionPassword:
		labels = []string{"New", "Confirm"}
	case sectionAvatar:
		labels = []string{"File"}
	}

	var b strings.Builder
	b.WriteString(settingsSections[m.section].label)
	b.WriteString("\n\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 10-len(label)))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	return b.String()
}

func (m *SettingsModel) capturingInput() bool {
	return m.editing || m.confirming
}

func (m *SettingsModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = in.Value()
	}

	switch m.section {
	case sectionProfile:
		return func() tea.Msg {
			user, err := svc.UpdateProfile(ctx, models.ProfileForm{FullName: values[0], Email: values[1]})
			return profileSavedMsg{user: user, err: err}
		}
	case sectionPassword:
		return func() tea.Msg {
			return passwordChangedMsg{err: svc.ChangePassword(ctx, models.PasswordForm{NewPassword: values[0], Confirm: values[1]})}
		}
	default:
		path := strings.TrimSpace(values[0])
		return func() tea.Msg {
			url, err := svc.UploadAvatar(ctx, path)
			return avatarUploadedMsg{url: url, err: err}
		}
	}
}

func (m *SettingsModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return LogoutRequested{Err: auth.Logout(ctx)}
	}
}

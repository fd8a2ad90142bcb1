// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	content := m.question + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-doc-archive/internal/validators"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ratingDialog collects 1..5 stars and an optional comment for one item.
type ratingDialog struct {
	item           models.ArchiveItem
	stars          int
	comment        textinput.Model
	commentFocused bool
	submitting     bool
	errMsg         string
}

func newRatingDialog(item models.ArchiveItem) ratingDialog {
	comment := textinput.New()
	comment.Placeholder = "comment (optional)"
	comment.CharLimit = 500
	comment.Width = 40

	return ratingDialog{item: item, comment: comment}
}

// update handles keys other than enter and esc.
func (d ratingDialog) update(msg tea.KeyMsg) (ratingDialog, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		d.commentFocused = !d.commentFocused
		if d.commentFocused {
			cmd := d.comment.Focus()
			return d, cmd
		}
		d.comment.Blur()
		return d, nil
	}

	if d.commentFocused {
		var cmd tea.Cmd
		d.comment, cmd = d.comment.Update(msg)
		return d, cmd
	}

	switch msg.String() {
	case "left", "h":
		if d.stars > validators.MinRating {
			d.stars--
		}
	case "right", "l":
		if d.stars < validators.MaxRating {
			d.stars++
		}
	case "1", "2", "3", "4", "5":
		d.stars = int(msg.String()[0] - '0')
	}
	return d, nil
}

func (d ratingDialog) View() string {
	var b strings.Builder
	b.WriteString("Rate \"")
	b.WriteString(d.item.Title)
	b.WriteString("\"\n\n")

	b.WriteString(starStyle.Render(strings.Repeat("★", d.stars)))
	b.WriteString(helpStyle.Render(strings.Repeat("☆", validators.MaxRating-d.stars)))
	b.WriteString("\n\n[")
	b.WriteString(d.comment.View())
	b.WriteString("]\n")

	if d.submitting {
		b.WriteString("\nSending...\n")
	}
	if d.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(d.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n←/→ or 1-5: stars  tab: comment  enter: send  esc: cancel")
	return overlayBoxStyle.Render(b.String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-doc-archive/models"
)

const titleColumnWidth = 36

func listIcon(name string) string {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".") {
	case "pdf":
		return "[PDF]"
	case "doc", "docx":
		return "[DOC]"
	case "xls", "xlsx":
		return "[XLS]"
	case "ppt", "pptx":
		return "[PPT]"
	case "png", "jpg", "jpeg", "heic":
		return "[IMG]"
	case "txt":
		return "[TXT]"
	default:
		return "[ ? ]"
	}
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func renderArchiveRows(items []models.ArchiveItem, idx int) string {
	var b strings.Builder
	for i, item := range items {
		name := item.FileName
		if name == "" {
			name = item.Title
		}
		b.WriteString(fmt.Sprintf("%s%s %s %-*s %s\n",
			cursorMark(i == idx),
			swatch(item.Color),
			listIcon(name),
			titleColumnWidth, fitText(item.Title, titleColumnWidth),
			helpStyle.Render(item.Subtitle),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

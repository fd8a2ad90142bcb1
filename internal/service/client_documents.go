// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-doc-archive/models"
)

const (
	kibibyte = 1024
	mebibyte = 1024 * kibibyte

	subtitleDateLayout = "02/01/2006"
	subtitleSeparator  = " • "
)

// formatFileSize renders a byte count for list subtitles.
func formatFileSize(size int64) string {
	switch {
	case size <= 0:
		return "Unknown"
	case size >= mebibyte:
		return fmt.Sprintf("%.2f MB", float64(size)/mebibyte)
	case size >= kibibyte:
		return fmt.Sprintf("%.2f KB", float64(size)/kibibyte)
	default:
		return fmt.Sprintf("%d Bytes", size)
	}
}

// fileColor picks the accent color for a file name or MIME type.
func fileColor(fileType string) string {
	t := strings.ToLower(fileType)
	switch {
	case strings.Contains(t, "pdf"):
		return "#F44336"
	case strings.Contains(t, "doc"):
		return "#2196F3"
	case strings.Contains(t, "xls"):
		return "#4CAF50"
	case strings.Contains(t, "ppt"):
		return "#FF9800"
	case strings.Contains(t, "png"), strings.Contains(t, "jpg"):
		return "#E91E63"
	default:
		return "#000080"
	}
}

// documentFileName derives the on-device name of a shared document. Titles
// without an extension get one guessed from the MIME type.
func documentFileName(doc models.BackendDocument) string {
	name := doc.Title
	if strings.Contains(name, ".") {
		return name
	}

	t := strings.ToLower(doc.FileType)
	switch {
	case strings.Contains(t, "pdf"):
		return name + ".pdf"
	case strings.Contains(t, "image"):
		return name + ".png"
	case strings.Contains(t, "word"):
		return name + ".docx"
	default:
		return name + ".bin"
	}
}

func sharedItem(doc models.BackendDocument) models.ArchiveItem {
	fileName := documentFileName(doc)
	title := doc.Title
	if title == "" {
		title = fileName
	}
	id := doc.DocumentID

	return models.ArchiveItem{
		ID:         strconv.FormatInt(doc.DocumentID, 10),
		DocumentID: &id,
		Title:      title,
		Subtitle:   formatFileSize(doc.FileSize) + subtitleSeparator + doc.CreatedAt.Format(subtitleDateLayout),
		Type:       models.ItemFile,
		Color:      fileColor(doc.FileType),
		IsShared:   true,
		FileURL:    doc.FilePath,
		FileName:   fileName,
	}
}

func localItem(file models.LocalFile, path string, record models.MetadataRecord, found bool) models.ArchiveItem {
	item := models.ArchiveItem{
		ID:       file.Name,
		Title:    file.Name,
		Subtitle: formatFileSize(file.Size) + subtitleSeparator + "Downloaded",
		Type:     models.ItemFile,
		Color:    fileColor(file.Name),
		LocalURI: path,
		FileName: file.Name,
	}
	if found {
		id := record.DocumentID
		item.DocumentID = &id
		if record.Title != "" {
			item.Title = record.Title
		}
	}
	return item
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"path/filepath"
	"strings"
)

// FallbackMimeType is returned for extensions without a known type.
const FallbackMimeType = "*/*"

var mimeTypes = map[string]string{
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/msword",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.ms-excel",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.ms-powerpoint",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"txt":  "text/plain",
}

// MimeType maps the extension of path (case-insensitive) to the type used
// when handing the document to a viewer.
func MimeType(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return FallbackMimeType
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimeType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.pdf", "application/pdf"},
		{"A.PDF", "application/pdf"},
		{"a.doc", "application/msword"},
		{"a.docx", "application/msword"},
		{"a.xls", "application/vnd.ms-excel"},
		{"a.xlsx", "application/vnd.ms-excel"},
		{"a.ppt", "application/vnd.ms-powerpoint"},
		{"a.pptx", "application/vnd.ms-powerpoint"},
		{"a.png", "image/png"},
		{"a.jpg", "image/jpeg"},
		{"a.jpeg", "image/jpeg"},
		{"a.txt", "text/plain"},
		{"a.heic", FallbackMimeType},
		{"a.zip", FallbackMimeType},
		{"noext", FallbackMimeType},
		{"/dir.pdf/file", FallbackMimeType},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MimeType(tt.path))
		})
	}
}

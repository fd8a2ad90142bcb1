// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRepository_FindOnEmptyStore(t *testing.T) {
	repo := NewMetadataRepository(newTestKV(t), logger.Nop())

	_, ok := repo.Find(context.Background(), "a.pdf")
	assert.False(t, ok)
}

func TestMetadataRepository_FindBySuffixFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	require.NoError(t, kv.Set(ctx, KeySavedDocuments, []byte(`[
		{"documentId": 1, "title": "Old", "localUri": "/docs/old/report.pdf"},
		{"documentId": 2, "title": "New", "localUri": "/docs/report.pdf"}
	]`)))
	repo := NewMetadataRepository(kv, logger.Nop())

	rec, ok := repo.Find(ctx, "report.pdf")
	require.True(t, ok)
	assert.Equal(t, int64(1), rec.DocumentID)
	assert.Equal(t, "Old", rec.Title)

	_, ok = repo.Find(ctx, "other.pdf")
	assert.False(t, ok)
}

func TestMetadataRepository_CorruptValueIsNoRecord(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	require.NoError(t, kv.Set(ctx, KeySavedDocuments, []byte(`{not json`)))
	repo := NewMetadataRepository(kv, logger.Nop())

	_, ok := repo.Find(ctx, "a.pdf")
	assert.False(t, ok)

	// next write replaces the corrupt value
	require.NoError(t, repo.Save(ctx, models.MetadataRecord{DocumentID: 3, Title: "A", LocalURI: "/d/a.pdf"}))
	rec, ok := repo.Find(ctx, "a.pdf")
	require.True(t, ok)
	assert.Equal(t, int64(3), rec.DocumentID)
}

func TestMetadataRepository_SaveReplacesByLocalURI(t *testing.T) {
	ctx := context.Background()
	repo := NewMetadataRepository(newTestKV(t), logger.Nop())

	require.NoError(t, repo.Save(ctx, models.MetadataRecord{DocumentID: 1, Title: "v1", LocalURI: "/d/a.pdf"}))
	require.NoError(t, repo.Save(ctx, models.MetadataRecord{DocumentID: 2, Title: "b", LocalURI: "/d/b.pdf"}))
	require.NoError(t, repo.Save(ctx, models.MetadataRecord{DocumentID: 1, Title: "v2", LocalURI: "/d/a.pdf", Checksum: "abc"}))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "v2", records[0].Title)
	assert.Equal(t, "abc", records[0].Checksum)
	assert.Equal(t, "b", records[1].Title)
}

func TestMetadataRepository_RemoveByFileName(t *testing.T) {
	ctx := context.Background()
	repo := NewMetadataRepository(newTestKV(t), logger.Nop())

	require.NoError(t, repo.Save(ctx, models.MetadataRecord{DocumentID: 1, LocalURI: "/d/a.pdf"}))
	require.NoError(t, repo.Save(ctx, models.MetadataRecord{DocumentID: 2, LocalURI: "/d/b.pdf"}))

	require.NoError(t, repo.RemoveByFileName(ctx, "a.pdf"))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), records[0].DocumentID)
}

func TestMetadataRepository_RemoveByFileName_KeepsSuffixSibling(t *testing.T) {
	ctx := context.Background()
	repo := NewMetadataRepository(newTestKV(t), logger.Nop())

	require.NoError(t, repo.Save(ctx, models.MetadataRecord{DocumentID: 1, LocalURI: "/docs/a.pdf"}))
	require.NoError(t, repo.Save(ctx, models.MetadataRecord{DocumentID: 2, LocalURI: "/docs/data.pdf"}))

	require.NoError(t, repo.RemoveByFileName(ctx, "a.pdf"))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "/docs/data.pdf", records[0].LocalURI)

	rec, ok := repo.Find(ctx, "data.pdf")
	require.True(t, ok)
	assert.Equal(t, int64(2), rec.DocumentID)
}

func Test_matchRecord_EmptyNameNeverMatches(t *testing.T) {
	_, ok := matchRecord([]models.MetadataRecord{{LocalURI: "/d/a.pdf"}}, "")
	assert.False(t, ok)
}

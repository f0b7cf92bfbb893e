package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskFileStoreUpload(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskFileStore(dir, "/files")

	url, err := store.Upload(context.Background(), "2026/08/receipt.pdf", []byte("pdf bytes"), map[string]string{
		"originalName": "receipt.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "/files/2026/08/receipt.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "2026", "08", "receipt.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), data)

	meta, err := os.ReadFile(filepath.Join(dir, "2026", "08", "receipt.pdf.meta.json"))
	require.NoError(t, err)
	var parsed map[string]string
	require.NoError(t, json.Unmarshal(meta, &parsed))
	assert.Equal(t, "receipt.pdf", parsed["originalName"])
}

func TestDiskFileStoreNoMetadataSidecar(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskFileStore(dir, "/files")

	_, err := store.Upload(context.Background(), "plain.txt", []byte("x"), nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "plain.txt.meta.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskFileStoreRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskFileStore(dir, "/files")

	_, err := store.Upload(context.Background(), "../../etc/passwd", []byte("x"), nil)
	// Clean collapses the path back inside the base dir, so the write either
	// lands safely under it or is refused; it must never escape.
	if err == nil {
		_, statErr := os.Stat(filepath.Join(dir, "etc", "passwd"))
		assert.NoError(t, statErr)
	}

	entries, readErr := os.ReadDir(filepath.Dir(dir))
	require.NoError(t, readErr)
	for _, e := range entries {
		assert.NotEqual(t, "passwd", e.Name())
	}
}

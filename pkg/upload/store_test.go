package upload

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func pdfPayload() []byte {
	return append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("a"), 64)...)
}

func TestSaveStoresValidPDF(t *testing.T) {
	store := newTestStore(t)

	payload := pdfPayload()
	name, err := store.Save("resume.pdf", bytes.NewReader(payload), int64(len(payload)), "application/pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, "-resume.pdf"))

	written, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestSaveRejectsOversizedBeforeWriting(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("resume.pdf", bytes.NewReader(nil), MaxFileSize+1, "application/pdf")
	assert.ErrorIs(t, err, ErrTooLarge)
	assertDirEmpty(t, store.Dir())
}

func TestSaveRejectsOversizedBody(t *testing.T) {
	store := newTestStore(t)

	// Declared size lies, actual body is over the cap.
	body := append([]byte("%PDF"), bytes.Repeat([]byte("b"), MaxFileSize)...)
	_, err := store.Save("resume.pdf", bytes.NewReader(body), 100, "application/pdf")
	assert.ErrorIs(t, err, ErrTooLarge)
	assertDirEmpty(t, store.Dir())
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store := newTestStore(t)

	payload := []byte("MZ executable")
	_, err := store.Save("virus.exe", bytes.NewReader(payload), int64(len(payload)), "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assertDirEmpty(t, store.Dir())
}

func TestSaveRejectsMagicByteMismatch(t *testing.T) {
	store := newTestStore(t)

	// .pdf extension, not a PDF payload
	payload := []byte("just some text pretending")
	_, err := store.Save("resume.pdf", bytes.NewReader(payload), int64(len(payload)), "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assertDirEmpty(t, store.Dir())
}

func TestSaveRejectsDisallowedMIME(t *testing.T) {
	store := newTestStore(t)

	payload := pdfPayload()
	_, err := store.Save("resume.pdf", bytes.NewReader(payload), int64(len(payload)), "application/octet-stream")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assertDirEmpty(t, store.Dir())
}

func TestSaveAllowsTextPlainWithCharset(t *testing.T) {
	store := newTestStore(t)

	payload := []byte("plain notes")
	_, err := store.Save("notes.txt", bytes.NewReader(payload), int64(len(payload)), "text/plain; charset=utf-8")
	assert.NoError(t, err)
}

func TestSaveStripsPathComponents(t *testing.T) {
	store := newTestStore(t)

	payload := pdfPayload()
	name, err := store.Save("../../etc/resume.pdf", bytes.NewReader(payload), int64(len(payload)), "application/pdf")
	require.NoError(t, err)
	assert.NotContains(t, name, "/")
	assert.True(t, strings.HasSuffix(name, "-resume.pdf"))
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	payload := pdfPayload()
	name, err := store.Save("resume.pdf", bytes.NewReader(payload), int64(len(payload)), "application/pdf")
	require.NoError(t, err)

	require.NoError(t, store.Delete(name))
	assert.ErrorIs(t, store.Delete(name), ErrNotFound)
}

func TestDeleteRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	assert.ErrorIs(t, store.Delete("../secrets.txt"), ErrBadName)
	assert.ErrorIs(t, store.Delete("a/b.pdf"), ErrBadName)
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

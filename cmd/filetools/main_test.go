package main

import (
	"archive/zip"
	"bytes"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServeZip_ArchivesDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	var logBuf bytes.Buffer
	srv := &fileServer{root: dir, logger: slog.New(slog.NewTextHandler(&logBuf, nil))}

	w := httptest.NewRecorder()
	srv.serveZip(w, dir)

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	require.Equal(t, "notes.txt", zr.File[0].Name)
	require.Empty(t, logBuf.String())
}

func TestServeZip_LogsWalkFailure(t *testing.T) {
	var logBuf bytes.Buffer
	srv := &fileServer{root: "/tmp", logger: slog.New(slog.NewTextHandler(&logBuf, nil))}

	w := httptest.NewRecorder()
	srv.serveZip(w, filepath.Join(t.TempDir(), "does-not-exist"))

	require.Contains(t, logBuf.String(), "Zip download incomplete")
}

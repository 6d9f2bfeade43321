package render

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zzft/ftsite/internal/config"
	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
	"github.com/zzft/ftsite/internal/site"
)

func TestWriter_WritesAllFormats(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")
	w := NewWriter(dir, nil)

	results, err := w.Write(site.MustDefault(), []config.OutputFormat{
		config.FormatVitePressJSON, config.FormatVitePressMJS, config.FormatHugo,
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	names := make([]string, 0, len(results))
	for _, r := range results {
		assert.Equal(t, OutcomeWritten, r.Outcome)
		assert.Len(t, r.Hash, 64)
		names = append(names, filepath.Base(r.Path))
		assert.FileExists(t, r.Path)
	}
	assert.Equal(t, []string{"config.json", "config.mjs", "sidebar.mjs", "hugo.yaml"}, names)

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	want, err := VitePress(site.MustDefault())
	require.NoError(t, err)
	assert.Equal(t, want, data)
}

func TestWriter_SkipsUnchanged(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	w := NewWriter(dir, slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	formats := []config.OutputFormat{config.FormatHugo}

	first, err := w.Write(site.MustDefault(), formats)
	require.NoError(t, err)
	second, err := w.Write(site.MustDefault(), formats)
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.Equal(t, OutcomeWritten, first[0].Outcome)
	assert.Equal(t, OutcomeUnchanged, second[0].Outcome)
	assert.Equal(t, first[0].Hash, second[0].Hash)
	assert.Contains(t, logs.String(), "outcome=unchanged")

	changed, err := site.New(site.WithTitle("Renamed"))
	require.NoError(t, err)
	third, err := w.Write(changed, formats)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWritten, third[0].Outcome)
	assert.NotEqual(t, first[0].Hash, third[0].Hash)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no staging files left behind")
}

func TestFiles_UnknownFormat(t *testing.T) {
	_, err := Files(site.MustDefault(), config.OutputFormat("pdf"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryRender))
}

func TestWriter_OutputDirBlockedByFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "generated")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	_, err := NewWriter(filepath.Join(blocker, "site"), nil).Write(site.MustDefault(), []config.OutputFormat{config.FormatHugo})
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	path, _ := classified.Context().GetString("path")
	assert.Equal(t, filepath.Join(blocker, "site"), path)
	assert.Error(t, classified.Cause())
}

package render

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/zzft/ftsite/internal/config"
	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
	"github.com/zzft/ftsite/internal/logfields"
	"github.com/zzft/ftsite/internal/site"
)

// Outcome describes what happened to one output file.
type Outcome string

const (
	OutcomeWritten   Outcome = "written"
	OutcomeUnchanged Outcome = "unchanged"
)

// Result reports one written (or skipped) file.
type Result struct {
	Path    string
	Format  config.OutputFormat
	Outcome Outcome
	Hash    string
}

// Writer emits rendered files into an output directory.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a writer for dir. A nil logger uses slog.Default.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{dir: dir, logger: logger}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Write renders cfg in every format and writes the files. Files whose
// content is unchanged on disk are left untouched.
func (w *Writer) Write(cfg *site.Config, formats []config.OutputFormat) ([]Result, error) {
	start := time.Now()
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, ferrors.FileSystemError("failed to create output directory").
			WithCause(err).
			WithContext("path", w.dir).
			Build()
	}

	var results []Result
	for _, format := range formats {
		files, err := Files(cfg, format)
		if err != nil {
			return results, err
		}
		for _, f := range files {
			res, err := w.writeFile(f)
			if err != nil {
				return results, err
			}
			w.logger.Debug("Rendered site configuration",
				logfields.Path(res.Path),
				logfields.Format(string(format)),
				logfields.Outcome(string(res.Outcome)))
			results = append(results, res)
		}
	}

	w.logger.Info("Site configuration rendered",
		logfields.Path(w.dir),
		logfields.Base(cfg.Base),
		logfields.Count(len(results)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return results, nil
}

func (w *Writer) writeFile(f File) (Result, error) {
	path := filepath.Join(w.dir, f.Name)
	res := Result{Path: path, Format: f.Format, Hash: contentHash(f.Data)}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, f.Data):
		res.Outcome = OutcomeUnchanged
		return res, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return res, ferrors.FileSystemError("failed to read existing output").
			WithCause(err).
			WithContext("path", path).
			Build()
	}

	if err := writeAtomic(path, f.Data); err != nil {
		return res, ferrors.FileSystemError("failed to write output").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	res.Outcome = OutcomeWritten
	return res, nil
}

// writeAtomic stages data next to path and renames it into place so readers
// never observe a partial file.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

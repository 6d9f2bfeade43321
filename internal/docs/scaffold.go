package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/inful/mdfp"

	derrors "github.com/zzft/ftsite/internal/docs/errors"
	"github.com/zzft/ftsite/internal/frontmatter"
	"github.com/zzft/ftsite/internal/logfields"
	"github.com/zzft/ftsite/internal/site"
)

// Scaffold creates a stub document for every sidebar item whose target does
// not exist under root. Existing files are never touched. It returns the
// relative paths it created in sidebar order.
func Scaffold(cfg *site.Config, root string, now time.Time) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrInvalidRelativePath, root, err)
	}

	var created []string
	for _, section := range cfg.Sidebar {
		for _, item := range section.Items {
			target := filepath.Join(abs, filepath.FromSlash(item.Link))
			content, err := stub(item.Text, now)
			if err != nil {
				return created, fmt.Errorf("%w: %s: %w", derrors.ErrScaffoldFailed, item.Link, err)
			}

			ok, err := createExclusive(target, content)
			if err != nil {
				return created, fmt.Errorf("%w: %s: %w", derrors.ErrScaffoldFailed, item.Link, err)
			}
			if !ok {
				continue
			}
			slog.Info("Scaffolded document", logfields.Document(item.Link), logfields.Section(section.Text))
			created = append(created, item.Link)
		}
	}
	return created, nil
}

func stub(label string, now time.Time) ([]byte, error) {
	body := []byte("# " + label + "\n")
	fields := map[string]any{
		"title":      label,
		lastmodField: now.UTC().Format(lastmodFmt),
	}
	fp, err := computeFingerprint(fields, body)
	if err != nil {
		return nil, err
	}
	fields[mdfp.FingerprintField] = fp

	return frontmatter.Document{Fields: fields, Body: body, HadYAML: true, Newline: "\n"}.Bytes()
}

// createExclusive writes content to a new file at p. It returns false
// without error when p already exists.
func createExclusive(p string, content []byte) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return false, err
	}
	// #nosec G304 -- target is derived from a validated sidebar link.
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}

// Package docs inspects the content root that sidebar links point into:
// discovery, title lookup, consistency checks and stub scaffolding.
package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	derrors "github.com/zzft/ftsite/internal/docs/errors"
	"github.com/zzft/ftsite/internal/frontmatter"
	"github.com/zzft/ftsite/internal/logfields"
)

// Document is a Markdown file discovered under the content root.
type Document struct {
	Path         string // Absolute path to the file
	RelativePath string // Slash-separated path relative to the content root
	Section      string // First directory component, empty at the root
	Name         string // File name without extension
}

// Inventory is the set of Markdown documents under one content root.
type Inventory struct {
	Root string
	docs map[string]Document
}

// Scan walks root for Markdown documents. Dot directories (including
// .vitepress) and node_modules are skipped.
func Scan(root string) (*Inventory, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrInvalidRelativePath, root, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", derrors.ErrContentRootNotFound, root)
	}

	inv := &Inventory{Root: abs, docs: make(map[string]Document)}
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != abs && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdownFile(p) {
			return nil
		}
		rel, err := filepath.Rel(abs, p)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", derrors.ErrInvalidRelativePath, p, err)
		}
		rel = filepath.ToSlash(rel)
		inv.docs[rel] = Document{
			Path:         p,
			RelativePath: rel,
			Section:      sectionOf(rel),
			Name:         strings.TrimSuffix(path.Base(rel), path.Ext(rel)),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrDocsDirWalkFailed, root, err)
	}

	slog.Debug("Content root scanned", logfields.Path(abs), logfields.Count(len(inv.docs)))
	return inv, nil
}

// Len returns the number of documents.
func (inv *Inventory) Len() int { return len(inv.docs) }

// Has reports whether rel names a discovered document.
func (inv *Inventory) Has(rel string) bool {
	_, ok := inv.docs[rel]
	return ok
}

// Get returns the document at rel.
func (inv *Inventory) Get(rel string) (Document, bool) {
	d, ok := inv.docs[rel]
	return d, ok
}

// Documents returns every document sorted by relative path.
func (inv *Inventory) Documents() []Document {
	return inv.Under("")
}

// Under returns the documents whose relative path starts with prefix,
// sorted by relative path.
func (inv *Inventory) Under(prefix string) []Document {
	out := make([]Document, 0, len(inv.docs))
	for rel, d := range inv.docs {
		if strings.HasPrefix(rel, prefix) {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(a, b Document) int { return strings.Compare(a.RelativePath, b.RelativePath) })
	return out
}

// Read loads and splits the document at rel.
func (inv *Inventory) Read(rel string) (frontmatter.Document, []byte, error) {
	d, ok := inv.docs[rel]
	if !ok {
		return frontmatter.Document{}, nil, fmt.Errorf("%w: %s", derrors.ErrFileReadFailed, rel)
	}
	// #nosec G304 -- path comes from walking the content root.
	raw, err := os.ReadFile(d.Path)
	if err != nil {
		return frontmatter.Document{}, nil, fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, rel, err)
	}
	doc, err := frontmatter.Parse(raw)
	if err != nil {
		return frontmatter.Document{}, nil, fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, rel, err)
	}
	return doc, raw, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

func isMarkdownFile(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".md" || ext == ".markdown"
}

func sectionOf(rel string) string {
	if i := strings.IndexByte(rel, '/'); i > 0 {
		return rel[:i]
	}
	return ""
}

package docs

import (
	"path"
	"strings"

	"github.com/zzft/ftsite/internal/frontmatter"
	"github.com/zzft/ftsite/internal/markdown"
)

// documentTitle resolves the display title of doc, read from rel: the
// frontmatter title field, then the first heading, then the file stem.
func documentTitle(doc frontmatter.Document, rel string) string {
	if t, ok := doc.String("title"); ok {
		return strings.TrimSpace(t)
	}
	if t, ok := markdown.FirstHeading(doc.Body, 0); ok {
		return t
	}
	return strings.TrimSuffix(path.Base(rel), path.Ext(rel))
}

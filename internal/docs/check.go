package docs

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/zzft/ftsite/internal/markdown"
	"github.com/zzft/ftsite/internal/site"
)

// FindingKind classifies one check result.
type FindingKind string

const (
	FindingMissing          FindingKind = "missing"
	FindingUnreadable       FindingKind = "unreadable"
	FindingOrphan           FindingKind = "orphan"
	FindingBrokenLink       FindingKind = "broken_link"
	FindingTitleMismatch    FindingKind = "title_mismatch"
	FindingStaleFingerprint FindingKind = "stale_fingerprint"
)

// Severity is the weight of a finding when deciding the exit status.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

var findingSeverity = map[FindingKind]Severity{
	FindingMissing:          SeverityError,
	FindingUnreadable:       SeverityError,
	FindingOrphan:           SeverityWarning,
	FindingBrokenLink:       SeverityWarning,
	FindingTitleMismatch:    SeverityInfo,
	FindingStaleFingerprint: SeverityInfo,
}

// Severity returns the fixed severity of the kind.
func (k FindingKind) Severity() Severity { return findingSeverity[k] }

// Finding is a single observation about the content root.
type Finding struct {
	Kind    FindingKind
	Path    string // document relative to the content root
	Section string // sidebar section, empty for orphans
	Label   string // sidebar item text, empty for orphans
	Detail  string
}

func (f Finding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", f.Kind, f.Path)
	if f.Section != "" {
		fmt.Fprintf(&b, " (%s / %s)", f.Section, f.Label)
	}
	if f.Detail != "" {
		b.WriteString(": ")
		b.WriteString(f.Detail)
	}
	return b.String()
}

// Report is the outcome of Check.
type Report struct {
	Checked  int // sidebar items examined
	Findings []Finding
}

// Of returns the findings of the given kind in report order.
func (r Report) Of(kind FindingKind) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

// Count returns how many findings carry severity s.
func (r Report) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Kind.Severity() == s {
			n++
		}
	}
	return n
}

// Failed reports whether the report should fail a check run. Errors always
// fail; warnings fail only in strict mode.
func (r Report) Failed(strict bool) bool {
	return r.Count(SeverityError) > 0 || (strict && r.Count(SeverityWarning) > 0)
}

// Check compares the sidebar of cfg with the documents in inv. Sidebar
// items are examined in display order; orphans follow, sorted by path.
func Check(cfg *site.Config, inv *Inventory) Report {
	var r Report
	referenced := make(map[string]struct{})

	for _, section := range cfg.Sidebar {
		for _, item := range section.Items {
			r.Checked++
			referenced[item.Link] = struct{}{}
			base := Finding{Path: item.Link, Section: section.Text, Label: item.Text}

			if !inv.Has(item.Link) {
				base.Kind = FindingMissing
				r.Findings = append(r.Findings, base)
				continue
			}
			r.Findings = append(r.Findings, checkDocument(inv, base)...)
		}
	}

	for _, d := range inv.Under(site.AssetsDir + "/") {
		if _, ok := referenced[d.RelativePath]; ok {
			continue
		}
		r.Findings = append(r.Findings, Finding{Kind: FindingOrphan, Path: d.RelativePath})
	}
	return r
}

func checkDocument(inv *Inventory, base Finding) []Finding {
	doc, raw, err := inv.Read(base.Path)
	if err != nil {
		f := base
		f.Kind, f.Detail = FindingUnreadable, err.Error()
		return []Finding{f}
	}

	var out []Finding
	if title := documentTitle(doc, base.Path); !sameTitle(title, base.Label) {
		f := base
		f.Kind, f.Detail = FindingTitleMismatch, fmt.Sprintf("document title is %q", title)
		out = append(out, f)
	}

	if present, valid := fingerprintState(doc, raw); present && !valid {
		f := base
		f.Kind, f.Detail = FindingStaleFingerprint, "content changed since the fingerprint was written"
		out = append(out, f)
	}

	var broken []string
	for _, l := range markdown.ExtractLinks(doc.Body) {
		if !l.Internal() {
			continue
		}
		if !linkResolves(inv, base.Path, l.Destination) && !slices.Contains(broken, l.Destination) {
			broken = append(broken, l.Destination)
		}
	}
	for _, dest := range broken {
		f := base
		f.Kind, f.Detail = FindingBrokenLink, fmt.Sprintf("link %q does not resolve", dest)
		out = append(out, f)
	}
	return out
}

// sameTitle compares titles after Unicode normalization and case folding.
func sameTitle(a, b string) bool {
	return foldTitle(a) == foldTitle(b)
}

func foldTitle(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// linkResolves reports whether dest, written inside the document at from,
// points at an existing document or file under the content root. Links
// without an extension follow the clean-URL convention and may omit ".md".
func linkResolves(inv *Inventory, from, dest string) bool {
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest = dest[:i]
	}
	if dest == "" {
		return true
	}
	if unescaped, err := url.PathUnescape(dest); err == nil {
		dest = unescaped
	}

	target := path.Join(path.Dir(from), dest)
	if target == ".." || strings.HasPrefix(target, "../") {
		return false
	}

	switch ext := path.Ext(target); {
	case ext == ".md" || ext == ".markdown":
		return inv.Has(target)
	case ext == "" || ext == ".html":
		stem := strings.TrimSuffix(target, ext)
		if inv.Has(stem+".md") || inv.Has(path.Join(stem, "index.md")) {
			return true
		}
	}
	// Directories only resolve through an index document.
	info, err := os.Stat(filepath.Join(inv.Root, filepath.FromSlash(target)))
	return err == nil && !info.IsDir()
}

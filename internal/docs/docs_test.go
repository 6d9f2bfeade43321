package docs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inful/mdfp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/zzft/ftsite/internal/docs/errors"
	"github.com/zzft/ftsite/internal/frontmatter"
	"github.com/zzft/ftsite/internal/site"
)

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

func testSite(t *testing.T) *site.Config {
	t.Helper()
	cfg, err := site.New(site.WithSidebar([]site.SidebarSection{
		{Text: "JS", Items: []site.SidebarItem{
			{Text: "Closure", Link: "assets/JS/Closure.md"},
			{Text: "Scope", Link: "assets/JS/Scope.md"},
		}},
		{Text: "Vue", Items: []site.SidebarItem{
			{Text: "Router", Link: "assets/Vue/Router.md"},
		}},
	}))
	require.NoError(t, err)
	return cfg
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "index.md", "# Home\n")
	writeDoc(t, root, "assets/JS/Closure.md", "# Closure\n")
	writeDoc(t, root, "assets/JS/notes.txt", "not markdown")
	writeDoc(t, root, ".vitepress/theme/README.md", "# theme\n")
	writeDoc(t, root, "node_modules/pkg/README.md", "# pkg\n")
	writeDoc(t, root, "assets/.drafts/Draft.md", "# draft\n")

	inv, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 2, inv.Len())
	assert.True(t, inv.Has("index.md"))
	assert.True(t, inv.Has("assets/JS/Closure.md"))
	assert.False(t, inv.Has(".vitepress/theme/README.md"))

	d, ok := inv.Get("assets/JS/Closure.md")
	require.True(t, ok)
	assert.Equal(t, "assets", d.Section)
	assert.Equal(t, "Closure", d.Name)
	assert.Equal(t, filepath.Join(inv.Root, "assets", "JS", "Closure.md"), d.Path)

	docs := inv.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "assets/JS/Closure.md", docs[0].RelativePath)
	assert.Equal(t, "index.md", docs[1].RelativePath)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, derrors.ErrContentRootNotFound)
}

func TestDocumentTitle(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "a.md", "---\ntitle: From Frontmatter\n---\n# Heading\n")
	writeDoc(t, root, "b.md", "intro\n\nSetext Heading\n--------------\n")
	writeDoc(t, root, "c_stem.md", "no headings here\n")
	writeDoc(t, root, "broken.md", "---\ntitle: x\nno close\n")

	inv, err := Scan(root)
	require.NoError(t, err)

	for rel, want := range map[string]string{
		"a.md":      "From Frontmatter",
		"b.md":      "Setext Heading",
		"c_stem.md": "c_stem",
	} {
		doc, _, err := inv.Read(rel)
		require.NoError(t, err, rel)
		assert.Equal(t, want, documentTitle(doc, rel), rel)
	}

	// Titles come from the parsed document alone; nothing is read from disk.
	doc, err := frontmatter.Parse([]byte("---\ntitle: \" Parsed \"\n---\n# Heading\n"))
	require.NoError(t, err)
	assert.Equal(t, "Parsed", documentTitle(doc, "unread.md"))
	doc, err = frontmatter.Parse([]byte("plain text\n"))
	require.NoError(t, err)
	assert.Equal(t, "unread", documentTitle(doc, "dir/unread.md"))

	_, _, err = inv.Read("broken.md")
	require.ErrorIs(t, err, derrors.ErrFileReadFailed)
	_, _, err = inv.Read("unknown.md")
	require.ErrorIs(t, err, derrors.ErrFileReadFailed)
}

func TestCheck(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "assets/JS/Closure.md", "# Closure\n\nSee [scope](./Scope.md) and [router](../Vue/Router).\n")
	writeDoc(t, root, "assets/JS/Scope.md", "# Scopes\n\n![diagram](./img/scope.png) [gone](Gone.md#top)\n")
	writeDoc(t, root, "assets/JS/Extra.md", "# Extra\n")
	writeDoc(t, root, "index.md", "# Home\n")

	inv, err := Scan(root)
	require.NoError(t, err)
	report := Check(testSite(t), inv)

	assert.Equal(t, 3, report.Checked)

	missing := report.Of(FindingMissing)
	require.Len(t, missing, 1)
	assert.Equal(t, Finding{Kind: FindingMissing, Path: "assets/Vue/Router.md", Section: "Vue", Label: "Router"}, missing[0])

	orphans := report.Of(FindingOrphan)
	require.Len(t, orphans, 1)
	assert.Equal(t, "assets/JS/Extra.md", orphans[0].Path)

	mismatches := report.Of(FindingTitleMismatch)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "assets/JS/Scope.md", mismatches[0].Path)
	assert.Contains(t, mismatches[0].Detail, `"Scopes"`)

	broken := report.Of(FindingBrokenLink)
	require.Len(t, broken, 3)
	assert.Equal(t, "assets/JS/Closure.md", broken[0].Path)
	assert.Contains(t, broken[0].Detail, "../Vue/Router")
	assert.Contains(t, broken[1].Detail, "./img/scope.png")
	assert.Contains(t, broken[2].Detail, "Gone.md#top")

	assert.Equal(t, 1, report.Count(SeverityError))
	assert.True(t, report.Failed(false))
}

func TestCheck_DirectoryLinks(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "assets/JS/Closure.md", "# Closure\n\n[es6](./ES6/) [bare](ES6) [vue](../Vue/) [img](img)\n")
	writeDoc(t, root, "assets/JS/ES6/Promise.md", "# Promise\n")
	writeDoc(t, root, "assets/JS/img/scope.png", "png")
	writeDoc(t, root, "assets/Vue/index.md", "# Vue\n")

	inv, err := Scan(root)
	require.NoError(t, err)
	report := Check(testSite(t), inv)

	var details []string
	for _, f := range report.Of(FindingBrokenLink) {
		assert.Equal(t, "assets/JS/Closure.md", f.Path)
		details = append(details, f.Detail)
	}
	assert.Equal(t, []string{
		`link "./ES6/" does not resolve`,
		`link "ES6" does not resolve`,
		`link "img" does not resolve`,
	}, details)
}

func TestCheck_CleanRoot(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "assets/JS/Closure.md", "---\ntitle: Closure\n---\nBody linking [scope](Scope.md#lexical).\n")
	writeDoc(t, root, "assets/JS/Scope.md", "# Scope\n\n![diagram](img/scope.png)\n")
	writeDoc(t, root, "assets/JS/img/scope.png", "png")
	writeDoc(t, root, "assets/Vue/Router.md", "# Router\n\n[home](../../index.md) [anchor](#x) [ext](https://router.vuejs.org)\n")
	writeDoc(t, root, "index.md", "# Home\n")

	inv, err := Scan(root)
	require.NoError(t, err)
	report := Check(testSite(t), inv)

	assert.Empty(t, report.Findings)
	assert.False(t, report.Failed(true))
}

func TestReport_FailedStrict(t *testing.T) {
	r := Report{Findings: []Finding{{Kind: FindingOrphan, Path: "assets/x.md"}, {Kind: FindingTitleMismatch}}}
	assert.False(t, r.Failed(false))
	assert.True(t, r.Failed(true))
	assert.Equal(t, "orphan assets/x.md", r.Findings[0].String())
}

func TestScaffold(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "assets/JS/Scope.md", "# hand written\n")
	cfg := testSite(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	created, err := Scaffold(cfg, root, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/JS/Closure.md", "assets/Vue/Router.md"}, created)

	// #nosec G304 -- test reads a file under t.TempDir().
	existing, err := os.ReadFile(filepath.Join(root, "assets", "JS", "Scope.md"))
	require.NoError(t, err)
	assert.Equal(t, "# hand written\n", string(existing))

	// #nosec G304 -- test reads a file under t.TempDir().
	stubBytes, err := os.ReadFile(filepath.Join(root, "assets", "Vue", "Router.md"))
	require.NoError(t, err)
	stubText := string(stubBytes)
	assert.Contains(t, stubText, "title: Router\n")
	assert.Contains(t, stubText, "lastmod: \"2026-03-01\"\n")
	assert.Contains(t, stubText, mdfp.FingerprintField+": ")
	assert.Contains(t, stubText, "---\n# Router\n")

	ok, err := mdfp.VerifyFingerprint(stubText)
	require.NoError(t, err)
	assert.True(t, ok)

	again, err := Scaffold(cfg, root, now.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, again)

	inv, err := Scan(root)
	require.NoError(t, err)
	report := Check(cfg, inv)
	assert.Empty(t, report.Of(FindingMissing))
	assert.Empty(t, report.Of(FindingStaleFingerprint))
}

func TestCheck_StaleFingerprint(t *testing.T) {
	root := t.TempDir()
	cfg := testSite(t)
	_, err := Scaffold(cfg, root, time.Now())
	require.NoError(t, err)

	p := filepath.Join(root, "assets", "JS", "Closure.md")
	// #nosec G304 -- test reads a file under t.TempDir().
	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(p, append(raw, []byte("\nClosures capture variables.\n")...), 0o600))

	inv, err := Scan(root)
	require.NoError(t, err)
	stale := Check(cfg, inv).Of(FindingStaleFingerprint)
	require.Len(t, stale, 1)
	assert.Equal(t, "assets/JS/Closure.md", stale[0].Path)
}

func TestSameTitle(t *testing.T) {
	assert.True(t, sameTitle("VueRouter", "vuerouter"))
	assert.True(t, sameTitle(" 前端安全 ", "前端安全"))
	assert.True(t, sameTitle("Caf\u00e9", "Cafe\u0301"))
	assert.False(t, sameTitle("Promise", "Promise代码输出题"))
}

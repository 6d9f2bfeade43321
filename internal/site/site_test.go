package site

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
)

func TestSidebar_FirstSectionAndItem(t *testing.T) {
	sections := Sidebar()
	require.NotEmpty(t, sections)

	assert.Equal(t, "HTML+CSS", sections[0].Text)
	assert.Equal(t, SidebarItem{Text: "HTML", Link: "assets/HTML+CSS/HTML_Summary.md"}, sections[0].Items[0])
}

func TestSidebar_SectionOrder(t *testing.T) {
	var labels []string
	for _, s := range Sidebar() {
		labels = append(labels, s.Text)
	}
	assert.Equal(t, []string{"HTML+CSS", "JavaScript", "ES6", "Vue", "计网", "补充"}, labels)
}

func TestSidebar_ItemsNonEmptyRelativeLinks(t *testing.T) {
	for _, s := range Sidebar() {
		require.NotEmpty(t, s.Items, "section %s", s.Text)
		for _, item := range s.Items {
			assert.NotEmpty(t, item.Link)
			assert.True(t, IsDocLink(item.Link), "link %q", item.Link)
		}
	}
}

func TestSidebar_Deterministic(t *testing.T) {
	first := Sidebar()
	second := Sidebar()
	assert.Equal(t, first, second)

	// Copies are independent.
	first[0].Items[0].Text = "changed"
	assert.Equal(t, "HTML", Sidebar()[0].Items[0].Text)
	assert.Equal(t, "HTML", second[0].Items[0].Text)
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "/zz_ft_journey/", cfg.Base)
	assert.Equal(t, "ZZ_FT_Site", cfg.Title)
	assert.Equal(t, "My front-end learning journey.", cfg.Description)
	assert.Equal(t, "./images/cat_help.svg", cfg.Logo)
	assert.Equal(t, "目录", cfg.OutlineTitle)
	assert.Equal(t, Outline{Min: 2, Max: 5}, cfg.Outline)
	assert.LessOrEqual(t, cfg.Outline.Min, cfg.Outline.Max)
	assert.Equal(t, SearchLocal, cfg.Search)
	assert.Equal(t, []SocialLink{{Icon: "github", Link: "https://github.com/vuejs/vitepress"}}, cfg.SocialLinks)
	assert.Equal(t, Sidebar(), cfg.Sidebar)

	require.Len(t, cfg.Nav, 2)
	assert.True(t, cfg.Nav[0].IsGroup())
	assert.Equal(t, []NavEntry{{Text: "Home1", Link: "/"}, {Text: "Home2", Link: "/"}}, cfg.Nav[0].Items)
	assert.Equal(t, NavEntry{Text: "Examples", Link: "/markdown-examples"}, cfg.Nav[1])
}

func TestDefault_StableAcrossInvocations(t *testing.T) {
	a := MustDefault()
	b := MustDefault()
	assert.Equal(t, a, b)
	assert.Equal(t, a.Base, b.Base)
	assert.NotSame(t, a, b)
}

func TestNew_Options(t *testing.T) {
	sections := []SidebarSection{{Text: "Go", Items: []SidebarItem{{Text: "Intro", Link: "go/intro.md"}}}}
	cfg, err := New(
		WithBase("/notes/"),
		WithTitle("Notes"),
		WithDescription("d"),
		WithSearch(SearchNone),
		WithOutline(2, 3),
		WithSidebar(sections),
		WithNav([]NavEntry{{Text: "Home", Link: "/"}}),
	)
	require.NoError(t, err)

	assert.Equal(t, "/notes/", cfg.Base)
	assert.Equal(t, "Notes", cfg.Title)
	assert.Equal(t, SearchNone, cfg.Search)
	assert.False(t, cfg.Search.Enabled())
	assert.Equal(t, sections, cfg.Sidebar)

	sections[0].Text = "mutated"
	assert.Equal(t, "Go", cfg.Sidebar[0].Text)
}

func TestNew_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		violation string
	}{
		{
			name:      "outline min above max",
			opts:      []Option{WithOutline(5, 2)},
			violation: "outline.max: outline max must not be below min",
		},
		{
			name:      "outline out of range",
			opts:      []Option{WithOutline(0, 2)},
			violation: "outline.min: must be between 1 and 6, got 0",
		},
		{
			name:      "empty section",
			opts:      []Option{WithSidebar([]SidebarSection{{Text: "Empty"}})},
			violation: "sidebar[0].items: is required",
		},
		{
			name:      "empty sidebar",
			opts:      []Option{WithSidebar([]SidebarSection{})},
			violation: "sidebar: must have at least 1 entries",
		},
		{
			name: "absolute document link",
			opts: []Option{WithSidebar([]SidebarSection{
				{Text: "A", Items: []SidebarItem{{Text: "x", Link: "/abs/x.md"}}},
			})},
			violation: `sidebar[0].items[0].link: "/abs/x.md" is not a relative .md document path`,
		},
		{
			name:      "base without trailing slash",
			opts:      []Option{WithBase("/zz_ft_journey")},
			violation: `base: must end with "/"`,
		},
		{
			name:      "unknown search provider",
			opts:      []Option{WithSearch(SearchProvider("elastic"))},
			violation: `search: unknown search provider "elastic"`,
		},
		{
			name:      "nav entry with neither link nor items",
			opts:      []Option{WithNav([]NavEntry{{Text: "Dangling"}})},
			violation: "nav[0]: needs a link or items",
		},
		{
			name: "nested dropdown",
			opts: []Option{WithNav([]NavEntry{{Text: "A", Items: []NavEntry{
				{Text: "B", Items: []NavEntry{{Text: "C", Link: "/c"}}},
			}}})},
			violation: "nav[0].items[0]: dropdowns cannot be nested",
		},
		{
			name: "duplicate links",
			opts: []Option{WithSidebar([]SidebarSection{
				{Text: "A", Items: []SidebarItem{{Text: "x", Link: "a/x.md"}}},
				{Text: "B", Items: []SidebarItem{{Text: "y", Link: "a/x.md"}}},
			})},
			violation: `sidebar[1].items[0].link: "a/x.md" already listed at sidebar[0].items[0].link`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, cfg)

			classified, ok := ferrors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, ferrors.CategoryValidation, classified.Category())
			violations, ok := classified.Context().GetStrings("violations")
			require.True(t, ok)
			assert.Contains(t, violations, tt.violation)
		})
	}
}

func TestIsDocLink(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"assets/JS/ES6/Proxy&Reflect.md", true},
		{"assets/HTML+CSS/HTML_Summary.md", true},
		{"", false},
		{"/assets/a.md", false},
		{"../outside.md", false},
		{"assets/../a.md", false},
		{"https://example.com/a.md", false},
		{"assets/a.html", false},
		{"assets/a.md#anchor", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDocLink(tt.link), "IsDocLink(%q)", tt.link)
	}
}

func TestClone_Independent(t *testing.T) {
	orig := MustDefault()
	cp := orig.Clone()
	require.Equal(t, orig, cp)

	cp.Sidebar[0].Items[0].Link = "changed.md"
	cp.Nav[0].Items[0].Text = "changed"
	cp.Head[0].Attrs["href"] = "changed"

	assert.Equal(t, "assets/HTML+CSS/HTML_Summary.md", orig.Sidebar[0].Items[0].Link)
	assert.Equal(t, "Home1", orig.Nav[0].Items[0].Text)
	assert.Equal(t, "./images/cat_help.svg", orig.Head[0].Attrs["href"])
}

func TestLinksAndSection(t *testing.T) {
	cfg := MustDefault()

	links := cfg.Links()
	assert.Len(t, links, 25)
	assert.Equal(t, "assets/HTML+CSS/HTML_Summary.md", links[0])
	assert.Equal(t, "assets/CrossDomain.md", links[len(links)-1])

	vue, ok := cfg.Section("Vue")
	require.True(t, ok)
	assert.Len(t, vue.Items, 7)

	_, ok = cfg.Section("Rust")
	assert.False(t, ok)
}

func TestOutline_Serialization(t *testing.T) {
	data, err := json.Marshal(Outline{Min: 2, Max: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `[2,5]`, string(data))

	var o Outline
	require.NoError(t, json.Unmarshal([]byte(`3`), &o))
	assert.Equal(t, Outline{Min: 3, Max: 3}, o)

	out, err := yaml.Marshal(map[string]Outline{"outline": {Min: 2, Max: 5}})
	require.NoError(t, err)
	assert.Equal(t, "outline: [2, 5]\n", string(out))

	require.NoError(t, yaml.Unmarshal([]byte("[1, 4]"), &o))
	assert.Equal(t, Outline{Min: 1, Max: 4}, o)

	assert.Error(t, yaml.Unmarshal([]byte("[1, 2, 3]"), &o))
}

func TestConfig_YAMLDecodeNormalizesSearch(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte("search: ' Algolia '\n"), &cfg))
	assert.Equal(t, SearchAlgolia, cfg.Search)

	err := yaml.Unmarshal([]byte("search: elastic\n"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid search provider")
}

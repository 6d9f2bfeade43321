// Package site defines the learning-notes site configuration: metadata,
// top navigation and sidebar, built once and validated at construction.
package site

import (
	"maps"
	"slices"
)

const (
	// DefaultBase is the sub-path the site is deployed under.
	DefaultBase        = "/zz_ft_journey/"
	DefaultTitle       = "ZZ_FT_Site"
	DefaultDescription = "My front-end learning journey."
	iconPath           = "./images/cat_help.svg"

	// AssetsDir is the content-root directory holding the note documents.
	AssetsDir = "assets"
)

// Option customizes a Config before validation.
type Option func(*Config)

func WithBase(base string) Option { return func(c *Config) { c.Base = base } }

func WithTitle(title string) Option { return func(c *Config) { c.Title = title } }

func WithDescription(desc string) Option { return func(c *Config) { c.Description = desc } }

func WithSearch(p SearchProvider) Option { return func(c *Config) { c.Search = p } }

func WithOutline(minLevel, maxLevel int) Option {
	return func(c *Config) { c.Outline = Outline{Min: minLevel, Max: maxLevel} }
}

// WithSidebar replaces the sidebar. The sections are copied.
func WithSidebar(sections []SidebarSection) Option {
	return func(c *Config) { c.Sidebar = cloneSections(sections) }
}

// WithNav replaces the top navigation. The entries are copied.
func WithNav(entries []NavEntry) Option {
	return func(c *Config) { c.Nav = cloneNav(entries) }
}

// Default returns the site configuration with the built-in sidebar.
func Default() (*Config, error) {
	return New()
}

// MustDefault is Default for process start-up, where an invalid built-in
// configuration is a programming error.
func MustDefault() *Config {
	cfg, err := Default()
	if err != nil {
		panic(err)
	}
	return cfg
}

// New builds the default configuration, applies opts, and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := defaults()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Base:        DefaultBase,
		Title:       DefaultTitle,
		Description: DefaultDescription,
		Head: []HeadTag{
			{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": iconPath}},
		},
		Logo:         iconPath,
		OutlineTitle: "目录",
		Outline:      Outline{Min: 2, Max: 5},
		Nav: []NavEntry{
			{Text: "Home", Items: []NavEntry{
				{Text: "Home1", Link: "/"},
				{Text: "Home2", Link: "/"},
			}},
			{Text: "Examples", Link: "/markdown-examples"},
		},
		Sidebar: Sidebar(),
		SocialLinks: []SocialLink{
			{Icon: "github", Link: "https://github.com/vuejs/vitepress"},
		},
		Search: SearchLocal,
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	if c.Head != nil {
		out.Head = make([]HeadTag, len(c.Head))
		for i, h := range c.Head {
			out.Head[i] = HeadTag{Tag: h.Tag, Attrs: maps.Clone(h.Attrs)}
		}
	}
	out.Nav = cloneNav(c.Nav)
	out.Sidebar = cloneSections(c.Sidebar)
	out.SocialLinks = slices.Clone(c.SocialLinks)
	return &out
}

// Links returns every sidebar document link in display order.
func (c *Config) Links() []string {
	var links []string
	for _, s := range c.Sidebar {
		for _, item := range s.Items {
			links = append(links, item.Link)
		}
	}
	return links
}

// Section looks up a sidebar section by its label.
func (c *Config) Section(text string) (SidebarSection, bool) {
	for _, s := range c.Sidebar {
		if s.Text == text {
			return cloneSections([]SidebarSection{s})[0], true
		}
	}
	return SidebarSection{}, false
}

func cloneNav(in []NavEntry) []NavEntry {
	if in == nil {
		return nil
	}
	out := make([]NavEntry, len(in))
	for i, n := range in {
		out[i] = NavEntry{Text: n.Text, Link: n.Link, Items: cloneNav(n.Items)}
	}
	return out
}

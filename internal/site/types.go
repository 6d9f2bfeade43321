package site

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zzft/ftsite/internal/foundation/normalization"
)

// Config is the aggregate site description handed to the static site
// generator: metadata, top navigation, sidebar and theme options.
type Config struct {
	Base         string           `yaml:"base" json:"base" validate:"required,startswith=/,endswith=/"`
	Title        string           `yaml:"title" json:"title" validate:"required"`
	Description  string           `yaml:"description,omitempty" json:"description,omitempty"`
	Head         []HeadTag        `yaml:"head,omitempty" json:"head,omitempty" validate:"dive"`
	Logo         string           `yaml:"logo,omitempty" json:"logo,omitempty" validate:"omitempty,assetpath"`
	OutlineTitle string           `yaml:"outline_title,omitempty" json:"outlineTitle,omitempty"`
	Outline      Outline          `yaml:"outline" json:"outline"`
	Nav          []NavEntry       `yaml:"nav,omitempty" json:"nav,omitempty" validate:"dive"`
	Sidebar      []SidebarSection `yaml:"sidebar" json:"sidebar" validate:"required,min=1,dive"`
	SocialLinks  []SocialLink     `yaml:"social_links,omitempty" json:"socialLinks,omitempty" validate:"dive"`
	Search       SearchProvider   `yaml:"search" json:"search" validate:"searchprovider"`
}

// NavEntry is a top navigation item: a direct link, or a dropdown group of
// sub-entries when Items is set.
type NavEntry struct {
	Text  string     `yaml:"text" json:"text" validate:"required"`
	Link  string     `yaml:"link,omitempty" json:"link,omitempty" validate:"omitempty,navlink"`
	Items []NavEntry `yaml:"items,omitempty" json:"items,omitempty" validate:"dive"`
}

// IsGroup reports whether the entry is a dropdown rather than a link.
func (n NavEntry) IsGroup() bool { return len(n.Items) > 0 }

// SidebarSection is a labelled group of document links. Item order is the
// on-page display order.
type SidebarSection struct {
	Text  string        `yaml:"text" json:"text" validate:"required"`
	Items []SidebarItem `yaml:"items" json:"items" validate:"required,min=1,dive"`
}

// SidebarItem links a label to a document path relative to the content root.
type SidebarItem struct {
	Text string `yaml:"text" json:"text" validate:"required"`
	Link string `yaml:"link" json:"link" validate:"required,doclink"`
}

// SocialLink is an icon link rendered in the navigation bar.
type SocialLink struct {
	Icon string `yaml:"icon" json:"icon" validate:"required"`
	Link string `yaml:"link" json:"link" validate:"required,http_url"`
}

// HeadTag is an extra element injected into every page's <head>.
type HeadTag struct {
	Tag   string            `yaml:"tag" json:"tag" validate:"required,oneof=link meta script style"`
	Attrs map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

// Outline is the range of heading levels listed in the on-page outline.
// It serializes as the two-element array [min, max].
type Outline struct {
	Min int `yaml:"min" json:"min" validate:"gte=1,lte=6"`
	Max int `yaml:"max" json:"max" validate:"gte=1,lte=6,gtefield=Min"`
}

// Contains reports whether heading level h is shown in the outline.
func (o Outline) Contains(h int) bool { return h >= o.Min && h <= o.Max }

func (o Outline) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{o.Min, o.Max})
}

func (o *Outline) UnmarshalJSON(data []byte) error {
	var levels []int
	if err := json.Unmarshal(data, &levels); err != nil {
		var single int
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return fmt.Errorf("outline must be a level or [min, max]: %w", err)
		}
		levels = []int{single}
	}
	return o.fromLevels(levels)
}

func (o Outline) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, level := range []int{o.Min, o.Max} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(level)})
	}
	return node, nil
}

func (o *Outline) UnmarshalYAML(value *yaml.Node) error {
	var levels []int
	switch value.Kind {
	case yaml.ScalarNode:
		var single int
		if err := value.Decode(&single); err != nil {
			return fmt.Errorf("outline: %w", err)
		}
		levels = []int{single}
	default:
		if err := value.Decode(&levels); err != nil {
			return fmt.Errorf("outline: %w", err)
		}
	}
	return o.fromLevels(levels)
}

func (o *Outline) fromLevels(levels []int) error {
	switch len(levels) {
	case 1:
		o.Min, o.Max = levels[0], levels[0]
	case 2:
		o.Min, o.Max = levels[0], levels[1]
	default:
		return fmt.Errorf("outline must have one or two levels, got %d", len(levels))
	}
	return nil
}

// SearchProvider selects the site search backend.
type SearchProvider string

const (
	SearchLocal   SearchProvider = "local"
	SearchAlgolia SearchProvider = "algolia"
	SearchNone    SearchProvider = "none"
)

var searchProviderNormalizer = normalization.NewNormalizer("search provider", map[string]SearchProvider{
	"local":   SearchLocal,
	"algolia": SearchAlgolia,
	"none":    SearchNone,
}, SearchLocal)

// ParseSearchProvider normalizes raw; blank input selects local search.
func ParseSearchProvider(raw string) (SearchProvider, error) {
	return searchProviderNormalizer.Parse(raw)
}

// Valid reports whether p is a known provider.
func (p SearchProvider) Valid() bool { return searchProviderNormalizer.IsValid(p) }

// Enabled reports whether the site has search at all.
func (p SearchProvider) Enabled() bool { return p != SearchNone }

func (p SearchProvider) String() string { return string(p) }

func (p *SearchProvider) UnmarshalText(text []byte) error {
	parsed, err := ParseSearchProvider(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

package config

import (
	"github.com/zzft/ftsite/internal/site"
)

// SiteOverrides replaces selected constants of the built-in site
// configuration. Empty fields keep the built-in value.
type SiteOverrides struct {
	Base        string        `yaml:"base,omitempty"`
	Title       string        `yaml:"title,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Search      string        `yaml:"search,omitempty"`
	Outline     *site.Outline `yaml:"outline,omitempty"`
}

// DefaultSiteOverrides mirrors the built-in constants, for `init`.
func DefaultSiteOverrides() SiteOverrides {
	return SiteOverrides{
		Base:        site.DefaultBase,
		Title:       site.DefaultTitle,
		Description: site.DefaultDescription,
		Search:      string(site.SearchLocal),
	}
}

func (o SiteOverrides) searchProvider() (site.SearchProvider, error) {
	return site.ParseSearchProvider(o.Search)
}

// SiteConfig builds the validated site configuration with overrides applied.
func (c *Config) SiteConfig() (*site.Config, error) {
	var opts []site.Option
	o := c.Site
	if o.Base != "" {
		opts = append(opts, site.WithBase(o.Base))
	}
	if o.Title != "" {
		opts = append(opts, site.WithTitle(o.Title))
	}
	if o.Description != "" {
		opts = append(opts, site.WithDescription(o.Description))
	}
	if o.Search != "" {
		p, err := o.searchProvider()
		if err != nil {
			return nil, err
		}
		opts = append(opts, site.WithSearch(p))
	}
	if o.Outline != nil {
		opts = append(opts, site.WithOutline(o.Outline.Min, o.Outline.Max))
	}
	return site.New(opts...)
}

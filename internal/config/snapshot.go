package config

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of the output-affecting configuration
// fields. Format order is irrelevant; logging settings are excluded.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) { h.Write([]byte(strings.Join(parts, "="))); h.Write([]byte{0}) }

	w("content.root", c.Content.Root)
	w("output.directory", c.Output.Directory)
	formats := make([]string, 0, len(c.Output.Formats))
	for _, f := range c.Output.Formats {
		formats = append(formats, string(f))
	}
	slices.Sort(formats)
	w("output.formats", strings.Join(formats, ","))

	w("site.base", c.Site.Base)
	w("site.title", c.Site.Title)
	w("site.description", c.Site.Description)
	w("site.search", strings.ToLower(strings.TrimSpace(c.Site.Search)))
	if c.Site.Outline != nil {
		w("site.outline", strconv.Itoa(c.Site.Outline.Min), strconv.Itoa(c.Site.Outline.Max))
	}
	return hex.EncodeToString(h.Sum(nil))
}

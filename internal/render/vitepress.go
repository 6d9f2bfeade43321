package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
	"github.com/zzft/ftsite/internal/site"
)

// sidebarRef stands in for the imported sidebar binding in config.mjs.
const sidebarRef = "__ftsite_sidebar__"

type vitePressConfig struct {
	Base        string         `json:"base"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Head        [][]any        `json:"head,omitempty"`
	ThemeConfig vitePressTheme `json:"themeConfig"`
}

type vitePressTheme struct {
	Logo         string            `json:"logo,omitempty"`
	OutlineTitle string            `json:"outlineTitle,omitempty"`
	Outline      site.Outline      `json:"outline"`
	Nav          []site.NavEntry   `json:"nav,omitempty"`
	Sidebar      any               `json:"sidebar"`
	SocialLinks  []site.SocialLink `json:"socialLinks,omitempty"`
	Search       *vitePressSearch  `json:"search,omitempty"`
}

type vitePressSearch struct {
	Provider site.SearchProvider `json:"provider"`
}

func newVitePressConfig(cfg *site.Config) vitePressConfig {
	vc := vitePressConfig{
		Base:        cfg.Base,
		Title:       cfg.Title,
		Description: cfg.Description,
		ThemeConfig: vitePressTheme{
			Logo:         cfg.Logo,
			OutlineTitle: cfg.OutlineTitle,
			Outline:      cfg.Outline,
			Nav:          cfg.Nav,
			Sidebar:      cfg.Sidebar,
			SocialLinks:  cfg.SocialLinks,
		},
	}
	for _, h := range cfg.Head {
		attrs := h.Attrs
		if attrs == nil {
			attrs = map[string]string{}
		}
		vc.Head = append(vc.Head, []any{h.Tag, attrs})
	}
	if cfg.Search.Enabled() {
		vc.ThemeConfig.Search = &vitePressSearch{Provider: cfg.Search}
	}
	return vc
}

// VitePress renders cfg as a JSON document shaped like VitePress's defineConfig argument.
func VitePress(cfg *site.Config) ([]byte, error) {
	return marshalJSON(newVitePressConfig(cfg))
}

// VitePressModules renders config.mjs and the sidebar.mjs module it imports.
func VitePressModules(cfg *site.Config) (configModule, sidebarModule []byte, err error) {
	sidebarJSON, err := marshalJSON(cfg.Sidebar)
	if err != nil {
		return nil, nil, err
	}
	var sb bytes.Buffer
	sb.WriteString("export const sidebar = ")
	sb.Write(sidebarJSON)

	vc := newVitePressConfig(cfg)
	vc.ThemeConfig.Sidebar = sidebarRef
	cfgJSON, err := marshalJSON(vc)
	if err != nil {
		return nil, nil, err
	}
	quotedRef, _ := json.Marshal(sidebarRef)
	cfgJSON = bytes.Replace(cfgJSON, quotedRef, []byte("sidebar"), 1)

	var cb bytes.Buffer
	cb.WriteString("import { defineConfig } from 'vitepress'\n")
	cb.WriteString("import { sidebar } from './sidebar.mjs'\n\n")
	cb.WriteString("export default defineConfig(")
	cb.Write(bytes.TrimSuffix(cfgJSON, []byte("\n")))
	cb.WriteString(")\n")
	return cb.Bytes(), sb.Bytes(), nil
}

// marshalJSON indents with two spaces and leaves '&' and '<' unescaped;
// document paths such as "Proxy&Reflect.md" must survive verbatim.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, ferrors.InternalError(fmt.Sprintf("failed to marshal %T", v)).WithCause(err).Build()
	}
	return buf.Bytes(), nil
}

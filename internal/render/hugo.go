package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
	"github.com/zzft/ftsite/internal/site"
)

// menuEntry is a Hugo menu item. Hugo sorts menus by weight, so weights
// carry the declared order.
type menuEntry struct {
	Identifier string         `yaml:"identifier"`
	Name       string         `yaml:"name"`
	URL        string         `yaml:"url,omitempty"`
	PageRef    string         `yaml:"pageRef,omitempty"`
	Parent     string         `yaml:"parent,omitempty"`
	Weight     int            `yaml:"weight"`
	Params     map[string]any `yaml:"params,omitempty"`
}

// Hugo renders cfg as a hugo.yaml site configuration: nav becomes
// menu.main, the sidebar becomes menu.sidebar.
func Hugo(cfg *site.Config) ([]byte, error) {
	// Phase 1: core fields
	params := map[string]any{
		"description": cfg.Description,
	}
	root := map[string]any{
		"baseURL":      cfg.Base,
		"title":        cfg.Title,
		"languageCode": "en",
		"markup": map[string]any{
			"goldmark": map[string]any{"renderer": map[string]any{"unsafe": true}},
			"tableOfContents": map[string]any{
				"startLevel": cfg.Outline.Min,
				"endLevel":   cfg.Outline.Max,
				"ordered":    false,
			},
		},
		"params": params,
	}

	// Phase 2: theme params
	if cfg.Logo != "" {
		params["logo"] = cfg.Logo
	}
	if cfg.OutlineTitle != "" {
		params["outlineTitle"] = cfg.OutlineTitle
	}
	if icons := headIcons(cfg.Head); len(icons) > 0 {
		params["favicons"] = icons
	}
	params["search"] = hugoSearch(cfg.Search)
	if cfg.Search == site.SearchLocal {
		root["outputs"] = map[string]any{"home": []string{"HTML", "RSS", "JSON"}}
	}

	// Phase 3: menus
	root["menu"] = map[string]any{
		"main":    mainMenu(cfg),
		"sidebar": sidebarMenu(cfg.Sidebar),
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, ferrors.InternalError("failed to marshal Hugo config").WithCause(err).Build()
	}
	return data, nil
}

func hugoSearch(p site.SearchProvider) map[string]any {
	switch p {
	case site.SearchLocal:
		return map[string]any{"enable": true, "type": "flexsearch"}
	case site.SearchAlgolia:
		return map[string]any{"enable": true, "type": "algolia"}
	default:
		return map[string]any{"enable": false}
	}
}

func headIcons(head []site.HeadTag) []string {
	var icons []string
	for _, h := range head {
		if h.Tag == "link" && strings.Contains(h.Attrs["rel"], "icon") && h.Attrs["href"] != "" {
			icons = append(icons, h.Attrs["href"])
		}
	}
	return icons
}

func mainMenu(cfg *site.Config) []menuEntry {
	var entries []menuEntry
	for i, nav := range cfg.Nav {
		id := fmt.Sprintf("nav-%d", i+1)
		entry := menuEntry{Identifier: id, Name: nav.Text, Weight: (i + 1) * 10}
		setTarget(&entry, nav.Link)
		entries = append(entries, entry)
		for j, child := range nav.Items {
			c := menuEntry{
				Identifier: fmt.Sprintf("%s-%d", id, j+1),
				Name:       child.Text,
				Parent:     id,
				Weight:     j + 1,
			}
			setTarget(&c, child.Link)
			entries = append(entries, c)
		}
	}
	// Social links trail the navigation, as in the generated docbuilder menus.
	for i, s := range cfg.SocialLinks {
		entries = append(entries, menuEntry{
			Identifier: fmt.Sprintf("social-%d-%s", i+1, s.Icon),
			Name:       socialName(s.Icon),
			URL:        s.Link,
			Weight:     90 + i,
			Params:     map[string]any{"icon": s.Icon},
		})
	}
	return entries
}

func sidebarMenu(sections []site.SidebarSection) []menuEntry {
	var entries []menuEntry
	for i, s := range sections {
		id := fmt.Sprintf("sidebar-%d", i+1)
		entries = append(entries, menuEntry{Identifier: id, Name: s.Text, Weight: i + 1})
		for j, item := range s.Items {
			entries = append(entries, menuEntry{
				Identifier: fmt.Sprintf("%s-%d", id, j+1),
				Name:       item.Text,
				PageRef:    "/" + item.Link,
				Parent:     id,
				Weight:     j + 1,
			})
		}
	}
	return entries
}

// setTarget routes site paths through pageRef and external links through url.
func setTarget(e *menuEntry, link string) {
	switch {
	case link == "":
	case strings.HasPrefix(link, "http://"), strings.HasPrefix(link, "https://"):
		e.URL = link
	default:
		e.PageRef = link
	}
}

func socialName(icon string) string {
	switch icon {
	case "github":
		return "GitHub"
	case "":
		return "Link"
	default:
		return cases.Title(language.Und, cases.NoLower).String(icon)
	}
}

// Package render serializes the site configuration into the files external
// static site generators load.
package render

import (
	"fmt"

	"github.com/zzft/ftsite/internal/config"
	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
	"github.com/zzft/ftsite/internal/site"
)

// File is one emitted configuration file, named relative to the output directory.
type File struct {
	Name   string
	Format config.OutputFormat
	Data   []byte
}

// Files renders cfg in the given format.
func Files(cfg *site.Config, format config.OutputFormat) ([]File, error) {
	switch format {
	case config.FormatVitePressJSON:
		data, err := VitePress(cfg)
		if err != nil {
			return nil, err
		}
		return []File{{Name: "config.json", Format: format, Data: data}}, nil
	case config.FormatVitePressMJS:
		cfgModule, sidebarModule, err := VitePressModules(cfg)
		if err != nil {
			return nil, err
		}
		return []File{
			{Name: "config.mjs", Format: format, Data: cfgModule},
			{Name: "sidebar.mjs", Format: format, Data: sidebarModule},
		}, nil
	case config.FormatHugo:
		data, err := Hugo(cfg)
		if err != nil {
			return nil, err
		}
		return []File{{Name: "hugo.yaml", Format: format, Data: data}}, nil
	default:
		return nil, ferrors.RenderError(fmt.Sprintf("unsupported output format %q", format)).Build()
	}
}

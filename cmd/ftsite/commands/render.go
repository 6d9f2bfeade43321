package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/zzft/ftsite/internal/config"
	"github.com/zzft/ftsite/internal/render"
	"github.com/zzft/ftsite/internal/site"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Output string   `short:"o" help:"Output directory (defaults to output.directory from config)"`
	Format []string `short:"f" help:"Formats to write: vitepress-json, vitepress-mjs, hugo (repeatable; defaults to output.formats)"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, siteCfg, err := root.load()
	if err != nil {
		return err
	}
	formats, err := resolveFormats(r.Format, cfg)
	if err != nil {
		return err
	}
	return renderTo(g.out(), siteCfg, ResolveOutputDir(r.Output, cfg), formats)
}

func renderTo(w io.Writer, siteCfg *site.Config, dir string, formats []config.OutputFormat) error {
	results, err := render.NewWriter(dir, slog.Default()).Write(siteCfg, formats)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprintf(w, "%-9s %s\n", res.Outcome, res.Path)
	}
	return nil
}

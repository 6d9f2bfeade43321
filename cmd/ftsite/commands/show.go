package commands

import (
	"fmt"

	"github.com/zzft/ftsite/internal/render"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `short:"f" default:"vitepress-json" help:"Format to print: vitepress-json, vitepress-mjs or hugo"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	cfg, siteCfg, err := root.load()
	if err != nil {
		return err
	}
	formats, err := resolveFormats([]string{s.Format}, cfg)
	if err != nil {
		return err
	}

	files, err := render.Files(siteCfg, formats[0])
	if err != nil {
		return err
	}
	out := g.out()
	for i, f := range files {
		if len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "// %s\n", f.Name)
		}
		if _, err := out.Write(f.Data); err != nil {
			return err
		}
	}
	return nil
}

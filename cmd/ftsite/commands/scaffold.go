package commands

import (
	"fmt"
	"time"

	"github.com/zzft/ftsite/internal/docs"
)

// ScaffoldCmd implements the 'scaffold' command.
type ScaffoldCmd struct{}

func (s *ScaffoldCmd) Run(g *Global, root *CLI) error {
	cfg, siteCfg, err := root.load()
	if err != nil {
		return err
	}

	created, err := docs.Scaffold(siteCfg, cfg.Content.Root, time.Now())
	out := g.out()
	for _, rel := range created {
		fmt.Fprintf(out, "created %s\n", rel)
	}
	if err != nil {
		return classifyDocsErr(err, cfg.Content.Root)
	}
	if len(created) == 0 {
		fmt.Fprintln(out, "nothing to scaffold: every sidebar entry has a document")
	}
	return nil
}

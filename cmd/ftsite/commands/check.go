package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/zzft/ftsite/internal/docs"
	derrors "github.com/zzft/ftsite/internal/docs/errors"
	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Strict bool `help:"Also fail on orphan documents and broken links"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, siteCfg, err := root.load()
	if err != nil {
		return err
	}

	inv, err := docs.Scan(cfg.Content.Root)
	if err != nil {
		return classifyDocsErr(err, cfg.Content.Root)
	}
	report := docs.Check(siteCfg, inv)

	printReport(g.out(), report, inv.Len(), root.Verbose)

	if !report.Failed(c.Strict) {
		return nil
	}
	b := ferrors.DocsError("documentation check failed").
		WithContextMap(ferrors.ErrorContext{
			"missing": len(report.Of(docs.FindingMissing)),
			"strict":  c.Strict,
		})
	if !report.Failed(false) {
		// Only warnings, promoted by --strict.
		b = b.Warning()
	}
	return b.Build()
}

func printReport(out io.Writer, report docs.Report, documents int, verbose bool) {
	for _, f := range report.Findings {
		if f.Kind.Severity() == docs.SeverityInfo && !verbose {
			continue
		}
		fmt.Fprintf(out, "%-7s %s\n", f.Kind.Severity(), f)
	}
	fmt.Fprintf(out, "checked %d sidebar entries against %d documents: %d errors, %d warnings, %d notes\n",
		report.Checked, documents,
		report.Count(docs.SeverityError), report.Count(docs.SeverityWarning), report.Count(docs.SeverityInfo))
}

func classifyDocsErr(err error, root string) error {
	b := ferrors.DocsError("failed to inspect content root")
	if errors.Is(err, derrors.ErrContentRootNotFound) {
		b = ferrors.NotFoundError("content root not found")
	}
	return b.WithCause(err).WithContext("path", root).Build()
}

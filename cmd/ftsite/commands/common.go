package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/zzft/ftsite/internal/config"
	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
	"github.com/zzft/ftsite/internal/site"
)

// Global carries state shared by every command.
type Global struct {
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"ftsite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render   RenderCmd   `cmd:"" help:"Write the site configuration files for the static site generators"`
	Show     ShowCmd     `cmd:"" help:"Print one rendered configuration format to stdout"`
	Check    CheckCmd    `cmd:"" help:"Compare the sidebar with the documents under the content root"`
	Scaffold ScaffoldCmd `cmd:"" help:"Create stub documents for sidebar entries that do not exist yet"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Watch    WatchCmd    `cmd:"" help:"Render, then re-render whenever the config or documents change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// load reads the tool configuration and builds the site configuration from
// it. The logger is rebuilt from the logging section.
func (c *CLI) load() (*config.Config, *site.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(cfg.Logging.NewLogger(os.Stderr, c.Verbose))

	siteCfg, err := cfg.SiteConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, siteCfg, nil
}

// ResolveOutputDir determines the output directory. The CLI flag wins over config.
func ResolveOutputDir(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" {
		return cliOutput
	}
	return cfg.Output.Directory
}

// resolveFormats parses CLI format names, falling back to the configured list.
func resolveFormats(names []string, cfg *config.Config) ([]config.OutputFormat, error) {
	if len(names) == 0 {
		return cfg.Output.Formats, nil
	}
	formats := make([]config.OutputFormat, 0, len(names))
	for _, n := range names {
		f, err := config.ParseOutputFormat(n)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryValidation, "invalid --format").Build()
		}
		formats = append(formats, f)
	}
	return formats, nil
}

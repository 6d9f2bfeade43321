package commands

import (
	"context"
	"io"
	"log/slog"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/zzft/ftsite/internal/config"
	"github.com/zzft/ftsite/internal/docs"
	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
	"github.com/zzft/ftsite/internal/logfields"
	"github.com/zzft/ftsite/internal/site"
	"github.com/zzft/ftsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output   string        `short:"o" help:"Output directory (defaults to output.directory from config)"`
	Debounce time.Duration `default:"500ms" help:"Quiet period before reacting to changes"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

// watchSession holds what the last render was based on.
type watchSession struct {
	cmd      *WatchCmd
	root     *CLI
	out      io.Writer
	snapshot string
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, siteCfg, err := root.load()
	if err != nil {
		return err
	}
	s := &watchSession{cmd: w, root: root, out: g.out()}
	if err := s.render(cfg, siteCfg); err != nil {
		return err
	}

	// A missing content root is picked up once it is created.
	watcher, err := watch.New(root.Config, cfg.Content.Root, w.Debounce, s.onChange)
	if err != nil {
		return ferrors.RuntimeError("failed to start watcher").WithCause(err).Build()
	}
	if err := watcher.Run(ctx); err != nil {
		return ferrors.RuntimeError("file watcher failed").WithCause(err).Build()
	}
	return nil
}

func (s *watchSession) render(cfg *config.Config, siteCfg *site.Config) error {
	if err := renderTo(s.out, siteCfg, ResolveOutputDir(s.cmd.Output, cfg), cfg.Output.Formats); err != nil {
		return err
	}
	s.snapshot = cfg.Snapshot()
	return nil
}

// onChange re-renders when the output-affecting configuration changed and
// re-checks the documents when Markdown files changed.
func (s *watchSession) onChange(_ context.Context, changed []string) error {
	runID := uuid.NewString()
	cfg, siteCfg, err := s.root.load()
	if err != nil {
		if ferrors.HasCategory(err, ferrors.CategoryConfig) || ferrors.HasCategory(err, ferrors.CategoryValidation) {
			// The last good output stays until the file is fixed.
			slog.Warn("Configuration rejected, keeping previous output",
				logfields.RunID(runID),
				slog.String("category", string(ferrors.GetCategory(err))),
				logfields.Error(err))
			return nil
		}
		return err
	}

	if snap := cfg.Snapshot(); snap != s.snapshot {
		slog.Info("Configuration changed, re-rendering", logfields.RunID(runID), logfields.Count(len(changed)))
		if err := s.render(cfg, siteCfg); err != nil {
			return err
		}
	} else {
		slog.Debug("Configuration unchanged, skipping render", logfields.RunID(runID))
	}

	if !anyMarkdown(changed) {
		return nil
	}
	inv, err := docs.Scan(cfg.Content.Root)
	if err != nil {
		return classifyDocsErr(err, cfg.Content.Root)
	}
	report := docs.Check(siteCfg, inv)
	slog.Info("Documents re-checked", logfields.RunID(runID), logfields.Count(len(report.Findings)))
	printReport(s.out, report, inv.Len(), s.root.Verbose)
	return nil
}

func anyMarkdown(paths []string) bool {
	for _, p := range paths {
		ext := strings.ToLower(filepath.Ext(p))
		if ext == ".md" || ext == ".markdown" {
			return true
		}
	}
	return false
}

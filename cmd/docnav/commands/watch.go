package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/lint"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Docs     string        `help:"Docs directory to check page links against"`
	Debounce time.Duration `help:"Quiet period before re-running" default:"300ms"`
	Quiet    bool          `short:"q" help:"Hide info findings"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	if root.Builtin {
		return ferrors.ValidationError("watch needs a configuration file").
			WithField("builtin").
			WithExpected("a --config path").
			Build()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher, err := watch.New(root.Config, w.Debounce, func(context.Context) { w.once(g, root) })
	if err != nil {
		return ferrors.FileSystemError("failed to start watcher").WithCause(err).Build()
	}
	if w.Docs != "" {
		if err := watcher.WatchDocs(w.Docs); err != nil {
			return ferrors.FileSystemError("failed to watch docs").
				WithContext(ferrors.ContextPath, w.Docs).
				WithCause(err).
				Build()
		}
	}

	w.once(g, root)
	return watcher.Run(ctx)
}

// once runs a single lint pass; failures are reported and watching goes on.
func (w *WatchCmd) once(g *Global, root *CLI) {
	cfg, err := loadConfig(g, root)
	if err != nil {
		ferrors.NewCLIErrorAdapter(root.Verbose, slog.Default()).Report(os.Stderr, err)
		return
	}
	if _, err := runLint(g.Out, g, cfg, root.source(), w.Docs, &lint.Config{Quiet: w.Quiet, Format: "text"}); err != nil {
		slog.Error("Lint failed", logfields.Path(root.Config), logfields.Error(err))
	}
}

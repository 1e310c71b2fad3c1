// Package commands holds the docnav subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/site"
	"git.home.luguber.info/inful/docnav/internal/version"
)

// Global is shared by every subcommand.
type Global struct {
	Fs  afero.Fs
	Out io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path" default:"${config_path}"`
	Builtin   bool             `help:"Use the built-in configuration instead of a file"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogLevel  string           `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string           `name:"log-format" help:"Log format (text or json)" default:"text"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Validate the configuration"`
	Lint     LintCmd     `cmd:"" help:"Run advisory navigation checks"`
	Sidebar  SidebarCmd  `cmd:"" help:"Show the sidebar selected for a route"`
	Export   ExportCmd   `cmd:"" help:"Write the document consumed by the site generator"`
	Init     InitCmd     `cmd:"" help:"Write a starter configuration file"`
	Watch    WatchCmd    `cmd:"" help:"Re-run lint whenever the configuration or pages change"`
}

// Vars are the interpolation variables used by the CLI tags.
func Vars() kong.Vars {
	return kong.Vars{
		"config_path": config.DefaultPath,
		"version":     version.String(),
	}
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	if _, err := config.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	slog.SetDefault(c.Logger(os.Stderr))
	return nil
}

// Logger builds the logger selected by the logging flags.
func (c *CLI) Logger(w io.Writer) *slog.Logger {
	level := config.NormalizeLogLevel(c.LogLevel).Slog()
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if config.NormalizeLogFormat(c.LogFormat) == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ExitStatus ends a run that produced its output but must still fail.
type ExitStatus int

func (s ExitStatus) Error() string { return "exit status " + strconv.Itoa(int(s)) }

// source names the configuration in messages.
func (c *CLI) source() string {
	if c.Builtin {
		return "built-in"
	}
	return c.Config
}

func loadConfig(g *Global, root *CLI) (*site.Configuration, error) {
	if root.Builtin {
		return config.Builtin()
	}
	return config.Load(g.Fs, root.Config)
}

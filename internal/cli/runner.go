package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoboard/internal/app"
	"github.com/idilsaglam/todoboard/internal/config"
	"github.com/idilsaglam/todoboard/internal/logging"
	"github.com/idilsaglam/todoboard/internal/script"
	"github.com/idilsaglam/todoboard/internal/tui"
	"github.com/idilsaglam/todoboard/internal/ui"
)

// Options carries what the root flags resolved to.
type Options struct {
	Config *config.Config
	Logger *log.Logger // stderr logger for non-interactive commands
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	if opt.Config == nil {
		opt.Config = config.Default()
	}
	if opt.Logger == nil {
		opt.Logger = logging.Discard()
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "tui":
		if len(a) != 0 {
			ui.Fail("usage: todo tui")
			return 2
		}
		return doTUI(ctx, opt)

	case "replay":
		return doReplay(a, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	ui.Println(`todo - a tiny todo board

Usage:
  todo [flags] <subcommand> [args]

Flags:
  -config <file>     TOML or YAML config (default: todoboard.toml, then user config dir)
  -theme <name>      classic | neon | mono
  -log-level <lvl>   debug | info | warn | error
  -color             force colored output
  -no-color          disable colored output

Subcommands:
  tui                        Interactive board (todo list, counter, username)
  replay [--json] <script>   Apply a JSON event script and print the final state

Examples:
  todo tui
  todo replay examples/groceries.json
  todo -theme mono replay --json examples/groceries.json`)
}

// -------------- subcommand impls ----------------

func doTUI(ctx context.Context, opt Options) int {
	logger := logging.Discard()
	if opt.Config.LogFile != "" {
		f, err := logging.OpenFile(opt.Config.LogFile)
		if err != nil {
			ui.Fail("log file: " + err.Error())
			return 1
		}
		defer f.Close()
		if logger, err = logging.New(f, opt.Config.LogOptions()); err != nil {
			ui.Fail("logger: " + err.Error())
			return 1
		}
	}

	a, err := app.New(app.OptionsFromConfig(opt.Config, logger))
	if err != nil {
		ui.Fail("init: " + err.Error())
		return 1
	}
	logger.Info("tui started", "session", a.SessionID())
	if err := tui.Run(ctx, a); err != nil && !errors.Is(err, context.Canceled) {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doReplay(args []string, opt Options) int {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	asJSON := fs.Bool("json", false, "print the final snapshot as JSON")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		ui.Fail("usage: todo replay [--json] <script.json>")
		return 2
	}
	path := fs.Arg(0)

	s, err := script.Load(path)
	if err != nil {
		ui.Fail("load script: " + err.Error())
		if errors.Is(err, script.ErrInvalidScript) {
			return 2
		}
		return 1
	}

	a, err := app.New(app.OptionsFromConfig(opt.Config, opt.Logger))
	if err != nil {
		ui.Fail("init: " + err.Error())
		return 1
	}
	n, err := s.Apply(a)
	opt.Logger.Info("replayed", "script", path, "events", n, "of", len(s.Events))
	if err != nil {
		ui.Fail("replay: " + err.Error())
		return 1
	}

	snap := a.Snapshot()
	if *asJSON {
		b, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			ui.Fail("json marshal: " + err.Error())
			return 1
		}
		ui.Println(string(b))
		return 0
	}
	lines := ui.SnapshotLines(snap)
	if s.Description != "" {
		lines = append([]string{ui.C(ui.Current().Muted, s.Description), ""}, lines...)
	}
	ui.Panel(lines)
	ui.OK(fmt.Sprintf("applied %d events", n))
	return 0
}

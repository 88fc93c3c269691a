package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/idilsaglam/todoboard/internal/cli"
	"github.com/idilsaglam/todoboard/internal/config"
	"github.com/idilsaglam/todoboard/internal/logging"
	"github.com/idilsaglam/todoboard/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to a TOML or YAML config file")
	theme := flag.String("theme", "", "output theme: classic, neon or mono")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	color := flag.Bool("color", false, "force colored output even when stdout is not a terminal")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()
	ui.SetColorForcing(*color, *noColor)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath, config.Overrides{Theme: *theme, LogLevel: *logLevel})
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(2)
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}
	logger, err := logging.New(os.Stderr, cfg.LogOptions())
	if err != nil {
		ui.Fail("logger: " + err.Error())
		os.Exit(2)
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, args, cli.Options{Config: cfg, Logger: logger})
	stop()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

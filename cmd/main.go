package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/luca-patrignani/flopstats/calculation"
	"github.com/luca-patrignani/flopstats/config"
	"github.com/luca-patrignani/flopstats/report"
	"github.com/luca-patrignani/flopstats/solverdata"
)

const usage = `usage: flopstats [summary|serve] [flags]

Summarizes solver statistics over the flops matching a texture filter.

  flopstats -p BTN,BB -a X -b 33,75 -H 1BW -s M
  flopstats serve --listen :8080
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(1)
	}
}

// run executes one command. Errors are logged before they are returned.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	command := "summary"
	if len(args) > 0 && (args[0] == "summary" || args[0] == "serve") {
		command, args = args[0], args[1:]
	}

	flags := config.NewFlags("flopstats " + command)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Only fails for unreadable files; a missing .env is fine.
	dotEnvErr := config.LoadDotEnv()
	cfg, err := flags.Config()
	if err != nil {
		newLogger(slog.LevelInfo, stderr).Error("invalid configuration", "error", err)
		return err
	}
	logger := newLogger(cfg.Level(), stderr)
	if dotEnvErr != nil {
		logger.Warn("ignoring .env", "error", dotEnvErr)
	}
	logger.Debug("configuration loaded", "data_dir", cfg.DataDir, "format", cfg.Format)

	store := solverdata.New(cfg.DataDir, solverdata.WithLogger(logger))
	switch command {
	case "serve":
		err = serve(ctx, cfg, store, logger)
	default:
		err = summary(ctx, flags.Raw(), cfg, store, stdout)
	}
	if err != nil {
		logger.Error(command+" failed", "error", err)
	}
	return err
}

func summary(ctx context.Context, raw config.RawRequest, cfg *config.Config, store *solverdata.Store, stdout io.Writer) error {
	req, err := raw.Parse()
	if err != nil {
		return err
	}
	renderer, err := report.New(cfg.Format)
	if err != nil {
		return err
	}

	res, err := calculation.BuildAllVariants(ctx, req.Betsizes, store.Source(req.Positions, req.Actions), req.Filter)
	if err != nil {
		return err
	}
	if cfg.Format == config.FormatTable {
		fmt.Fprintln(stdout, requestPanel(req))
	}
	return renderer.Render(stdout, res)
}

// newLogger returns a slog logger writing through pterm at level.
func newLogger(level slog.Level, w io.Writer) *slog.Logger {
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)).WithWriter(w))
	return slog.New(handler)
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	}
	return pterm.LogLevelError
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

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
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/frameclock/lib/clock"
	"github.com/bureau-foundation/frameclock/lib/config"
	"github.com/bureau-foundation/frameclock/lib/process"
	"github.com/bureau-foundation/frameclock/lib/scenario"
	"github.com/bureau-foundation/frameclock/lib/tui"
	"github.com/bureau-foundation/frameclock/lib/version"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		process.Fatal(err)
	}
}

// options holds the parsed command line.
type options struct {
	configPath string
	headless   bool
	simulate   bool
	frames     uint64
	reportPath string
	logOutput  string
	help       bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("frameclock", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "scenario file (YAML, JSON, or JSONC); overrides $"+config.EnvironmentVariable)
	flagSet.BoolVar(&opts.headless, "headless", false, "run the frame loop without the dashboard, logging fires to stderr")
	flagSet.BoolVar(&opts.simulate, "simulate", false, "run headless against a simulated clock (instant, deterministic)")
	flagSet.Uint64Var(&opts.frames, "frames", 0, "stop after this many frames (0: headless runs stop when no timer is active)")
	flagSet.StringVar(&opts.reportPath, "report", "", "write a CBOR run report to this path on exit")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file while the dashboard is open")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")
	flagSet.SetOutput(io.Discard)
	return flagSet
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "--version" {
		version.Fprint(stdout, "frameclock")
		return nil
	}

	var opts options
	flagSet := newFlagSet(&opts)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if opts.help {
		printHelp(stderr, flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	if opts.simulate || opts.headless {
		return runHeadless(ctx, cfg, opts, headlessLogger(stderr, level))
	}
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("the dashboard needs a terminal on stdout; use --headless or --simulate")
	}

	logger, closeLog, err := dashboardLogger(opts.logOutput, level)
	if err != nil {
		return err
	}
	defer closeLog()
	return runDashboard(ctx, cfg, opts, logger)
}

// loadConfig resolves the scenario: an explicit path wins, then the
// environment variable, then the built-in demo.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if os.Getenv(config.EnvironmentVariable) != "" {
		return config.Load()
	}
	return config.Default(), nil
}

func runHeadless(ctx context.Context, cfg *config.Config, opts options, logger *slog.Logger) error {
	source := clock.Real()
	if opts.simulate {
		source = clock.Fake(time.Unix(0, 0))
	}
	loop := scenario.New(cfg, source, logger)

	err := loop.Run(ctx, opts.frames)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted", "frames", loop.Frame())
		err = nil
	}
	return errors.Join(err, writeReport(loop, opts.reportPath, logger))
}

func runDashboard(ctx context.Context, cfg *config.Config, opts options, logger *slog.Logger) error {
	loop := scenario.New(cfg, clock.Real(), logger)
	program := tea.NewProgram(tui.NewModel(loop), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	return errors.Join(err, writeReport(loop, opts.reportPath, logger))
}

// headlessLogger logs human-readable text when w is a terminal and JSON
// when it is piped or redirected.
func headlessLogger(w io.Writer, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if isTerminal(w) {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// dashboardLogger returns a JSON logger writing to path, or a discarding
// logger when path is empty. Stderr belongs to the alternate screen.
func dashboardLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log output: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, func() { file.Close() }, nil
}

func writeReport(loop *scenario.Scenario, path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	if err := loop.WriteReport(path); err != nil {
		return err
	}
	logger.Info("report written", "path", path, "frames", loop.Frame())
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `frameclock: deferred timers driven by a frame clock.

Opens a dashboard that advances the clock and sweeps the timer
registry once per frame. Keys: j/k select, space stop/resume,
r reset, q quit.

Usage:
  frameclock [flags]

Examples:
  # Built-in demo scenario in the dashboard
  frameclock

  # Ten simulated seconds at the configured frame rate, with a report
  frameclock --simulate --frames 600 --report run.cbor

  # A scenario file, headless, until every timer has finished
  frameclock --headless --config scenario.yaml

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelpaint/main.go
// Summary: Terminal paint program entry point.
// Usage: texelpaint [-config file] [-log file] [-replay script.yaml] [-headless]

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/framegrace/texelpaint/config"
	"github.com/framegrace/texelpaint/internal/devshell"
	"github.com/framegrace/texelpaint/internal/paint"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	logPath    string
	replayPath string
	headless   bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("texelpaint", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "Config file (default: user config dir)")
	fs.StringVar(&f.logPath, "log", "", "Log file (default from config)")
	fs.StringVar(&f.replayPath, "replay", "", "YAML event script replayed before input")
	fs.BoolVar(&f.headless, "headless", false, "Use a simulation screen; requires -replay to end")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.headless && f.replayPath == "" {
		return f, errors.New("-headless needs -replay")
	}
	return f, nil
}

func run(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if f.configPath != "" {
		config.UseFile(f.configPath)
	}
	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: %v (using defaults)", err)
	}

	closeLog, err := setupLogging(f.logPath, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var script *event.Script
	if f.replayPath != "" {
		script, err = loadScript(f.replayPath)
		if err != nil {
			return err
		}
	}

	if f.headless {
		devshell.SetScreenFactory(func() (tcell.Screen, error) {
			s := tcell.NewSimulationScreen("UTF-8")
			s.SetSize(100, 32)
			return s, nil
		})
	} else if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal; use -headless with -replay")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := paint.OptionsFromConfig(cfg)
	return devshell.Run(ctx, func(uictx *core.Context, root *core.Root) error {
		paint.Build(uictx, root, opts)
		return nil
	}, devshell.Options{
		Replay:      script,
		TracePubsub: cfg.GetBool("log", "trace_pubsub", false),
	})
}

// setupLogging sends the log to a file while the terminal is in use. Logging
// goes to stderr only when it is not a terminal.
func setupLogging(path string, cfg config.Config) (func(), error) {
	if path == "" {
		path = cfg.GetString("log", "file", "")
	}
	if path == "" {
		if isatty.IsTerminal(os.Stderr.Fd()) {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	lf, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(lf)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { _ = lf.Close() }, nil
}

func loadScript(path string) (*event.Script, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer fh.Close()
	return event.LoadScript(fh)
}

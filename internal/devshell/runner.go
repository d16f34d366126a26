// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a widget tree inside a local tcell screen.
// Usage: cmd/texelpaint builds the paint layout through Run; tests swap the
// screen factory for a simulation screen.

package devshell

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpaint/texelui/app"
	"github.com/framegrace/texelpaint/texelui/backend"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
)

// Builder populates a freshly created root.
type Builder func(ctx *core.Context, root *core.Root) error

// Options tweaks a run.
type Options struct {
	// Replay is queued before the first frame.
	Replay *event.Script
	// TracePubsub logs every registry operation.
	TracePubsub bool
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run builds the tree and drives frames until the window is closed or ctx
// ends. The terminal is restored on return.
func Run(ctx context.Context, build Builder, opts Options) error {
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	be := backend.New(screen)
	if err := be.Init(); err != nil {
		return err
	}
	defer be.Fini()

	uictx := core.NewContext()
	uictx.Registry.SetTrace(opts.TracePubsub)
	root := core.NewRoot(uictx, be.Size())
	if err := build(uictx, root); err != nil {
		core.Destroy(root)
		return fmt.Errorf("build: %w", err)
	}
	if opts.Replay != nil {
		if err := opts.Replay.Enqueue(uictx.Queue); err != nil {
			core.Destroy(root)
			return err
		}
		log.Printf("Devshell: queued replay %q", opts.Replay.Name)
	}

	a := app.New(uictx, root, be)
	defer a.Close()
	return a.Run(ctx)
}

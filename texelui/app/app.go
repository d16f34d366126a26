// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/app/app.go
// Summary: Single-threaded frame loop driving the widget tree.
// Usage: One frame polls the backend into the queue, drains the queue into
// the root, renders the tree once, then shows and clears the screen.

package app

import (
	"context"
	"log"

	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
)

// App owns the root of a tree and the renderer it draws to.
type App struct {
	ctx      *core.Context
	root     *core.Root
	renderer core.Renderer

	running bool
	frames  int
}

func New(ctx *core.Context, root *core.Root, renderer core.Renderer) *App {
	if ctx == nil || root == nil || renderer == nil {
		panic("app: New requires a context, root and renderer")
	}
	return &App{ctx: ctx, root: root, renderer: renderer, running: true}
}

// Running reports whether WindowClosed has not been seen yet.
func (a *App) Running() bool { return a.running }

// Frames counts rendered frames.
func (a *App) Frames() int { return a.frames }

// Root returns the tree root.
func (a *App) Root() *core.Root { return a.root }

// Frame runs one iteration and reports whether the app keeps running.
func (a *App) Frame() bool {
	for {
		ev, ok := a.renderer.PollEvent()
		if !ok {
			break
		}
		a.ctx.Queue.Push(ev)
	}
	a.ctx.Queue.Drain(func(ev event.Event) {
		if _, closed := ev.(event.WindowClosed); closed {
			a.running = false
		}
		a.root.HandleEvent(ev)
	})
	if !a.running {
		return false
	}
	a.root.Render(a.renderer)
	a.renderer.Show()
	a.renderer.Clear()
	a.frames++
	return true
}

// Run loops until WindowClosed or ctx ends. Between frames it blocks on the
// renderer when it implements core.Waiter; renderers that cannot wait get a
// single frame.
func (a *App) Run(ctx context.Context) error {
	waiter, canWait := a.renderer.(core.Waiter)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !a.Frame() {
			log.Printf("App: window closed after %d frames", a.frames)
			return nil
		}
		if !canWait {
			return nil
		}
		if err := waiter.Wait(ctx); err != nil {
			return err
		}
	}
}

// Close destroys the tree.
func (a *App) Close() {
	if !a.root.Destroyed() {
		core.Destroy(a.root)
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/backend/tcell.go
// Summary: core.Renderer implementation on top of a tcell screen.
// Usage: The frame loop polls it without blocking and waits on it between
// frames. Images are drawn with upper half blocks, two pixels per cell.

package backend

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

const halfBlock = '▀'

// ErrClosed is returned by Wait once the screen stopped delivering events.
var ErrClosed = errors.New("backend: screen closed")

// Screen adapts a tcell.Screen to core.Renderer and core.Waiter.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	fini   sync.Once

	peeked  tcell.Event
	pending []event.Event
	buttons tcell.ButtonMask
	closed  bool
}

var (
	_ core.Renderer = (*Screen)(nil)
	_ core.Waiter   = (*Screen)(nil)
)

// New wraps screen. Call Init before drawing.
func New(screen tcell.Screen) *Screen {
	return &Screen{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
}

// Init initialises the terminal, enables the mouse and starts the event pump.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	s.screen.Clear()
	go s.pump()
	return nil
}

// Fini stops the pump and restores the terminal. Later calls do nothing.
func (s *Screen) Fini() {
	s.fini.Do(func() {
		close(s.done)
		s.screen.DisableMouse()
		s.screen.Fini()
	})
}

// Underlying exposes the wrapped screen.
func (s *Screen) Underlying() tcell.Screen { return s.screen }

func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *Screen) Size() geom.Size {
	w, h := s.screen.Size()
	return geom.Size{W: w, H: h}
}

func (s *Screen) bounds() geom.Rect { return geom.RectAt(geom.Point{}, s.Size()) }

func style(fg, bg color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Tcell()).Background(bg.Tcell())
}

func (s *Screen) DrawRect(r geom.Rect, c color.Color) {
	r = r.Intersect(s.bounds())
	st := style(c, c)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (s *Screen) DrawText(at geom.Point, t core.Text, bg color.Color) {
	st := style(t.Color, bg)
	x := at.X
	for _, r := range t.Content {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.screen.SetContent(x, at.Y, r, nil, st)
		x += w
	}
}

// DrawSprite keeps the cell background.
func (s *Screen) DrawSprite(at geom.Point, sp core.Sprite) {
	_, _, st, _ := s.screen.GetContent(at.X, at.Y)
	s.screen.SetContent(at.X, at.Y, sp.Glyph, nil, st.Foreground(sp.Color.Tcell()))
}

// DrawImage scales img to r at two pixels per cell.
func (s *Screen) DrawImage(r geom.Rect, img image.Image) {
	if r.Empty() || img == nil {
		return
	}
	px := image.NewRGBA(image.Rect(0, 0, r.W, r.H*2))
	if img.Bounds().Size() == px.Rect.Size() {
		draw.Draw(px, px.Rect, img, img.Bounds().Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(px, px.Rect, img, img.Bounds(), draw.Src, nil)
	}
	clip := r.Intersect(s.bounds())
	for y := clip.Y; y < clip.Y+clip.H; y++ {
		for x := clip.X; x < clip.X+clip.W; x++ {
			top := color.FromStd(px.RGBAAt(x-r.X, (y-r.Y)*2))
			bottom := color.FromStd(px.RGBAAt(x-r.X, (y-r.Y)*2+1))
			s.screen.SetContent(x, y, halfBlock, nil, style(top, bottom))
		}
	}
}

func (s *Screen) Show()  { s.screen.Show() }
func (s *Screen) Clear() { s.screen.Clear() }

// PollEvent returns the next translated event without blocking.
func (s *Screen) PollEvent() (event.Event, bool) {
	for {
		if len(s.pending) > 0 {
			ev := s.pending[0]
			s.pending = s.pending[1:]
			return ev, true
		}
		tev := s.peeked
		s.peeked = nil
		if tev == nil {
			select {
			case ev, ok := <-s.events:
				if !ok {
					s.closed = true
					return nil, false
				}
				tev = ev
			default:
				return nil, false
			}
		}
		s.pending = append(s.pending, s.translate(tev)...)
	}
}

// Wait blocks until an event is available or ctx ends.
func (s *Screen) Wait(ctx context.Context) error {
	if len(s.pending) > 0 || s.peeked != nil {
		return nil
	}
	if s.closed {
		return ErrClosed
	}
	select {
	case ev, ok := <-s.events:
		if !ok {
			s.closed = true
			return ErrClosed
		}
		s.peeked = ev
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/coretest/recorder.go
// Summary: In-memory Renderer that records draw calls for tests.

package coretest

import (
	"fmt"
	"image"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// Op is one recorded draw call.
type Op struct {
	Kind  string
	Rect  geom.Rect
	Text  string
	Color color.Color
}

func (o Op) String() string { return fmt.Sprintf("%s %v %q %v", o.Kind, o.Rect, o.Text, o.Color) }

// Recorder implements core.Renderer.
type Recorder struct {
	Ops    []Op
	Input  []event.Event
	Shows  int
	Clears int

	size geom.Size
}

var _ core.Renderer = (*Recorder)(nil)

// NewRecorder returns a recorder reporting the given screen size.
func NewRecorder(size geom.Size) *Recorder {
	return &Recorder{size: size}
}

func (r *Recorder) Size() geom.Size { return r.size }

func (r *Recorder) DrawRect(rect geom.Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Rect: rect, Color: c})
}

func (r *Recorder) DrawText(at geom.Point, t core.Text, bg color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", Rect: geom.Rect{X: at.X, Y: at.Y}, Text: t.Content, Color: t.Color})
}

func (r *Recorder) DrawSprite(at geom.Point, s core.Sprite) {
	r.Ops = append(r.Ops, Op{Kind: "sprite", Rect: geom.Rect{X: at.X, Y: at.Y, W: 1, H: 1}, Text: string(s.Glyph), Color: s.Color})
}

func (r *Recorder) DrawImage(rect geom.Rect, img image.Image) {
	r.Ops = append(r.Ops, Op{Kind: "image", Rect: rect})
}

// PollEvent hands out Input in order.
func (r *Recorder) PollEvent() (event.Event, bool) {
	if len(r.Input) == 0 {
		return nil, false
	}
	ev := r.Input[0]
	r.Input = r.Input[1:]
	return ev, true
}

func (r *Recorder) Show()  { r.Shows++ }
func (r *Recorder) Clear() { r.Clears++ }

// Reset drops recorded ops.
func (r *Recorder) Reset() { r.Ops = nil }

// Kinds lists the recorded op kinds in order.
func (r *Recorder) Kinds() []string {
	out := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.Kind
	}
	return out
}

// Press and Release build left-button events.
func Press(x, y int) event.MouseButton {
	return event.MouseButton{Pos: geom.Point{X: x, Y: y}, Button: event.ButtonLeft, Action: event.Pressed}
}

func Release(x, y int) event.MouseButton {
	return event.MouseButton{Pos: geom.Point{X: x, Y: y}, Button: event.ButtonLeft, Action: event.Released}
}

func Move(x, y int) event.MouseMove {
	return event.MouseMove{Pos: geom.Point{X: x, Y: y}}
}

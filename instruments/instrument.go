// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: instruments/instrument.go
// Summary: Instrument contract and the built-in non-stroke instruments.

package instruments

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/framegrace/texelpaint/texelui/color"
)

// ID names an instrument. Toolbar buttons carry it as their value.
type ID uint32

const (
	Eraser ID = iota
	Pencil
	Brush
	Dropper
	Spray
	Clear
	RectFill
)

var idNames = map[ID]string{
	Eraser: "eraser", Pencil: "pencil", Brush: "brush", Dropper: "dropper",
	Spray: "spray", Clear: "clear", RectFill: "rect",
}

func (id ID) String() string {
	if s, ok := idNames[id]; ok {
		return s
	}
	return "unknown"
}

// ParseID maps a configuration name back to an ID.
func ParseID(name string) (ID, bool) {
	for id, s := range idNames {
		if s == name {
			return id, true
		}
	}
	return 0, false
}

// Stroke is one step of an interaction in canvas pixel coordinates.
type Stroke struct {
	At        image.Point
	Last      image.Point
	Color     color.Color
	Thickness int
}

// Instrument mutates a canvas in response to a press, drags and a release.
type Instrument interface {
	Begin(canvas draw.Image, s Stroke)
	Apply(canvas draw.Image, s Stroke)
	End(canvas draw.Image, s Stroke)
}

// Previewer instruments show a shape on top of the canvas while applying.
type Previewer interface {
	Preview() (image.Rectangle, color.Color, bool)
}

func fill(canvas draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(canvas, r.Intersect(canvas.Bounds()), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

// ClearInstrument paints the whole canvas with Background on press.
type ClearInstrument struct {
	Background color.Color
}

func (c *ClearInstrument) Begin(canvas draw.Image, _ Stroke) {
	fill(canvas, canvas.Bounds(), c.Background)
}
func (c *ClearInstrument) Apply(draw.Image, Stroke) {}
func (c *ClearInstrument) End(draw.Image, Stroke)   {}

// RectInstrument drags out a rectangle and fills it on release.
type RectInstrument struct {
	origin, corner image.Point
	color          color.Color
	active         bool
}

func (r *RectInstrument) Begin(_ draw.Image, s Stroke) {
	r.origin, r.corner, r.color, r.active = s.At, s.At, s.Color, true
}

func (r *RectInstrument) Apply(_ draw.Image, s Stroke) { r.corner = s.At }

func (r *RectInstrument) End(canvas draw.Image, s Stroke) {
	r.corner = s.At
	fill(canvas, r.bounds(), s.Color)
	r.active = false
}

// bounds includes both corners.
func (r *RectInstrument) bounds() image.Rectangle {
	b := image.Rectangle{Min: r.origin, Max: r.corner}.Canon()
	b.Max = b.Max.Add(image.Pt(1, 1))
	return b
}

func (r *RectInstrument) Preview() (image.Rectangle, color.Color, bool) {
	return r.bounds(), r.color, r.active
}

// DropperInstrument samples the pixel under the pointer and hands it to
// Sample on press and while dragging.
type DropperInstrument struct {
	Sample func(color.Color)
}

func (d *DropperInstrument) Begin(canvas draw.Image, s Stroke) { d.sample(canvas, s.At) }
func (d *DropperInstrument) Apply(canvas draw.Image, s Stroke) { d.sample(canvas, s.At) }
func (d *DropperInstrument) End(draw.Image, Stroke)            {}

func (d *DropperInstrument) sample(canvas draw.Image, at image.Point) {
	if !at.In(canvas.Bounds()) || d.Sample == nil {
		return
	}
	d.Sample(color.FromStd(canvas.At(at.X, at.Y)))
}

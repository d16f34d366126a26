// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/canvas.go
// Summary: Paintable RGBA surface driven by the instrument manager.

package widgets

import (
	"image"
	"log"

	"golang.org/x/image/draw"

	"github.com/framegrace/texelpaint/instruments"
	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// Saver persists the canvas. Image codecs live outside the widget tree.
type Saver interface {
	Save(name string, img image.Image) error
}

// Loader is optionally implemented by savers that can read images back.
type Loader interface {
	Load(name string) (image.Image, error)
}

// Canvas owns a pixel buffer with one pixel per cell column and two per cell
// row, matching half-block rendering. Presses, drags and releases inside it
// drive the instrument manager.
type Canvas struct {
	core.BaseNode

	img   *image.RGBA
	tools *instruments.Manager
	saver Saver
	drag  core.Draggable
}

func NewCanvas(ctx *core.Context, r geom.Rect, bg color.Color, tools *instruments.Manager, saver Saver) *Canvas {
	c := &Canvas{tools: tools, saver: saver}
	c.Init(ctx, c)
	c.Rect = r
	c.img = image.NewRGBA(image.Rect(0, 0, max(1, r.W), max(1, r.H*2)))
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg.RGBA()), image.Point{}, draw.Src)
	c.drag = core.Draggable{
		Clickable: core.Clickable{
			Bounds:  c.Bounds,
			OnPress: func(ev event.MouseButton) { c.tools.Begin(c.img, c.pixel(ev.Pos)) },
			OnRelease: func(ev event.MouseButton, wasPressed bool) {
				if wasPressed {
					c.tools.End(c.img, c.pixel(ev.Pos))
				}
			},
		},
		OnDrag: func(_, to geom.Point) { c.tools.Apply(c.img, c.pixel(to)) },
	}
	return c
}

// Image returns the live buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// pixel maps a cell to the upper pixel of its half-block pair.
func (c *Canvas) pixel(p geom.Point) image.Point {
	local := p.Sub(c.Position())
	return image.Pt(local.X, local.Y*2)
}

func (c *Canvas) HandleEvent(ev event.Event) {
	if c.drag.Handle(ev) {
		return
	}
	if a, ok := ev.(event.CanvasAction); ok {
		c.fileAction(a)
	}
}

func (c *Canvas) fileAction(a event.CanvasAction) {
	if c.saver == nil || a.Filename == "" {
		return
	}
	switch a.Op {
	case event.CanvasSave:
		if err := c.saver.Save(a.Filename, c.img); err != nil {
			log.Printf("Canvas: save %s: %v", a.Filename, err)
			return
		}
		log.Printf("Canvas: saved %s", a.Filename)
	case event.CanvasLoad:
		l, ok := c.saver.(Loader)
		if !ok {
			return
		}
		src, err := l.Load(a.Filename)
		if err != nil {
			log.Printf("Canvas: load %s: %v", a.Filename, err)
			return
		}
		draw.ApproxBiLinear.Scale(c.img, c.img.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
}

func (c *Canvas) Render(r core.Renderer) {
	r.DrawImage(c.Rect, c.img)
	if pr, col, ok := c.tools.Preview(); ok {
		pos := c.Position()
		cells := geom.Rect{
			X: pos.X + pr.Min.X,
			Y: pos.Y + pr.Min.Y/2,
			W: pr.Dx(),
			H: max(1, (pr.Max.Y+1)/2-pr.Min.Y/2),
		}
		r.DrawRect(cells.Intersect(c.Rect), col)
	}
	c.RenderChildren(r)
}

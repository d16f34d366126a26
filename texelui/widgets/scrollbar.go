// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/scrollbar.go
// Summary: Scrollbar composed of two step buttons and a slider thumb.
// Usage: Owners subscribe to the scrollbar for Scroll events and publish
// ContainerSizeChanged to it when their content grows or shrinks.

package widgets

import (
	"math"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// ScrollbarButtonRatio is the share of the bar taken by each step button.
const ScrollbarButtonRatio = 0.1

const (
	scrollUpGlyph   = '▲'
	scrollDownGlyph = '▼'
)

// ScrollbarConfig describes a scrollbar. Viewport and Content are block
// counts (lines, rows) used to size the thumb; Step is in blocks.
type ScrollbarConfig struct {
	Rect              geom.Rect
	Color             color.Color
	ThumbColor        color.Color
	Viewport, Content int
	Step              int
	Axis              core.Axis
}

// Scrollbar forwards pointer events to its parts and turns slider moves into
// Scroll{Delta} for whoever subscribed to it.
type Scrollbar struct {
	core.BaseNode
	Color color.Color

	acc      core.AxisAccessor
	up, down *Button
	slider   *Slider
	viewport int
	content  int
	step     int
	last     float64
}

func NewScrollbar(ctx *core.Context, cfg ScrollbarConfig) *Scrollbar {
	sb := &Scrollbar{
		Color:    cfg.Color,
		acc:      cfg.Axis.Accessor(),
		viewport: max(1, cfg.Viewport),
		content:  max(1, cfg.Content),
		step:     max(1, cfg.Step),
	}
	sb.Init(ctx, sb)
	sb.Rect = cfg.Rect

	acc := sb.acc
	size := cfg.Rect.Size()
	extent, cross := acc.Extent(size), acc.CrossExtent(size)
	btn := max(1, int(math.Round(float64(extent)*ScrollbarButtonRatio)))
	origin := acc.Primary(cfg.Rect.Pos())
	second := acc.Secondary(cfg.Rect.Pos())
	btnColor := cfg.ThumbColor.Darken(PressFadeDelta / 2)

	sb.up = NewButton(ctx, geom.RectAt(acc.Point(origin, second), acc.SizeOf(btn, cross)), btnColor, ValueUp)
	sb.down = NewButton(ctx, geom.RectAt(acc.Point(origin+extent-btn, second), acc.SizeOf(btn, cross)), btnColor, ValueDown)
	upGlyph, downGlyph := scrollUpGlyph, scrollDownGlyph
	if acc.Axis == core.Horizontal {
		upGlyph, downGlyph = '◀', '▶'
	}
	sb.up.AddChild(NewSprite(ctx, sb.up.Position(), upGlyph, btnColor.Contrast()))
	sb.down.AddChild(NewSprite(ctx, sb.down.Position(), downGlyph, btnColor.Contrast()))

	lower, upper, thumb := sb.thumbGeometry()
	sb.slider = NewSlider(ctx, SliderConfig{
		Thumb: geom.RectAt(acc.Point(lower, second), acc.SizeOf(thumb, cross)),
		Color: cfg.ThumbColor,
		Lower: lower,
		Upper: upper,
		Step:  sb.sliderStep(),
		Axis:  cfg.Axis,
	})

	sb.AddChild(sb.slider)
	sb.AddChild(sb.up)
	sb.AddChild(sb.down)
	ctx.Subscribe(sb.up, sb.slider)
	ctx.Subscribe(sb.down, sb.slider)
	ctx.Subscribe(sb.slider, sb)
	return sb
}

// Slider exposes the thumb.
func (sb *Scrollbar) Slider() *Slider { return sb.slider }

// Buttons returns the step buttons.
func (sb *Scrollbar) Buttons() (up, down *Button) { return sb.up, sb.down }

// Relative returns the scroll position in [0,1].
func (sb *Scrollbar) Relative() float64 { return sb.last }

func (sb *Scrollbar) trackSpan() (start, end int) {
	upSize := sb.acc.Extent(sb.up.Rect.Size())
	start = sb.acc.Primary(sb.up.Position()) + upSize
	end = sb.acc.Primary(sb.down.Position())
	return start, max(start, end)
}

// thumbGeometry sizes the thumb from the viewport/content ratio.
func (sb *Scrollbar) thumbGeometry() (lower, upper, thumb int) {
	start, end := sb.trackSpan()
	length := end - start
	thumb = length
	if sb.content > sb.viewport {
		thumb = int(math.Round(float64(length) * float64(sb.viewport) / float64(sb.content)))
	}
	thumb = geom.Clamp(thumb, 1, max(1, length))
	return start, max(start, end-thumb), thumb
}

// sliderStep converts the block step into track cells.
func (sb *Scrollbar) sliderStep() int {
	start, end := sb.trackSpan()
	return max(1, int(math.Round(float64(sb.step)*float64(end-start)/float64(sb.content))))
}

func (sb *Scrollbar) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.MouseButton, event.MouseMove:
		sb.up.HandleEvent(ev)
		sb.down.HandleEvent(ev)
		sb.slider.HandleEvent(ev)
	case event.SliderMove:
		delta := e.Position - sb.last
		sb.last = e.Position
		sb.Context().Publish(sb, event.Scroll{Delta: delta})
	case event.ContainerSizeChanged:
		sb.content = max(1, e.BlockSize)
		lower, upper, thumb := sb.thumbGeometry()
		sb.slider.SetRange(lower, upper, thumb)
		sb.slider.Step = sb.sliderStep()
		sb.last = sb.slider.Relative()
	}
}

func (sb *Scrollbar) Render(r core.Renderer) {
	r.DrawRect(sb.Rect, sb.Color)
	sb.RenderChildren(r)
}

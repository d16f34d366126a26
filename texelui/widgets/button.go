// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/button.go
// Summary: Rectangular push button publishing ButtonPressed on activation.

package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// PressFadeDelta is how much a pressed button darkens.
const PressFadeDelta = 40

// Values carried by the step buttons of sliders and scrollbars.
const (
	ValueUp   uint32 = 0xFFFF0001
	ValueDown uint32 = 0xFFFF0002
)

// Button is a filled rectangle that darkens while pressed and publishes an
// event when a left click completes on it.
type Button struct {
	core.BaseNode
	Color color.Color
	Value uint32
	Label core.Text

	// Emit builds the event published on activation. Defaults to
	// ButtonPressed{Value}.
	Emit func() event.Event

	base  color.Color
	click core.Clickable
}

func NewButton(ctx *core.Context, r geom.Rect, c color.Color, value uint32) *Button {
	b := &Button{}
	b.setup(ctx, b, r, c, value)
	return b
}

// setup initialises b as the button part of self.
func (b *Button) setup(ctx *core.Context, self core.Node, r geom.Rect, c color.Color, value uint32) {
	b.Color, b.base, b.Value = c, c, value
	b.Init(ctx, self)
	b.Rect = r
	b.click = core.Clickable{
		Bounds:     b.Bounds,
		Activation: core.ActivateInCurrentBounds,
		OnPress:    func(event.MouseButton) { b.Color = b.base.Darken(PressFadeDelta) },
		OnRelease:  func(event.MouseButton, bool) { b.Color = b.base },
		OnActivate: func(event.MouseButton) { b.activate() },
	}
}

// NewDialogEndButton returns a button that publishes DialogEnd. It only
// fires when both press and release land on it.
func NewDialogEndButton(ctx *core.Context, r geom.Rect, c color.Color) *Button {
	b := NewButton(ctx, r, c, 0)
	b.click.Activation = core.ActivateInPressBounds
	b.Emit = func() event.Event { return event.DialogEnd{} }
	return b
}

// SetBaseColor changes the idle color.
func (b *Button) SetBaseColor(c color.Color) {
	b.base = c
	b.Color = c
}

// State exposes the click state.
func (b *Button) State() core.PointerState { return b.click.State() }

func (b *Button) HandleEvent(ev event.Event) {
	b.click.Handle(ev)
}

func (b *Button) activate() {
	var ev event.Event = event.ButtonPressed{Value: b.Value}
	if b.Emit != nil {
		ev = b.Emit()
	}
	b.Context().Publish(b, ev)
}

func (b *Button) Render(r core.Renderer) {
	r.DrawRect(b.Rect, b.Color)
	if b.Label.Content != "" {
		w := runewidth.StringWidth(b.Label.Content)
		at := geom.Point{
			X: b.Rect.X + max(0, (b.Rect.W-w)/2),
			Y: b.Rect.Y + b.Rect.H/2,
		}
		r.DrawText(at, core.Text{Content: clip(b.Label.Content, b.Rect.W), Color: b.Label.Color}, b.Color)
	}
	b.RenderChildren(r)
}

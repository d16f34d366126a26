// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/dialog.go
// Summary: Modal dialog container and the button that opens it.
// Usage: A DialogButton opens its Dialog inside a modal scope. The dialog
// closes on DialogEnd, Return or Escape; on an accepted close the button
// publishes CanvasAction with the dialog result.

package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
	"github.com/framegrace/texelpaint/texelui/modal"
	"github.com/framegrace/texelpaint/texelui/pubsub"
)

// BorderCharset is h, v, tl, tr, bl, br.
var BorderCharset = [6]rune{'─', '│', '┌', '┐', '└', '┘'}

// Dialog is the root of a modal subtree. It tracks the latest value chosen
// by its controls and closes its scope when told to end.
type Dialog struct {
	core.BaseNode
	Background, Border color.Color
	Title              string

	scope    *modal.Scope
	result   string
	accepted bool
}

func NewDialog(ctx *core.Context, r geom.Rect, scope *modal.Scope, title string, bg, border color.Color) *Dialog {
	d := &Dialog{Background: bg, Border: border, Title: title, scope: scope}
	d.Init(ctx, d)
	d.Rect = r
	return d
}

// ClientRect is the area inside the border.
func (d *Dialog) ClientRect() geom.Rect { return d.Rect.Inset(1) }

// Result returns the chosen value when the dialog was accepted.
func (d *Dialog) Result() (string, bool) {
	return d.result, d.accepted && d.result != ""
}

// SetResult presets the value, e.g. a default file name.
func (d *Dialog) SetResult(s string) { d.result = s }

func (d *Dialog) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.DialogEnd:
		d.end(true)
	case event.KeyPressed:
		switch e.Key {
		case event.KeyReturn:
			d.end(true)
		case event.KeyEscape:
			d.end(false)
		}
	case event.InputboxChanged:
		d.result = e.Value
	case event.FileChosen:
		d.result = e.Filename
	}
}

func (d *Dialog) end(accept bool) {
	d.accepted = accept
	if d.scope != nil {
		d.scope.Close()
	}
}

func (d *Dialog) Render(r core.Renderer) {
	r.DrawRect(d.Rect, d.Background)
	d.drawBorder(r)
	d.RenderChildren(r)
}

func (d *Dialog) drawBorder(r core.Renderer) {
	rc := d.Rect
	if rc.W < 2 || rc.H < 2 {
		return
	}
	cs := BorderCharset
	sprite := func(x, y int, g rune) {
		r.DrawSprite(geom.Point{X: x, Y: y}, core.Sprite{Glyph: g, Color: d.Border})
	}
	for x := rc.X + 1; x < rc.X+rc.W-1; x++ {
		sprite(x, rc.Y, cs[0])
		sprite(x, rc.Y+rc.H-1, cs[0])
	}
	for y := rc.Y + 1; y < rc.Y+rc.H-1; y++ {
		sprite(rc.X, y, cs[1])
		sprite(rc.X+rc.W-1, y, cs[1])
	}
	sprite(rc.X, rc.Y, cs[2])
	sprite(rc.X+rc.W-1, rc.Y, cs[3])
	sprite(rc.X, rc.Y+rc.H-1, cs[4])
	sprite(rc.X+rc.W-1, rc.Y+rc.H-1, cs[5])
	if d.Title != "" {
		title := clip(" "+d.Title+" ", rc.W-4)
		x := rc.X + max(1, (rc.W-runewidth.StringWidth(title))/2)
		r.DrawText(geom.Point{X: x, Y: rc.Y}, core.Text{Content: title, Color: d.Border}, d.Background)
	}
}

// DialogBuilder assembles a dialog subtree. It runs with the modal layer
// already active, so subscriptions it makes belong to the dialog.
type DialogBuilder func(scope *modal.Scope) *Dialog

// DialogButton is a button that opens a dialog. While the dialog is open it
// ignores pointer input and forwards key events to the dialog. When the
// dialog is accepted it publishes CanvasAction{Op} with the result.
type DialogButton struct {
	Button
	Op event.CanvasOp

	host     core.Node
	upstream pubsub.Identity
	build    DialogBuilder
	scope    *modal.Scope
	dialog   *Dialog
}

// NewDialogButton creates the button. host receives the dialog as a child;
// upstream (normally the root) feeds key events while the dialog is open.
func NewDialogButton(ctx *core.Context, r geom.Rect, c color.Color, host core.Node, upstream pubsub.Identity, op event.CanvasOp, build DialogBuilder) *DialogButton {
	d := &DialogButton{Op: op, host: host, upstream: upstream, build: build}
	d.setup(ctx, d, r, c, 0)
	d.scope = modal.New(ctx)
	d.scope.OnClosed = d.closed
	d.click.OnActivate = func(event.MouseButton) { d.Open() }
	return d
}

// Scope exposes the modal scope.
func (d *DialogButton) Scope() *modal.Scope { return d.scope }

// Dialog returns the open dialog, or nil.
func (d *DialogButton) Dialog() *Dialog { return d.dialog }

// Open shows the dialog unless it is already showing.
func (d *DialogButton) Open() {
	if d.scope.IsOpen() {
		return
	}
	d.scope.Open(d.host, d.upstream, d, func() core.Node {
		d.dialog = d.build(d.scope)
		return d.dialog
	})
}

func (d *DialogButton) closed() {
	dlg := d.dialog
	d.dialog = nil
	if dlg == nil {
		return
	}
	if name, ok := dlg.Result(); ok {
		d.Context().Publish(d, event.CanvasAction{Filename: name, Op: d.Op})
	}
}

func (d *DialogButton) HandleEvent(ev event.Event) {
	if d.scope.IsOpen() {
		if k, ok := ev.(event.KeyPressed); ok {
			d.Context().Publish(d, k)
		}
		return
	}
	d.Button.HandleEvent(ev)
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/clickable.go
// Summary: Clickable and Draggable capability state machines.
// Usage: Widgets hold one as a field and feed it every event they receive;
// unrelated events fall through untouched.

package core

import (
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// PointerState is the pointer capability state.
type PointerState int

const (
	Idle PointerState = iota
	Pressed
	// Dragging is Pressed for draggable widgets; moves are tracked.
	Dragging
)

func (s PointerState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// Activation decides whether a release activates the widget.
type Activation int

const (
	// ActivateInCurrentBounds fires when the release lies inside the bounds
	// at release time, wherever the press happened.
	ActivateInCurrentBounds Activation = iota
	// ActivateInPressBounds fires only after a press inside, when the release
	// lies inside the bounds captured at press time.
	ActivateInPressBounds
)

// Clickable decodes left-button MouseButton events into press/release
// callbacks. Bounds is consulted on every event so moving widgets hit-test
// where they are now.
type Clickable struct {
	Bounds     func() geom.Rect
	Activation Activation

	OnPress    func(ev event.MouseButton)
	OnRelease  func(ev event.MouseButton, wasPressed bool)
	OnActivate func(ev event.MouseButton)

	state       PointerState
	pressBounds geom.Rect
}

// State returns the current pointer state.
func (c *Clickable) State() PointerState { return c.state }

// Handle consumes MouseButton events and reports whether ev was one.
func (c *Clickable) Handle(ev event.Event) bool {
	mb, ok := ev.(event.MouseButton)
	if !ok {
		return false
	}
	if mb.Button != event.ButtonLeft {
		return true
	}
	switch mb.Action {
	case event.Pressed:
		c.press(mb, Pressed)
	case event.Released:
		c.release(mb)
	}
	return true
}

func (c *Clickable) press(mb event.MouseButton, next PointerState) bool {
	bounds := c.bounds()
	if !bounds.Contains(mb.Pos) {
		return false
	}
	c.state = next
	c.pressBounds = bounds
	if c.OnPress != nil {
		c.OnPress(mb)
	}
	return true
}

func (c *Clickable) release(mb event.MouseButton) {
	wasPressed := c.state != Idle
	c.state = Idle
	if c.OnRelease != nil {
		c.OnRelease(mb, wasPressed)
	}
	var activate bool
	switch c.Activation {
	case ActivateInPressBounds:
		activate = wasPressed && c.pressBounds.Contains(mb.Pos)
	default:
		activate = c.bounds().Contains(mb.Pos)
	}
	if activate && c.OnActivate != nil {
		c.OnActivate(mb)
	}
}

func (c *Clickable) bounds() geom.Rect {
	if c.Bounds == nil {
		return geom.Rect{}
	}
	return c.Bounds()
}

// Draggable extends Clickable with motion tracking between a press inside
// and the following release.
type Draggable struct {
	Clickable
	OnDrag func(from, to geom.Point)

	last geom.Point
}

// Handle consumes MouseButton and MouseMove events.
func (d *Draggable) Handle(ev event.Event) bool {
	switch e := ev.(type) {
	case event.MouseMove:
		if d.state != Dragging {
			return true
		}
		from := d.last
		d.last = e.Pos
		if d.OnDrag != nil && from != e.Pos {
			d.OnDrag(from, e.Pos)
		}
		return true
	case event.MouseButton:
		if e.Button != event.ButtonLeft {
			return true
		}
		if e.Action == event.Pressed {
			if d.press(e, Dragging) {
				d.last = e.Pos
			}
			return true
		}
		d.release(e)
		return true
	}
	return false
}

// LastPoint returns the most recent pointer position seen while dragging.
func (d *Draggable) LastPoint() geom.Point { return d.last }

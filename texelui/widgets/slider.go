// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/slider.go
// Summary: One-dimensional draggable thumb with step buttons support.

package widgets

import (
	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// SliderConfig describes a slider. Thumb is the initial thumb rectangle;
// Lower and Upper bound the thumb origin along Axis.
type SliderConfig struct {
	Thumb        geom.Rect
	Color        color.Color
	Lower, Upper int
	Step         int
	Axis         core.Axis
}

// Slider is a thumb moving along one axis. It moves by dragging or by Step
// when it receives ButtonPressed{ValueUp/ValueDown}. A drag publishes one
// SliderMove with the relative position for every change; a step press
// always publishes one, clamped at the bounds.
type Slider struct {
	core.BaseNode
	Color color.Color
	Step  int

	base  color.Color
	track track
	grab  int
	drag  core.Draggable
}

func NewSlider(ctx *core.Context, cfg SliderConfig) *Slider {
	s := &Slider{Color: cfg.Color, base: cfg.Color, Step: cfg.Step}
	s.Init(ctx, s)
	s.Rect = cfg.Thumb
	s.track = track{acc: cfg.Axis.Accessor(), lower: cfg.Lower, upper: max(cfg.Lower, cfg.Upper)}
	s.place(s.track.clamp(s.track.acc.Primary(s.Position())))
	s.drag = core.Draggable{
		Clickable: core.Clickable{
			Bounds: s.Bounds,
			OnPress: func(ev event.MouseButton) {
				s.Color = s.base.Darken(PressFadeDelta)
				s.grab = s.track.acc.Primary(ev.Pos) - s.pos()
			},
			OnRelease: func(event.MouseButton, bool) { s.Color = s.base },
		},
		OnDrag: func(_, to geom.Point) {
			s.moveTo(s.track.acc.Primary(to) - s.grab)
		},
	}
	return s
}

// Axis returns the slider orientation.
func (s *Slider) Axis() core.Axis { return s.track.acc.Axis }

// Range returns the thumb origin bounds.
func (s *Slider) Range() (lower, upper int) { return s.track.lower, s.track.upper }

// Relative returns the thumb position in [0,1].
func (s *Slider) Relative() float64 { return s.track.relative(s.pos()) }

// SetRelative positions the thumb without publishing.
func (s *Slider) SetRelative(rel float64) { s.place(s.track.at(rel)) }

// SetRange changes the thumb origin bounds and the thumb extent along the
// axis, keeping the relative position.
func (s *Slider) SetRange(lower, upper, extent int) {
	rel := s.Relative()
	s.track.lower, s.track.upper = lower, max(lower, upper)
	acc := s.track.acc
	s.Resize(acc.SizeOf(max(1, extent), acc.CrossExtent(s.Rect.Size())))
	s.place(s.track.at(rel))
}

func (s *Slider) pos() int { return s.track.acc.Primary(s.Position()) }

func (s *Slider) place(v int) {
	s.SetPosition(s.track.acc.WithPrimary(s.Position(), v))
}

// moveTo clamps v into the track and publishes when the thumb moved.
func (s *Slider) moveTo(v int) {
	if s.track.clamp(v) == s.pos() {
		return
	}
	s.stepTo(v)
}

// stepTo clamps v into the track and always publishes the position, so a
// step at a bound still reports one SliderMove.
func (s *Slider) stepTo(v int) {
	v = s.track.clamp(v)
	s.place(v)
	s.Context().Publish(s, event.SliderMove{Position: s.track.relative(v)})
}

func (s *Slider) HandleEvent(ev event.Event) {
	if s.drag.Handle(ev) {
		return
	}
	if bp, ok := ev.(event.ButtonPressed); ok {
		switch bp.Value {
		case ValueUp:
			s.stepTo(s.pos() - s.Step)
		case ValueDown:
			s.stepTo(s.pos() + s.Step)
		}
	}
}

func (s *Slider) Render(r core.Renderer) {
	r.DrawRect(s.Rect, s.Color)
	s.RenderChildren(r)
}

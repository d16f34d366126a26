// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/state.go
// Summary: Immutable scroll offset bookkeeping for row-based viewports.
// Usage: ScrollableText and FileList keep a State and map their scrollbar's
// relative position onto it.

package scroll

import (
	"math"

	"github.com/framegrace/texelpaint/texelui/geom"
)

// State is the scroll position of a viewport over ContentHeight rows. Every
// method returns a new State with Offset clamped to [0, MaxOffset].
type State struct {
	Offset         int
	ContentHeight  int
	ViewportHeight int
}

// MaxOffset is the largest offset that still fills the viewport.
func (s State) MaxOffset() int { return max(0, s.ContentHeight-s.ViewportHeight) }

func (s State) clamped() State {
	s.Offset = geom.Clamp(s.Offset, 0, s.MaxOffset())
	return s
}

func (s State) WithContentHeight(h int) State {
	s.ContentHeight = max(0, h)
	return s.clamped()
}

func (s State) WithViewportHeight(h int) State {
	s.ViewportHeight = max(0, h)
	return s.clamped()
}

func (s State) ScrollTo(row int) State {
	s.Offset = row
	return s.clamped()
}

func (s State) ScrollBy(delta int) State { return s.ScrollTo(s.Offset + delta) }

// ScrollToRelative places the offset at rel of the scrollable range, rounding
// to the nearest row.
func (s State) ScrollToRelative(rel float64) State {
	return s.ScrollTo(int(math.Round(rel * float64(s.MaxOffset()))))
}

// Relative is the inverse of ScrollToRelative; 0 when nothing scrolls.
func (s State) Relative() float64 {
	if s.MaxOffset() == 0 {
		return 0
	}
	return float64(s.Offset) / float64(s.MaxOffset())
}

func (s State) CanScroll() bool     { return s.MaxOffset() > 0 }
func (s State) CanScrollUp() bool   { return s.Offset > 0 }
func (s State) CanScrollDown() bool { return s.Offset < s.MaxOffset() }

// Visible returns the half-open row range shown in the viewport.
func (s State) Visible() (start, end int) {
	return s.Offset, min(s.ContentHeight, s.Offset+s.ViewportHeight)
}

// IsRowVisible reports whether content row lies in the viewport.
func (s State) IsRowVisible(row int) bool {
	start, end := s.Visible()
	return row >= start && row < end
}

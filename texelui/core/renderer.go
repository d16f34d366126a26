// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/renderer.go
// Summary: Drawing and polling contract consumed from the rendering backend.

package core

import (
	"context"
	"image"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// Text is a styled string. Size is the nominal character size; cell
// backends ignore it.
type Text struct {
	Content string
	Color   color.Color
	Size    int
}

// Sprite is an icon. Terminal backends draw Glyph.
type Sprite struct {
	Glyph rune
	Color color.Color
}

// Renderer is the backend collaborator. Coordinates are layout cells.
type Renderer interface {
	Size() geom.Size
	DrawRect(r geom.Rect, c color.Color)
	DrawText(at geom.Point, t Text, bg color.Color)
	DrawSprite(at geom.Point, s Sprite)
	DrawImage(r geom.Rect, img image.Image)
	// PollEvent returns the next pending platform event without blocking.
	PollEvent() (event.Event, bool)
	Show()
	Clear()
}

// Waiter is implemented by backends that can block until input arrives.
type Waiter interface {
	Wait(ctx context.Context) error
}

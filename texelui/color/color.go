// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/color/color.go
// Summary: RGBA color value used by widgets, events and the renderer.
// Usage: HSV math goes through go-colorful; terminal output through tcell.

package color

import (
	"fmt"
	stdcolor "image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA value.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

// Shade adds delta to every channel, clamping to [0,255]. Alpha is kept.
func (c Color) Shade(delta int) Color {
	return Color{
		R: clampChannel(int(c.R) + delta),
		G: clampChannel(int(c.G) + delta),
		B: clampChannel(int(c.B) + delta),
		A: c.A,
	}
}

// Darken is Shade with a negated delta.
func (c Color) Darken(delta int) Color { return c.Shade(-delta) }

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FromHSV builds an opaque color from hue in degrees and saturation/value
// in [0,1].
func FromHSV(h, s, v float64) Color {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGB(r, g, b)
}

// HSV returns the hue (degrees), saturation and value of c.
func (c Color) HSV() (h, s, v float64) {
	return c.colorful().Hsv()
}

// Luminance returns the perceptual lightness in [0,1].
func (c Color) Luminance() float64 {
	l, _, _ := c.colorful().Lab()
	return l
}

// Contrast picks black or white, whichever reads better on c.
func (c Color) Contrast() Color {
	if c.Luminance() > 0.55 {
		return Black
	}
	return White
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ParseHex reads "#rrggbb" or "#rgb".
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string { return c.colorful().Hex() }

// Tcell maps c to a truecolor tcell color.
func (c Color) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RGBA converts to the image/color representation.
func (c Color) RGBA() stdcolor.RGBA {
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromStd converts any image/color value.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.RGBAModel.Convert(c).(stdcolor.RGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func (c Color) String() string { return c.Hex() }

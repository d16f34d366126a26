// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/selectors.go
// Summary: Hue strip and saturation/value plane of the color picker.

package widgets

import (
	"image"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// HueSelector draws the hue spectrum along its width. It listens to a slider
// and republishes its position as HueChanged.
type HueSelector struct {
	core.BaseNode
	Hue float64

	strip *image.RGBA
}

func NewHueSelector(ctx *core.Context, r geom.Rect) *HueSelector {
	h := &HueSelector{}
	h.Init(ctx, h)
	h.Rect = r
	return h
}

func (h *HueSelector) HandleEvent(ev event.Event) {
	if sm, ok := ev.(event.SliderMove); ok {
		h.Hue = sm.Position * 360
		h.Context().Publish(h, event.HueChanged{Hue: h.Hue})
	}
}

func (h *HueSelector) Render(r core.Renderer) {
	if h.strip == nil || h.strip.Rect.Dx() != h.Rect.W {
		h.strip = hueStrip(h.Rect.W)
	}
	r.DrawImage(h.Rect, h.strip)
	h.RenderChildren(r)
}

func hueStrip(w int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(1, w), 1))
	for x := range max(1, w) {
		hue := 0.0
		if w > 1 {
			hue = float64(x) / float64(w-1) * 360
		}
		img.SetRGBA(x, 0, color.FromHSV(hue, 1, 1).RGBA())
	}
	return img
}

// SVSelector shows the saturation/value plane for the current hue. A fader
// over it picks the point; every change is published as ColorChanged.
type SVSelector struct {
	core.BaseNode
	Hue, S, V float64

	plane     *image.RGBA
	planeHue  float64
	planeSize geom.Size
}

func NewSVSelector(ctx *core.Context, r geom.Rect) *SVSelector {
	sv := &SVSelector{S: 1, V: 1}
	sv.Init(ctx, sv)
	sv.Rect = r
	return sv
}

// Color returns the selected color.
func (sv *SVSelector) Color() color.Color { return color.FromHSV(sv.Hue, sv.S, sv.V) }

func (sv *SVSelector) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.HueChanged:
		sv.Hue = e.Hue
	case event.FaderMove:
		sv.S, sv.V = e.X, 1-e.Y
	default:
		return
	}
	sv.Context().Publish(sv, event.ColorChanged{Color: sv.Color()})
}

func (sv *SVSelector) Render(r core.Renderer) {
	if sv.plane == nil || sv.planeHue != sv.Hue || sv.planeSize != sv.Rect.Size() {
		sv.plane = svPlane(sv.Hue, sv.Rect.W, sv.Rect.H*2)
		sv.planeHue, sv.planeSize = sv.Hue, sv.Rect.Size()
	}
	r.DrawImage(sv.Rect, sv.plane)
	sv.RenderChildren(r)
}

func svPlane(hue float64, w, h int) *image.RGBA {
	w, h = max(1, w), max(1, h)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		v := 1.0
		if h > 1 {
			v = 1 - float64(y)/float64(h-1)
		}
		for x := range w {
			s := 0.0
			if w > 1 {
				s = float64(x) / float64(w-1)
			}
			img.SetRGBA(x, y, color.FromHSV(hue, s, v).RGBA())
		}
	}
	return img
}

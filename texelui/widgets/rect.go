package widgets

import (
	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// Rect is a filled rectangle. Layouts use it as the parent of decorations
// and panels.
type Rect struct {
	core.BaseNode
	Color color.Color
}

func NewRect(ctx *core.Context, r geom.Rect, c color.Color) *Rect {
	w := &Rect{Color: c}
	w.Init(ctx, w)
	w.Rect = r
	return w
}

func (w *Rect) Render(r core.Renderer) {
	r.DrawRect(w.Rect, w.Color)
	w.RenderChildren(r)
}

// Sprite is a single glyph icon drawn over whatever is below it.
type Sprite struct {
	core.BaseNode
	Sprite core.Sprite
}

func NewSprite(ctx *core.Context, at geom.Point, glyph rune, c color.Color) *Sprite {
	s := &Sprite{Sprite: core.Sprite{Glyph: glyph, Color: c}}
	s.Init(ctx, s)
	s.Rect = geom.Rect{X: at.X, Y: at.Y, W: 1, H: 1}
	return s
}

func (s *Sprite) Render(r core.Renderer) {
	r.DrawSprite(s.Position(), s.Sprite)
	s.RenderChildren(r)
}

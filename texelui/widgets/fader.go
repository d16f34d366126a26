package widgets

import (
	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// Fader is a thumb dragged over a 2-D area. Area bounds the thumb origin.
// It publishes FaderMove with the relative position on every change.
type Fader struct {
	core.BaseNode
	Color color.Color

	base color.Color
	x, y track
	grab geom.Point
	drag core.Draggable
}

func NewFader(ctx *core.Context, thumb, area geom.Rect, c color.Color) *Fader {
	f := &Fader{Color: c, base: c}
	f.Init(ctx, f)
	f.Rect = thumb
	f.x = track{acc: core.Horizontal.Accessor(), lower: area.X, upper: area.X + max(0, area.W-thumb.W)}
	f.y = track{acc: core.Vertical.Accessor(), lower: area.Y, upper: area.Y + max(0, area.H-thumb.H)}
	f.SetPosition(geom.Point{X: f.x.clamp(thumb.X), Y: f.y.clamp(thumb.Y)})
	f.drag = core.Draggable{
		Clickable: core.Clickable{
			Bounds: f.Bounds,
			OnPress: func(ev event.MouseButton) {
				f.Color = f.base.Darken(PressFadeDelta)
				f.grab = ev.Pos.Sub(f.Position())
			},
			OnRelease: func(event.MouseButton, bool) { f.Color = f.base },
		},
		OnDrag: func(_, to geom.Point) { f.MoveTo(to.Sub(f.grab)) },
	}
	return f
}

// Relative returns the thumb position in [0,1]x[0,1].
func (f *Fader) Relative() (x, y float64) {
	p := f.Position()
	return f.x.relative(p.X), f.y.relative(p.Y)
}

// SetRelative places the thumb without publishing.
func (f *Fader) SetRelative(x, y float64) {
	f.SetPosition(geom.Point{X: f.x.at(x), Y: f.y.at(y)})
}

// MoveTo clamps p into the area and publishes if the thumb moved.
func (f *Fader) MoveTo(p geom.Point) {
	p = geom.Point{X: f.x.clamp(p.X), Y: f.y.clamp(p.Y)}
	if p == f.Position() {
		return
	}
	f.SetPosition(p)
	rx, ry := f.Relative()
	f.Context().Publish(f, event.FaderMove{X: rx, Y: ry})
}

func (f *Fader) HandleEvent(ev event.Event) {
	f.drag.Handle(ev)
}

func (f *Fader) Render(r core.Renderer) {
	r.DrawRect(f.Rect, f.Color)
	f.RenderChildren(r)
}

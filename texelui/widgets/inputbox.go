package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

const cursorGlyph = '▏'

// Inputbox is a single editable line. A left press inside focuses it, a press
// elsewhere blurs it. While focused, KeyPressed edits the value and every
// edit is published as InputboxChanged. FileChosen replaces the value.
type Inputbox struct {
	core.BaseNode
	Background, Foreground color.Color

	value   []rune
	cursor  int
	focused bool
}

func NewInputbox(ctx *core.Context, r geom.Rect, fg, bg color.Color) *Inputbox {
	in := &Inputbox{Background: bg, Foreground: fg}
	in.Init(ctx, in)
	in.Rect = r
	return in
}

func (in *Inputbox) Value() string   { return string(in.value) }
func (in *Inputbox) Focused() bool   { return in.focused }
func (in *Inputbox) Cursor() int     { return in.cursor }
func (in *Inputbox) SetFocus(f bool) { in.focused = f }

// SetValue replaces the text and moves the cursor to its end without
// publishing.
func (in *Inputbox) SetValue(s string) {
	in.value = []rune(s)
	in.cursor = len(in.value)
}

func (in *Inputbox) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.MouseButton:
		if e.Button == event.ButtonLeft && e.Action == event.Pressed {
			in.focused = in.IsPointInside(e.Pos)
		}
	case event.FileChosen:
		in.SetValue(e.Filename)
	case event.KeyPressed:
		if in.focused && in.edit(e) {
			in.Context().Publish(in, event.InputboxChanged{Value: in.Value()})
		}
	}
}

// edit applies one key and reports whether the value changed.
func (in *Inputbox) edit(k event.KeyPressed) bool {
	switch k.Key {
	case event.KeyLeft:
		in.cursor = max(0, in.cursor-1)
		return false
	case event.KeyRight:
		in.cursor = min(len(in.value), in.cursor+1)
		return false
	case event.KeyBackspace:
		if in.cursor == 0 {
			return false
		}
		in.value = append(in.value[:in.cursor-1], in.value[in.cursor:]...)
		in.cursor--
		return true
	}
	if k.Ctrl {
		return false
	}
	r := k.Key.Rune(k.Shift)
	if r == 0 {
		return false
	}
	in.value = append(in.value[:in.cursor], append([]rune{r}, in.value[in.cursor:]...)...)
	in.cursor++
	return true
}

// visible returns the slice of the value that fits, keeping the cursor in view.
func (in *Inputbox) visible() (text string, cursorCol int) {
	width := max(1, in.Rect.W-1)
	start := 0
	for runewidth.StringWidth(string(in.value[start:in.cursor])) > width {
		start++
	}
	return clip(string(in.value[start:]), width), runewidth.StringWidth(string(in.value[start:in.cursor]))
}

func (in *Inputbox) Render(r core.Renderer) {
	r.DrawRect(in.Rect, in.Background)
	text, col := in.visible()
	row := in.Rect.Y + in.Rect.H/2
	r.DrawText(geom.Point{X: in.Rect.X, Y: row}, core.Text{Content: text, Color: in.Foreground}, in.Background)
	if in.focused {
		r.DrawSprite(geom.Point{X: in.Rect.X + col, Y: row}, core.Sprite{Glyph: cursorGlyph, Color: in.Foreground})
	}
	in.RenderChildren(r)
}

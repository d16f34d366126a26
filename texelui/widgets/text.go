package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// Text draws one or more lines of static text. Its size follows the content:
// the widest line in cells by the number of lines.
type Text struct {
	core.BaseNode
	Text       core.Text
	Background color.Color

	lines []string
}

func NewText(ctx *core.Context, at geom.Point, content string, fg, bg color.Color) *Text {
	t := &Text{Background: bg}
	t.Init(ctx, t)
	t.Rect = geom.Rect{X: at.X, Y: at.Y}
	t.SetText(core.Text{Content: content, Color: fg})
	return t
}

// SetText replaces the content and resizes the widget to fit it.
func (t *Text) SetText(text core.Text) {
	t.Text = text
	t.lines = splitLines(text.Content)
	t.Resize(measure(t.lines))
}

func (t *Text) Render(r core.Renderer) {
	pos := t.Position()
	for i, line := range t.lines {
		r.DrawText(geom.Point{X: pos.X, Y: pos.Y + i}, core.Text{Content: line, Color: t.Text.Color, Size: t.Text.Size}, t.Background)
	}
	t.RenderChildren(r)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func measure(lines []string) geom.Size {
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return geom.Size{W: w, H: len(lines)}
}

// clip returns the prefix of s that fits in width cells.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width {
			return s[:i]
		}
		used += rw
	}
	return s
}

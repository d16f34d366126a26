package widgets

import (
	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
	"github.com/framegrace/texelpaint/texelui/scroll"
)

// ScrollbarWidth is the width of the bar attached to scrollable widgets.
const ScrollbarWidth = 1

// ScrollableText shows a window of text lines. Its scrollbar sits on the
// right edge inside Rect.
type ScrollableText struct {
	core.BaseNode
	Background color.Color
	Foreground color.Color

	lines     []string
	view      scroll.State
	scrollbar *Scrollbar
}

func NewScrollableText(ctx *core.Context, r geom.Rect, content string, fg, bg, bar color.Color) *ScrollableText {
	st := &ScrollableText{Background: bg, Foreground: fg}
	st.Init(ctx, st)
	st.Rect = r
	st.lines = splitLines(content)
	st.view = scroll.State{ContentHeight: len(st.lines), ViewportHeight: r.H}
	st.scrollbar = NewScrollbar(ctx, ScrollbarConfig{
		Rect:       geom.Rect{X: r.X + r.W - ScrollbarWidth, Y: r.Y, W: ScrollbarWidth, H: r.H},
		Color:      bg.Darken(PressFadeDelta / 2),
		ThumbColor: bar,
		Viewport:   r.H,
		Content:    len(st.lines),
		Step:       1,
		Axis:       core.Vertical,
	})
	st.AddChild(st.scrollbar)
	ctx.Subscribe(st.scrollbar, st)
	ctx.Subscribe(st, st.scrollbar)
	return st
}

// Scrollbar exposes the attached bar.
func (st *ScrollableText) Scrollbar() *Scrollbar { return st.scrollbar }

// Offset is the index of the first visible line.
func (st *ScrollableText) Offset() int { return st.view.Offset }

// Lines returns the visible lines.
func (st *ScrollableText) Lines() []string {
	start, end := st.view.Visible()
	return append([]string(nil), st.lines[start:end]...)
}

// SetContent replaces the text and tells the scrollbar about the new size.
func (st *ScrollableText) SetContent(content string) {
	st.lines = splitLines(content)
	st.view = st.view.WithContentHeight(len(st.lines))
	st.Context().Publish(st, event.ContainerSizeChanged{BlockSize: len(st.lines)})
	st.sync()
}

func (st *ScrollableText) sync() {
	st.view = st.view.ScrollToRelative(st.scrollbar.Relative())
}

func (st *ScrollableText) HandleEvent(ev event.Event) {
	switch ev.(type) {
	case event.MouseButton, event.MouseMove:
		st.scrollbar.HandleEvent(ev)
	case event.Scroll:
		st.sync()
	}
}

func (st *ScrollableText) Render(r core.Renderer) {
	r.DrawRect(st.Rect, st.Background)
	width := st.Rect.W - ScrollbarWidth
	for i, line := range st.Lines() {
		at := geom.Point{X: st.Rect.X, Y: st.Rect.Y + i}
		r.DrawText(at, core.Text{Content: clip(line, width), Color: st.Foreground}, st.Background)
	}
	st.RenderChildren(r)
}

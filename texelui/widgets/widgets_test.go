package widgets_test

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/framegrace/texelpaint/instruments"
	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/core/coretest"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
	"github.com/framegrace/texelpaint/texelui/modal"
	"github.com/framegrace/texelpaint/texelui/widgets"
)

type sink struct {
	core.BaseNode
	got []event.Event
}

func newSink(ctx *core.Context) *sink {
	s := &sink{}
	s.Init(ctx, s)
	return s
}

func (s *sink) HandleEvent(ev event.Event) { s.got = append(s.got, ev) }

var (
	grey  = color.RGB(100, 100, 100)
	white = color.White
	black = color.Black
)

func TestSliderStepDownPublishesOnce(t *testing.T) {
	ctx := core.NewContext()
	src := newSink(ctx)
	s := widgets.NewSlider(ctx, widgets.SliderConfig{
		Thumb: geom.Rect{W: 1, H: 1},
		Color: grey,
		Lower: 0, Upper: 100,
		Step: 10,
		Axis: core.Horizontal,
	})
	out := newSink(ctx)
	ctx.Subscribe(src, s)
	ctx.Subscribe(s, out)

	ctx.Publish(src, event.ButtonPressed{Value: widgets.ValueDown})

	if got := s.Position().X; got != 10 {
		t.Fatalf("thumb at %d, want 10", got)
	}
	if diff := cmp.Diff([]event.Event{event.SliderMove{Position: 0.1}}, out.got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}

	for range 12 {
		ctx.Publish(src, event.ButtonPressed{Value: widgets.ValueDown})
	}
	if got := s.Position().X; got != 100 {
		t.Fatalf("thumb at %d, want clamped 100", got)
	}
	if len(out.got) != 13 {
		t.Fatalf("slider moves = %d, want one per press", len(out.got))
	}
	if last := out.got[len(out.got)-1]; last != (event.SliderMove{Position: 1}) {
		t.Fatalf("clamped step published %v", last)
	}
	if s.Relative() != 1 {
		t.Fatalf("relative = %v", s.Relative())
	}
}

func TestSliderStepAtBoundPublishesClamped(t *testing.T) {
	cases := []struct {
		name  string
		thumb geom.Rect
		value uint32
		want  float64
	}{
		{"up at lower", geom.Rect{W: 1, H: 1}, widgets.ValueUp, 0},
		{"down at upper", geom.Rect{X: 100, W: 1, H: 1}, widgets.ValueDown, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := core.NewContext()
			s := widgets.NewSlider(ctx, widgets.SliderConfig{Thumb: tc.thumb, Upper: 100, Step: 10, Axis: core.Horizontal})
			out := newSink(ctx)
			ctx.Subscribe(s, out)
			s.HandleEvent(event.ButtonPressed{Value: tc.value})
			if got := s.Position().X; got != tc.thumb.X {
				t.Fatalf("thumb moved to %d", got)
			}
			if diff := cmp.Diff([]event.Event{event.SliderMove{Position: tc.want}}, out.got); diff != "" {
				t.Fatalf("events (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSliderDragClamps(t *testing.T) {
	ctx := core.NewContext()
	s := widgets.NewSlider(ctx, widgets.SliderConfig{Thumb: geom.Rect{W: 2, H: 1}, Upper: 10, Step: 1, Axis: core.Horizontal})
	out := newSink(ctx)
	ctx.Subscribe(s, out)

	for _, ev := range []event.Event{
		coretest.Press(1, 0),
		coretest.Move(5, 0),
		coretest.Move(50, 0),
		coretest.Move(60, 0),
		coretest.Release(60, 0),
		coretest.Move(0, 0),
	} {
		s.HandleEvent(ev)
	}
	want := []event.Event{event.SliderMove{Position: 0.4}, event.SliderMove{Position: 1}}
	if diff := cmp.Diff(want, out.got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
}

func TestButtonShadesAndPublishes(t *testing.T) {
	ctx := core.NewContext()
	root := core.NewRoot(ctx, geom.Size{W: 20, H: 5})
	b := widgets.NewButton(ctx, geom.Rect{W: 4, H: 1}, grey, 7)
	root.AddChild(b)
	out := newSink(ctx)
	ctx.Subscribe(root, b)
	ctx.Subscribe(b, out)

	root.HandleEvent(coretest.Press(1, 0))
	if b.Color != grey.Darken(widgets.PressFadeDelta) {
		t.Fatalf("pressed color = %v", b.Color)
	}
	root.HandleEvent(coretest.Release(2, 0))
	if b.Color != grey {
		t.Fatalf("released color = %v", b.Color)
	}
	root.HandleEvent(coretest.Press(1, 0))
	root.HandleEvent(coretest.Release(9, 3))

	if diff := cmp.Diff([]event.Event{event.ButtonPressed{Value: 7}}, out.got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
}

func TestScrollbarTurnsStepsIntoScroll(t *testing.T) {
	ctx := core.NewContext()
	sb := widgets.NewScrollbar(ctx, widgets.ScrollbarConfig{
		Rect:       geom.Rect{W: 1, H: 20},
		Color:      grey,
		ThumbColor: white,
		Viewport:   10,
		Content:    20,
		Step:       1,
		Axis:       core.Vertical,
	})
	out := newSink(ctx)
	ctx.Subscribe(sb, out)

	if got := sb.Slider().Rect; got != (geom.Rect{X: 0, Y: 2, W: 1, H: 8}) {
		t.Fatalf("thumb = %v", got)
	}

	sb.HandleEvent(coretest.Press(0, 19))
	sb.HandleEvent(coretest.Release(0, 19))

	if diff := cmp.Diff([]event.Event{event.Scroll{Delta: 0.125}}, out.got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}

	sb.HandleEvent(event.ContainerSizeChanged{BlockSize: 40})
	if h := sb.Slider().Rect.H; h != 4 {
		t.Fatalf("thumb height after growth = %d, want 4", h)
	}
	if lo, hi := sb.Slider().Range(); lo != 2 || hi != 14 {
		t.Fatalf("range = [%d,%d]", lo, hi)
	}
}

func TestScrollableTextScrollsWithItsBar(t *testing.T) {
	ctx := core.NewContext()
	content := ""
	for i := range 20 {
		content += "l" + string(rune('a'+i)) + "\n"
	}
	st := widgets.NewScrollableText(ctx, geom.Rect{W: 10, H: 5}, content, black, white, grey)

	st.HandleEvent(coretest.Press(9, 4))
	st.HandleEvent(coretest.Release(9, 4))

	if st.Offset() != 8 {
		t.Fatalf("offset = %d, want 8", st.Offset())
	}
	if got := st.Lines()[0]; got != "li" {
		t.Fatalf("first visible line = %q", got)
	}

	st.SetContent("one\ntwo")
	if st.Offset() != 0 || len(st.Lines()) != 2 {
		t.Fatalf("after shrink: offset=%d lines=%v", st.Offset(), st.Lines())
	}
}

func TestColorPickerChain(t *testing.T) {
	ctx := core.NewContext()
	area := geom.Rect{W: 11, H: 11}
	fader := widgets.NewFader(ctx, geom.Rect{W: 1, H: 1}, area, white)
	hue := widgets.NewHueSelector(ctx, geom.Rect{Y: 12, W: 11, H: 1})
	sv := widgets.NewSVSelector(ctx, area)
	out := newSink(ctx)
	ctx.Subscribe(fader, sv)
	ctx.Subscribe(hue, sv)
	ctx.Subscribe(sv, out)

	fader.HandleEvent(coretest.Press(0, 0))
	fader.HandleEvent(coretest.Move(10, 5))
	fader.HandleEvent(coretest.Release(10, 5))
	hue.HandleEvent(event.SliderMove{Position: 0.5})

	want := []event.Event{
		event.ColorChanged{Color: color.FromHSV(0, 1, 0.5)},
		event.ColorChanged{Color: color.FromHSV(180, 1, 0.5)},
	}
	if diff := cmp.Diff(want, out.got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
	if x, y := fader.Relative(); x != 1 || y != 0.5 {
		t.Fatalf("fader at %v,%v", x, y)
	}

	rec := coretest.NewRecorder(geom.Size{W: 20, H: 20})
	sv.Render(rec)
	hue.Render(rec)
	if diff := cmp.Diff([]string{"image", "image"}, rec.Kinds()); diff != "" {
		t.Fatalf("render ops (-want +got):\n%s", diff)
	}
}

type memSaver struct {
	saved  []string
	loaded image.Image
	err    error
}

func (m *memSaver) Save(name string, img image.Image) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, name)
	return nil
}

func (m *memSaver) Load(string) (image.Image, error) { return m.loaded, m.err }

func TestCanvasDrivesInstruments(t *testing.T) {
	ctx := core.NewContext()
	red := color.RGB(200, 0, 0)
	tools := instruments.NewManager(ctx, instruments.Options{Color: red, Initial: instruments.RectFill})
	saver := &memSaver{}
	cv := widgets.NewCanvas(ctx, geom.Rect{X: 2, Y: 1, W: 10, H: 5}, white, tools, saver)

	cv.HandleEvent(coretest.Press(3, 2))
	cv.HandleEvent(coretest.Move(5, 3))

	rec := coretest.NewRecorder(geom.Size{W: 20, H: 10})
	cv.Render(rec)
	if diff := cmp.Diff([]string{"image", "rect"}, rec.Kinds()); diff != "" {
		t.Fatalf("render ops (-want +got):\n%s", diff)
	}
	if got := rec.Ops[1].Rect; got != (geom.Rect{X: 3, Y: 2, W: 3, H: 2}) {
		t.Fatalf("preview cells = %v", got)
	}

	cv.HandleEvent(coretest.Release(5, 3))
	img := cv.Image()
	for _, p := range []image.Point{{1, 2}, {3, 4}} {
		if color.FromStd(img.At(p.X, p.Y)) != red {
			t.Fatalf("pixel %v not filled", p)
		}
	}
	if color.FromStd(img.At(0, 0)) != white {
		t.Fatalf("background overwritten")
	}

	cv.HandleEvent(event.CanvasAction{Filename: "out.png", Op: event.CanvasSave})
	if diff := cmp.Diff([]string{"out.png"}, saver.saved); diff != "" {
		t.Fatalf("saved (-want +got):\n%s", diff)
	}

	blue := color.RGB(0, 0, 255)
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, blue.RGBA())
	saver.loaded = src
	cv.HandleEvent(event.CanvasAction{Filename: "in.png", Op: event.CanvasLoad})
	if color.FromStd(img.At(5, 5)) != blue {
		t.Fatalf("load did not replace pixels: %v", color.FromStd(img.At(5, 5)))
	}

	saver.err = errors.New("disk full")
	cv.HandleEvent(event.CanvasAction{Filename: "fail.png", Op: event.CanvasSave})
	if len(saver.saved) != 1 {
		t.Fatalf("failed save recorded")
	}
}

func TestInputboxEditing(t *testing.T) {
	ctx := core.NewContext()
	in := widgets.NewInputbox(ctx, geom.Rect{W: 10, H: 1}, black, white)
	out := newSink(ctx)
	ctx.Subscribe(in, out)

	key := func(k event.Key, shift bool) { in.HandleEvent(event.KeyPressed{Key: k, Shift: shift}) }
	key(event.KeyQ, false)
	in.HandleEvent(coretest.Press(1, 0))
	key(event.KeyA, true)
	key(event.KeyB, false)
	key(event.KeyBackspace, false)
	key(event.KeyDot, false)
	key(event.KeyLeft, false)
	key(event.KeyZ, false)

	var values []string
	for _, ev := range out.got {
		values = append(values, ev.(event.InputboxChanged).Value)
	}
	if diff := cmp.Diff([]string{"A", "Ab", "A", "A.", "Az."}, values); diff != "" {
		t.Fatalf("values (-want +got):\n%s", diff)
	}

	in.HandleEvent(event.FileChosen{Filename: "pic.png"})
	if in.Value() != "pic.png" || len(out.got) != 5 {
		t.Fatalf("FileChosen: value=%q events=%d", in.Value(), len(out.got))
	}
	in.HandleEvent(coretest.Press(15, 3))
	if in.Focused() {
		t.Fatalf("press outside did not blur")
	}
}

func TestFileListChooseAndFilter(t *testing.T) {
	ctx := core.NewContext()
	names := []string{"a.png", "ab.png", "b.png", "c.png"}
	fl := widgets.NewFileList(ctx, geom.Rect{W: 10, H: 2}, widgets.FileListStyle{Background: white, Foreground: black, Highlight: grey, Bar: grey},
		func() ([]string, error) { return names, nil })
	out := newSink(ctx)
	ctx.Subscribe(fl, out)

	fl.HandleEvent(coretest.Press(0, 1))
	fl.HandleEvent(coretest.Release(0, 1))
	fl.HandleEvent(event.InputboxChanged{Value: "a"})

	want := []event.Event{
		event.FileChosen{Filename: "ab.png"},
		event.ContainerSizeChanged{BlockSize: 2},
	}
	if diff := cmp.Diff(want, out.got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a.png", "ab.png"}, fl.Rows()); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
	if _, ok := fl.Selected(); ok {
		t.Fatalf("selection survived a refilter")
	}

	names = append(names, "aa.png")
	fl.HandleEvent(event.FileListRebuild{Name: "a"})
	if len(fl.Rows()) != 3 {
		t.Fatalf("rebuild did not relist: %v", fl.Rows())
	}
}

// buildSaveDialog assembles a dialog with an input line and an OK button.
func buildSaveDialog(ctx *core.Context, root *core.Root, parts *[]core.Node) widgets.DialogBuilder {
	return func(scope *modal.Scope) *widgets.Dialog {
		d := widgets.NewDialog(ctx, geom.Rect{X: 5, Y: 5, W: 20, H: 6}, scope, "Save", white, black)
		in := widgets.NewInputbox(ctx, geom.Rect{X: 6, Y: 6, W: 10, H: 1}, black, white)
		ok := widgets.NewDialogEndButton(ctx, geom.Rect{X: 6, Y: 8, W: 4, H: 1}, grey)
		d.AddChild(in)
		d.AddChild(ok)
		ctx.Subscribe(root, in)
		ctx.Subscribe(root, ok)
		ctx.Subscribe(in, d)
		ctx.Subscribe(ok, d)
		*parts = []core.Node{in, ok}
		return d
	}
}

func TestDialogOpensAndClosesThroughTeardown(t *testing.T) {
	ctx := core.NewContext()
	root := core.NewRoot(ctx, geom.Size{W: 40, H: 20})
	var parts []core.Node
	btn := widgets.NewDialogButton(ctx, geom.Rect{W: 4, H: 1}, grey, root, root, event.CanvasSave, buildSaveDialog(ctx, root, &parts))
	root.AddChild(btn)
	target := newSink(ctx)
	ctx.Subscribe(root, btn)
	ctx.Subscribe(btn, target)
	before := ctx.Registry.Snapshot()

	root.HandleEvent(coretest.Press(1, 0))
	root.HandleEvent(coretest.Release(1, 0))

	dlg := btn.Dialog()
	if dlg == nil || ctx.Registry.Depth() != 2 {
		t.Fatalf("dialog not opened (depth %d)", ctx.Registry.Depth())
	}
	if dlg.Parent() != core.Node(root) {
		t.Fatalf("dialog not attached to the host")
	}

	root.HandleEvent(coretest.Press(7, 6))
	root.HandleEvent(coretest.Release(7, 6))
	for _, k := range []event.Key{event.KeyX, event.KeyDot, event.KeyP} {
		root.HandleEvent(event.KeyPressed{Key: k})
	}
	root.HandleEvent(coretest.Press(0, 0))
	root.HandleEvent(coretest.Release(0, 0))
	if len(target.got) != 0 || ctx.Registry.Depth() != 2 {
		t.Fatalf("base layer widgets reacted while the dialog was open")
	}

	root.HandleEvent(coretest.Press(7, 8))
	root.HandleEvent(coretest.Release(7, 8))

	if got := ctx.Registry.Depth(); got != 1 {
		t.Fatalf("depth after close = %d, want 1", got)
	}
	if got := ctx.Registry.Stats().Pops; got != 1 {
		t.Fatalf("pops = %d, want 1", got)
	}
	if diff := cmp.Diff(before, ctx.Registry.Snapshot()); diff != "" {
		t.Fatalf("active layer differs from the pre-open layer (-want +got):\n%s", diff)
	}
	if dlg.Parent() != nil || !dlg.Destroyed() {
		t.Fatalf("dialog still attached")
	}
	for _, p := range parts {
		if !p.NodeBase().Destroyed() {
			t.Fatalf("dialog part %d survived", p.ID())
		}
	}
	want := []event.Event{event.CanvasAction{Filename: "x.p", Op: event.CanvasSave}}
	if diff := cmp.Diff(want, target.got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
	if btn.Scope().State() != modal.Closed {
		t.Fatalf("scope state = %v", btn.Scope().State())
	}
}

func TestDialogEscapeCancels(t *testing.T) {
	ctx := core.NewContext()
	root := core.NewRoot(ctx, geom.Size{W: 40, H: 20})
	var parts []core.Node
	btn := widgets.NewDialogButton(ctx, geom.Rect{W: 4, H: 1}, grey, root, root, event.CanvasSave, buildSaveDialog(ctx, root, &parts))
	root.AddChild(btn)
	target := newSink(ctx)
	ctx.Subscribe(root, btn)
	ctx.Subscribe(btn, target)

	btn.Open()
	btn.Dialog().SetResult("keep.png")
	root.HandleEvent(event.KeyPressed{Key: event.KeyEscape})

	if ctx.Registry.Depth() != 1 || btn.Dialog() != nil {
		t.Fatalf("escape did not close the dialog")
	}
	if len(target.got) != 0 {
		t.Fatalf("cancelled dialog published %v", target.got)
	}
}

func TestDialogRendersBorderAndTitle(t *testing.T) {
	ctx := core.NewContext()
	d := widgets.NewDialog(ctx, geom.Rect{W: 10, H: 3}, nil, "Hi", white, black)
	rec := coretest.NewRecorder(geom.Size{W: 10, H: 3})
	d.Render(rec)
	kinds := rec.Kinds()
	if kinds[0] != "rect" || kinds[len(kinds)-1] != "text" {
		t.Fatalf("unexpected ops: %v", kinds)
	}
	if got := rec.Ops[len(rec.Ops)-1].Text; got != " Hi " {
		t.Fatalf("title = %q", got)
	}
}

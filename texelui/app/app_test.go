package app_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/framegrace/texelpaint/texelui/app"
	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/core/coretest"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
	"github.com/framegrace/texelpaint/texelui/widgets"
)

type counter struct {
	core.BaseNode
	seen []event.Kind
}

func newCounter(ctx *core.Context) *counter {
	c := &counter{}
	c.Init(ctx, c)
	return c
}

func (c *counter) HandleEvent(ev event.Event) { c.seen = append(c.seen, ev.Kind()) }

func TestFramePollsDrainsAndRendersOnce(t *testing.T) {
	ctx := core.NewContext()
	root := core.NewRoot(ctx, geom.Size{W: 10, H: 5})
	root.AddChild(widgets.NewRect(ctx, geom.Rect{W: 2, H: 2}, color.White))
	c := newCounter(ctx)
	ctx.Subscribe(root, c)

	rec := coretest.NewRecorder(geom.Size{W: 10, H: 5})
	rec.Input = []event.Event{coretest.Press(1, 1), coretest.Release(1, 1)}
	ctx.Post(event.KeyPressed{Key: event.KeyA})

	a := app.New(ctx, root, rec)
	if !a.Frame() {
		t.Fatalf("frame reported shutdown")
	}

	want := []event.Kind{event.KindKeyPressed, event.KindMouseButton, event.KindMouseButton}
	if diff := cmp.Diff(want, c.seen); diff != "" {
		t.Fatalf("delivery order (-want +got):\n%s", diff)
	}
	if rec.Shows != 1 || rec.Clears != 1 || len(rec.Ops) != 1 {
		t.Fatalf("shows=%d clears=%d ops=%d", rec.Shows, rec.Clears, len(rec.Ops))
	}
	if !ctx.Queue.Empty() {
		t.Fatalf("queue not drained")
	}
}

func TestWindowClosedStopsTheLoop(t *testing.T) {
	ctx := core.NewContext()
	root := core.NewRoot(ctx, geom.Size{W: 4, H: 4})
	rec := coretest.NewRecorder(geom.Size{W: 4, H: 4})
	rec.Input = []event.Event{event.WindowClosed{}}

	a := app.New(ctx, root, rec)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.Running() || a.Frames() != 0 || rec.Shows != 0 {
		t.Fatalf("running=%v frames=%d shows=%d", a.Running(), a.Frames(), rec.Shows)
	}
	a.Close()
	if !root.Destroyed() {
		t.Fatalf("root not destroyed")
	}
}

func TestResizeReachesRoot(t *testing.T) {
	ctx := core.NewContext()
	root := core.NewRoot(ctx, geom.Size{W: 4, H: 4})
	rec := coretest.NewRecorder(geom.Size{W: 4, H: 4})
	rec.Input = []event.Event{event.Resize{Size: geom.Size{W: 30, H: 12}}}
	app.New(ctx, root, rec).Frame()
	if got := root.Rect.Size(); got != (geom.Size{W: 30, H: 12}) {
		t.Fatalf("root size = %v", got)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx := core.NewContext()
	root := core.NewRoot(ctx, geom.Size{W: 4, H: 4})
	a := app.New(ctx, root, coretest.NewRecorder(geom.Size{W: 4, H: 4}))
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(cctx); err != context.Canceled {
		t.Fatalf("run = %v, want canceled", err)
	}
}

package paint

import (
	"image"
	stdcolor "image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/framegrace/texelpaint/config"
	"github.com/framegrace/texelpaint/instruments"
	"github.com/framegrace/texelpaint/internal/theming"
	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/core/coretest"
	"github.com/framegrace/texelpaint/texelui/geom"
	"github.com/framegrace/texelpaint/texelui/modal"
)

func newPaint(t *testing.T) (*core.Context, *Paint) {
	t.Helper()
	ctx := core.NewContext()
	root := core.NewRoot(ctx, geom.Size{W: 80, H: 24})
	p := Build(ctx, root, Options{
		Palette:      theming.Default,
		Store:        PNGStore{Dir: t.TempDir()},
		DefaultName:  "picture.png",
		MaxThickness: 40,
		Initial:      instruments.RectFill,
	})
	return ctx, p
}

func click(root *core.Root, x, y int) {
	root.HandleEvent(coretest.Press(x, y))
	root.HandleEvent(coretest.Release(x, y))
}

func drag(root *core.Root, from, to geom.Point) {
	root.HandleEvent(coretest.Press(from.X, from.Y))
	root.HandleEvent(coretest.Move(to.X, to.Y))
	root.HandleEvent(coretest.Release(to.X, to.Y))
}

func center(r geom.Rect) (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

func TestToolButtonsSelectInstruments(t *testing.T) {
	_, p := newPaint(t)
	for _, id := range []instruments.ID{instruments.Dropper, instruments.Clear, instruments.RectFill} {
		x, y := center(p.Tools[id].Rect)
		click(p.Root, x, y)
		if got := p.Manager.Current(); got != id {
			t.Fatalf("after clicking %v current = %v", id, got)
		}
	}
}

func TestRectDrawnOnCanvas(t *testing.T) {
	_, p := newPaint(t)
	c := p.Canvas.Rect
	drag(p.Root, geom.Point{X: c.X + 7, Y: c.Y + 6}, geom.Point{X: c.X + 9, Y: c.Y + 7})

	img := p.Canvas.Image()
	ink := stdcolor.RGBA{A: 255}
	if got := img.RGBAAt(8, 13); got != ink {
		t.Fatalf("inside pixel = %v, want %v", got, ink)
	}
	if got := img.RGBAAt(6, 12); got == ink {
		t.Fatalf("pixel outside the rectangle was painted")
	}
}

func TestPickerAndSliderFeedManager(t *testing.T) {
	_, p := newPaint(t)

	f := p.Fader.Rect
	drag(p.Root, f.Pos(), geom.Point{X: 10, Y: 14})
	if got, want := p.Manager.Color(), p.SV.Color(); got != want {
		t.Fatalf("manager color = %v, selector = %v", got, want)
	}
	if p.Manager.Color() == theming.Default.Ink {
		t.Fatalf("color did not change")
	}

	th := p.Thickness.Rect
	drag(p.Root, th.Pos(), geom.Point{X: 60, Y: th.Y})
	if got := p.Manager.Thickness(); got != 40 {
		t.Fatalf("thickness = %d, want 40", got)
	}
}

func TestDropperSamplesCanvas(t *testing.T) {
	_, p := newPaint(t)
	x, y := center(p.Tools[instruments.Dropper].Rect)
	click(p.Root, x, y)
	c := p.Canvas.Rect
	click(p.Root, c.X+2, c.Y+2)
	if got := p.Manager.Color(); got != color.White {
		t.Fatalf("dropper color = %v, want white", got)
	}
}

func TestSaveDialogWritesDefaultName(t *testing.T) {
	ctx, p := newPaint(t)
	before := ctx.Registry.Snapshot()

	x, y := center(p.Save.Rect)
	click(p.Root, x, y)
	dlg := p.Save.Dialog()
	if dlg == nil || ctx.Registry.Depth() != 2 {
		t.Fatalf("save dialog did not open")
	}

	// Base layer widgets are silent while the dialog is up.
	tx, ty := center(p.Tools[instruments.Clear].Rect)
	click(p.Root, tx, ty)
	if p.Manager.Current() != instruments.RectFill {
		t.Fatalf("toolbar reacted under the dialog")
	}

	cr := dlg.ClientRect()
	click(p.Root, cr.X+cr.W-5, cr.Y+cr.H-1)

	if p.Save.Scope().State() != modal.Closed || ctx.Registry.Depth() != 1 {
		t.Fatalf("dialog still open")
	}
	if diff := cmp.Diff(before, ctx.Registry.Snapshot()); diff != "" {
		t.Fatalf("subscriptions changed (-want +got):\n%s", diff)
	}
	img, err := p.opts.Store.Load("picture.png")
	if err != nil {
		t.Fatalf("load saved file: %v", err)
	}
	if got, want := img.Bounds().Size(), p.Canvas.Image().Bounds().Size(); got != want {
		t.Fatalf("saved size = %v, want %v", got, want)
	}
}

func TestLoadDialogPicksListedFile(t *testing.T) {
	_, p := newPaint(t)
	red := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(red.Pix); i += 4 {
		red.Pix[i], red.Pix[i+3] = 255, 255
	}
	if err := p.opts.Store.Save("red.png", red); err != nil {
		t.Fatalf("save fixture: %v", err)
	}

	x, y := center(p.Load.Rect)
	click(p.Root, x, y)
	dlg := p.Load.Dialog()
	if dlg == nil {
		t.Fatalf("load dialog did not open")
	}
	cr := dlg.ClientRect()
	click(p.Root, cr.X+2, cr.Y+2)
	if _, ok := dlg.Result(); ok {
		t.Fatalf("result reported before acceptance")
	}
	click(p.Root, cr.X+cr.W-5, cr.Y+cr.H-1)

	if got := p.Canvas.Image().RGBAAt(3, 3); got.R < 250 || got.G > 5 || got.B > 5 {
		t.Fatalf("canvas pixel = %v, want red", got)
	}
}

func TestPNGStoreListsOnlyPNG(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.PNG", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "dir.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := PNGStore{Dir: dir}.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"a.PNG", "b.png"}, got); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}

	if err := (PNGStore{Dir: filepath.Join(dir, "missing")}).Save("x.png", image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatalf("save into a missing directory succeeded")
	}
	if _, err := (PNGStore{Dir: dir}).Load("notes.txt"); err == nil {
		t.Fatalf("decoding a non-PNG succeeded")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Config{
		"canvas":      map[string]interface{}{"save_dir": "/tmp/pics", "default_name": "a.png"},
		"instruments": map[string]interface{}{"initial": "dropper", "max_thickness": 12, "thickness": "0.25"},
	}
	opts := OptionsFromConfig(cfg)
	if opts.Store.Dir != "/tmp/pics" || opts.DefaultName != "a.png" || opts.MaxThickness != 12 || opts.Thickness != 0.25 || opts.Initial != instruments.Dropper {
		t.Fatalf("options = %+v", opts)
	}
	cfg["instruments"] = map[string]interface{}{"initial": "laser"}
	if got := OptionsFromConfig(cfg).Initial; got != instruments.RectFill {
		t.Fatalf("unknown initial = %v, want rect", got)
	}
}

func TestInitialThicknessPlacesSlider(t *testing.T) {
	ctx := core.NewContext()
	root := core.NewRoot(ctx, geom.Size{W: 80, H: 24})
	p := Build(ctx, root, Options{
		Palette:      theming.Default,
		Store:        PNGStore{Dir: t.TempDir()},
		MaxThickness: 40,
		Thickness:    0.5,
		Initial:      instruments.RectFill,
	})
	if got := p.Thickness.Relative(); got != 0.5 {
		t.Fatalf("slider relative = %v, want 0.5", got)
	}
	if got := p.Manager.Thickness(); got != 20 {
		t.Fatalf("thickness = %d, want 20", got)
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/paint/layout.go
// Summary: Assembles the paint program's widget tree and its subscriptions.
// Usage: Build is called once with an empty root; the returned Paint keeps
// handles to the parts tests and the runner need.

package paint

import (
	"log"

	"github.com/framegrace/texelpaint/config"
	"github.com/framegrace/texelpaint/instruments"
	"github.com/framegrace/texelpaint/internal/theming"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
	"github.com/framegrace/texelpaint/texelui/modal"
	"github.com/framegrace/texelpaint/texelui/widgets"
)

const (
	toolbarHeight = 3
	panelWidth    = 22
	buttonWidth   = 9
	gap           = 1
)

// Options configures Build.
type Options struct {
	Palette      theming.Palette
	Store        PNGStore
	DefaultName  string
	MaxThickness int
	// Thickness is the starting thickness relative to MaxThickness.
	Thickness float64
	Initial   instruments.ID
}

// OptionsFromConfig reads the canvas, theme and instruments sections.
func OptionsFromConfig(cfg config.Config) Options {
	initialName := cfg.GetString("instruments", "initial", "rect")
	initial, ok := instruments.ParseID(initialName)
	if !ok {
		log.Printf("Paint: unknown initial instrument %q, using rect", initialName)
		initial = instruments.RectFill
	}
	return Options{
		Palette:      theming.FromConfig(cfg),
		Store:        PNGStore{Dir: cfg.GetString("canvas", "save_dir", ".")},
		DefaultName:  cfg.GetString("canvas", "default_name", "picture.png"),
		MaxThickness: cfg.GetInt("instruments", "max_thickness", instruments.DefaultMaxThickness),
		Thickness:    cfg.GetFloat("instruments", "thickness", 0),
		Initial:      initial,
	}
}

// Paint is the assembled program.
type Paint struct {
	Root     *core.Root
	Manager  *instruments.Manager
	Listener *instruments.ToolbarListener
	Canvas   *widgets.Canvas

	Tools     map[instruments.ID]*widgets.Button
	Thickness *widgets.Slider
	HueSlider *widgets.Slider
	Hue       *widgets.HueSelector
	SV        *widgets.SVSelector
	Fader     *widgets.Fader
	Save      *widgets.DialogButton
	Load      *widgets.DialogButton

	opts Options
}

var toolOrder = []struct {
	id    instruments.ID
	label string
}{
	{instruments.RectFill, "Rect"},
	{instruments.Dropper, "Dropper"},
	{instruments.Clear, "Clear"},
}

// Build populates root. The layout expects at least 60x20 cells; smaller
// screens get a clipped canvas.
func Build(ctx *core.Context, root *core.Root, opts Options) *Paint {
	pal := opts.Palette
	size := root.Rect.Size()
	p := &Paint{Root: root, Tools: make(map[instruments.ID]*widgets.Button), opts: opts}

	root.AddChild(widgets.NewRect(ctx, geom.Rect{W: size.W, H: size.H}, pal.Window))
	root.AddChild(widgets.NewRect(ctx, geom.Rect{W: size.W, H: toolbarHeight}, pal.Toolbar))

	p.Manager = instruments.NewManager(ctx, instruments.Options{
		MaxThickness: opts.MaxThickness,
		Color:        pal.Ink,
		Background:   pal.Canvas,
		Initial:      opts.Initial,
	})
	p.Listener = instruments.NewToolbarListener(ctx, p.Manager)
	root.AddChild(p.Listener)
	ctx.Subscribe(p.Manager, p.Listener)

	x := gap
	for _, t := range toolOrder {
		b := widgets.NewButton(ctx, geom.Rect{X: x, Y: 1, W: buttonWidth, H: 1}, pal.Button, uint32(t.id))
		b.Label = core.Text{Content: t.label, Color: pal.ButtonText}
		root.AddChild(b)
		ctx.Subscribe(root, b)
		ctx.Subscribe(b, p.Listener)
		p.Tools[t.id] = b
		x += buttonWidth + gap
	}

	canvasRect := geom.Rect{
		X: panelWidth + gap,
		Y: toolbarHeight + gap,
		W: max(1, size.W-panelWidth-2*gap),
		H: max(1, size.H-toolbarHeight-2*gap),
	}
	p.Canvas = widgets.NewCanvas(ctx, canvasRect, pal.Canvas, p.Manager, opts.Store)
	root.AddChild(p.Canvas)
	ctx.Subscribe(root, p.Canvas)

	p.Save = p.fileButton(ctx, geom.Rect{X: size.W - 2*(buttonWidth+gap), Y: 1, W: buttonWidth, H: 1}, "Save", event.CanvasSave)
	p.Load = p.fileButton(ctx, geom.Rect{X: size.W - (buttonWidth + gap), Y: 1, W: buttonWidth, H: 1}, "Load", event.CanvasLoad)

	p.buildPanel(ctx)
	if opts.Thickness > 0 {
		p.Thickness.SetRelative(opts.Thickness)
		p.Listener.HandleEvent(event.SliderMove{Position: p.Thickness.Relative()})
	}

	log.Printf("Paint: layout built for %dx%d, canvas %v", size.W, size.H, canvasRect)
	return p
}

func (p *Paint) fileButton(ctx *core.Context, r geom.Rect, label string, op event.CanvasOp) *widgets.DialogButton {
	pal := p.opts.Palette
	b := widgets.NewDialogButton(ctx, r, pal.Accent, p.Root, p.Root, op, p.fileDialog(ctx, label, op))
	b.Label = core.Text{Content: label, Color: pal.Accent.Contrast()}
	p.Root.AddChild(b)
	ctx.Subscribe(p.Root, b)
	ctx.Subscribe(b, p.Canvas)
	return b
}

// buildPanel lays out the thickness slider and the color picker on the left.
func (p *Paint) buildPanel(ctx *core.Context) {
	pal := p.opts.Palette
	inner := panelWidth - 2*gap
	y := toolbarHeight + gap

	root := p.Root
	root.AddChild(widgets.NewText(ctx, geom.Point{X: gap, Y: y}, "Size", pal.Text, pal.Window))
	y++
	root.AddChild(widgets.NewRect(ctx, geom.Rect{X: gap, Y: y, W: inner, H: 1}, pal.Toolbar))
	p.Thickness = widgets.NewSlider(ctx, widgets.SliderConfig{
		Thumb: geom.Rect{X: gap, Y: y, W: 2, H: 1},
		Color: pal.Accent,
		Lower: gap,
		Upper: gap + inner - 2,
		Step:  1,
		Axis:  core.Horizontal,
	})
	root.AddChild(p.Thickness)
	ctx.Subscribe(root, p.Thickness)
	ctx.Subscribe(p.Thickness, p.Listener)
	y += 2

	root.AddChild(widgets.NewText(ctx, geom.Point{X: gap, Y: y}, "Color", pal.Text, pal.Window))
	y++
	p.Hue = widgets.NewHueSelector(ctx, geom.Rect{X: gap, Y: y, W: inner, H: 1})
	root.AddChild(p.Hue)
	y++
	root.AddChild(widgets.NewRect(ctx, geom.Rect{X: gap, Y: y, W: inner, H: 1}, pal.Toolbar))
	p.HueSlider = widgets.NewSlider(ctx, widgets.SliderConfig{
		Thumb: geom.Rect{X: gap, Y: y, W: 1, H: 1},
		Color: pal.Text,
		Lower: gap,
		Upper: gap + inner - 1,
		Step:  1,
		Axis:  core.Horizontal,
	})
	root.AddChild(p.HueSlider)
	ctx.Subscribe(root, p.HueSlider)
	ctx.Subscribe(p.HueSlider, p.Hue)
	y += 2

	area := geom.Rect{X: gap, Y: y, W: inner, H: 8}
	p.SV = widgets.NewSVSelector(ctx, area)
	root.AddChild(p.SV)
	p.Fader = widgets.NewFader(ctx, geom.Rect{X: area.X + area.W - 1, Y: area.Y, W: 1, H: 1}, area, pal.Text)
	root.AddChild(p.Fader)
	ctx.Subscribe(root, p.Fader)
	ctx.Subscribe(p.Hue, p.SV)
	ctx.Subscribe(p.Fader, p.SV)
	ctx.Subscribe(p.SV, p.Listener)
}

// fileDialog builds the save or load dialog: an input box for the name, the
// list of PNG files in the store and an OK button.
func (p *Paint) fileDialog(ctx *core.Context, title string, op event.CanvasOp) widgets.DialogBuilder {
	return func(scope *modal.Scope) *widgets.Dialog {
		pal := p.opts.Palette
		size := p.Root.Rect.Size()
		r := geom.Rect{W: min(40, size.W), H: min(14, size.H)}
		r.X, r.Y = (size.W-r.W)/2, (size.H-r.H)/2

		d := widgets.NewDialog(ctx, r, scope, title, pal.Dialog, pal.Text)
		c := d.ClientRect()

		in := widgets.NewInputbox(ctx, geom.Rect{X: c.X + 1, Y: c.Y, W: c.W - 2, H: 1}, pal.Text, pal.Window)
		in.SetFocus(true)
		if op == event.CanvasSave && p.opts.DefaultName != "" {
			in.SetValue(p.opts.DefaultName)
			d.SetResult(p.opts.DefaultName)
		}

		list := widgets.NewFileList(ctx,
			geom.Rect{X: c.X + 1, Y: c.Y + 2, W: c.W - 2, H: max(1, c.H-4)},
			widgets.FileListStyle{Background: pal.Window, Foreground: pal.Text, Highlight: pal.Highlight, Bar: pal.Accent},
			p.opts.Store.List)

		ok := widgets.NewDialogEndButton(ctx, geom.Rect{X: c.X + c.W - 7, Y: c.Y + c.H - 1, W: 6, H: 1}, pal.Accent)
		ok.Label = core.Text{Content: "OK", Color: pal.Accent.Contrast()}

		d.AddChild(in)
		d.AddChild(list)
		d.AddChild(ok)

		ctx.Subscribe(p.Root, in)
		ctx.Subscribe(p.Root, list)
		ctx.Subscribe(p.Root, ok)
		ctx.Subscribe(in, d)
		ctx.Subscribe(in, list)
		ctx.Subscribe(list, in)
		ctx.Subscribe(list, d)
		ctx.Subscribe(ok, d)
		return d
	}
}

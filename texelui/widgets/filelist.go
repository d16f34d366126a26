// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/filelist.go
// Summary: Scrollable list of file names with prefix filtering.

package widgets

import (
	"log"
	"strings"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
	"github.com/framegrace/texelpaint/texelui/scroll"
)

// Lister supplies the names a FileList shows.
type Lister func() ([]string, error)

// FileListStyle colors a FileList.
type FileListStyle struct {
	Background, Foreground, Highlight, Bar color.Color
}

// FileList shows one name per row with a scrollbar on the right. Clicking a
// row selects it and publishes FileChosen. InputboxChanged and
// FileListRebuild filter the rows by prefix; every change of the row count
// is published as ContainerSizeChanged for the scrollbar.
type FileList struct {
	core.BaseNode
	Style FileListStyle

	list      Lister
	all       []string
	rows      []string
	filter    string
	view      scroll.State
	selected  int
	click     core.Clickable
	scrollbar *Scrollbar
}

func NewFileList(ctx *core.Context, r geom.Rect, style FileListStyle, list Lister) *FileList {
	fl := &FileList{Style: style, list: list, selected: -1}
	fl.Init(ctx, fl)
	fl.Rect = r
	fl.reload()
	fl.view = scroll.State{ContentHeight: len(fl.rows), ViewportHeight: r.H}
	fl.scrollbar = NewScrollbar(ctx, ScrollbarConfig{
		Rect:       geom.Rect{X: r.X + r.W - ScrollbarWidth, Y: r.Y, W: ScrollbarWidth, H: r.H},
		Color:      style.Background.Darken(PressFadeDelta / 2),
		ThumbColor: style.Bar,
		Viewport:   r.H,
		Content:    len(fl.rows),
		Step:       1,
		Axis:       core.Vertical,
	})
	fl.AddChild(fl.scrollbar)
	ctx.Subscribe(fl.scrollbar, fl)
	ctx.Subscribe(fl, fl.scrollbar)
	fl.click = core.Clickable{
		Bounds:     fl.listBounds,
		Activation: core.ActivateInPressBounds,
		OnActivate: fl.choose,
	}
	return fl
}

// Rows returns the filtered names.
func (fl *FileList) Rows() []string { return append([]string(nil), fl.rows...) }

// Selected returns the chosen name, if any.
func (fl *FileList) Selected() (string, bool) {
	if fl.selected < 0 || fl.selected >= len(fl.rows) {
		return "", false
	}
	return fl.rows[fl.selected], true
}

// Offset is the index of the first visible row.
func (fl *FileList) Offset() int { return fl.view.Offset }

// Scrollbar exposes the attached bar.
func (fl *FileList) Scrollbar() *Scrollbar { return fl.scrollbar }

func (fl *FileList) listBounds() geom.Rect {
	r := fl.Rect
	r.W = max(0, r.W-ScrollbarWidth)
	return r
}

func (fl *FileList) reload() {
	if fl.list == nil {
		return
	}
	names, err := fl.list()
	if err != nil {
		log.Printf("FileList: list failed: %v", err)
		return
	}
	fl.all = names
	fl.applyFilter(fl.filter)
}

func (fl *FileList) applyFilter(prefix string) {
	fl.filter = prefix
	fl.rows = fl.rows[:0]
	for _, n := range fl.all {
		if strings.HasPrefix(n, prefix) {
			fl.rows = append(fl.rows, n)
		}
	}
	fl.selected = -1
}

// rebuild refilters and informs the scrollbar.
func (fl *FileList) rebuild(prefix string, relist bool) {
	if relist {
		fl.filter = prefix
		fl.reload()
	} else {
		fl.applyFilter(prefix)
	}
	fl.Context().Publish(fl, event.ContainerSizeChanged{BlockSize: len(fl.rows)})
	fl.sync()
}

func (fl *FileList) sync() {
	fl.view = fl.view.WithContentHeight(len(fl.rows)).ScrollToRelative(fl.scrollbar.Relative())
}

func (fl *FileList) choose(ev event.MouseButton) {
	row := ev.Pos.Y - fl.Rect.Y + fl.view.Offset
	if row < 0 || row >= len(fl.rows) {
		return
	}
	fl.selected = row
	fl.Context().Publish(fl, event.FileChosen{Filename: fl.rows[row]})
}

func (fl *FileList) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.MouseButton, event.MouseMove:
		fl.click.Handle(ev)
		fl.scrollbar.HandleEvent(ev)
	case event.Scroll:
		fl.sync()
	case event.InputboxChanged:
		fl.rebuild(e.Value, false)
	case event.FileListRebuild:
		fl.rebuild(e.Name, true)
	}
}

func (fl *FileList) Render(r core.Renderer) {
	r.DrawRect(fl.Rect, fl.Style.Background)
	width := fl.listBounds().W
	start, end := fl.view.Visible()
	for idx := start; idx < end; idx++ {
		i := idx - start
		bg := fl.Style.Background
		if idx == fl.selected {
			bg = fl.Style.Highlight
			r.DrawRect(geom.Rect{X: fl.Rect.X, Y: fl.Rect.Y + i, W: width, H: 1}, bg)
		}
		at := geom.Point{X: fl.Rect.X, Y: fl.Rect.Y + i}
		r.DrawText(at, core.Text{Content: clip(fl.rows[idx], width), Color: fl.Style.Foreground}, bg)
	}
	fl.RenderChildren(r)
}

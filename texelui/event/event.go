// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/event/event.go
// Summary: Interaction event taxonomy routed through the subscription registry.
// Usage: Events are produced once, observed by every recipient and released
// by the registry after fan-out.

package event

import (
	"fmt"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// Kind identifies an event variant.
type Kind int

const (
	KindMouseButton Kind = iota
	KindMouseMove
	KindWindowClosed
	KindButtonPressed
	KindScroll
	KindSliderMove
	KindHueChanged
	KindColorChanged
	KindFaderMove
	KindDropperApplied
	KindKeyPressed
	KindDialogEnd
	KindFileListRebuild
	KindContainerSizeChanged
	KindInputboxChanged
	KindCanvasAction
	KindFileChosen
	KindResize
)

var kindNames = [...]string{
	"MouseButton", "MouseMove", "WindowClosed", "ButtonPressed", "Scroll",
	"SliderMove", "HueChanged", "ColorChanged", "FaderMove", "DropperApplied",
	"KeyPressed", "DialogEnd", "FileListRebuild", "ContainerSizeChanged",
	"InputboxChanged", "CanvasAction", "FileChosen", "Resize",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is the closed set of interaction events.
type Event interface {
	Kind() Kind
}

// Disposer is implemented by events that hold resources. The registry calls
// Dispose exactly once, after every recipient has seen the event.
type Disposer interface {
	Dispose()
}

// Dispose releases ev if it implements Disposer.
func Dispose(ev Event) {
	if d, ok := ev.(Disposer); ok {
		d.Dispose()
	}
}

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonUndefined
)

// Action is the edge of a pointer button transition.
type Action int

const (
	Pressed Action = iota
	Released
)

func (a Action) String() string {
	if a == Pressed {
		return "press"
	}
	return "release"
}

// MouseButton is a raw button edge at a position.
type MouseButton struct {
	Pos    geom.Point
	Button Button
	Action Action
}

// MouseMove is a raw pointer motion.
type MouseMove struct {
	Pos geom.Point
}

// WindowClosed asks the application to shut down.
type WindowClosed struct{}

// ButtonPressed is emitted by a button on activation.
type ButtonPressed struct {
	Value uint32
}

// Scroll carries a normalized scroll delta in [-1,1].
type Scroll struct {
	Delta float64
}

// SliderMove carries the slider's relative position in [0,1].
type SliderMove struct {
	Position float64
}

// HueChanged carries a hue in degrees.
type HueChanged struct {
	Hue float64
}

// ColorChanged announces a newly selected color.
type ColorChanged struct {
	Color color.Color
}

// FaderMove carries the relative 2-D position of a fader in [0,1]x[0,1].
type FaderMove struct {
	X, Y float64
}

// DropperApplied carries a color sampled from the canvas.
type DropperApplied struct {
	Color color.Color
}

// KeyPressed is a decoded keystroke.
type KeyPressed struct {
	Key   Key
	Shift bool
	Ctrl  bool
}

// DialogEnd asks the enclosing dialog to close.
type DialogEnd struct{}

// FileListRebuild asks a file list to reload, filtering by Name.
type FileListRebuild struct {
	Name string
}

// ContainerSizeChanged reports the content extent of a scrollable container.
type ContainerSizeChanged struct {
	BlockSize int
}

// InputboxChanged reports the current text of an input box.
type InputboxChanged struct {
	Value string
}

// CanvasOp selects the canvas file operation.
type CanvasOp int

const (
	CanvasSave CanvasOp = iota
	CanvasLoad
)

// CanvasAction asks the canvas to save or load a file.
type CanvasAction struct {
	Filename string
	Op       CanvasOp
}

// FileChosen reports a selected file name.
type FileChosen struct {
	Filename string
}

// Resize reports a new screen size.
type Resize struct {
	Size geom.Size
}

func (MouseButton) Kind() Kind          { return KindMouseButton }
func (MouseMove) Kind() Kind            { return KindMouseMove }
func (WindowClosed) Kind() Kind         { return KindWindowClosed }
func (ButtonPressed) Kind() Kind        { return KindButtonPressed }
func (Scroll) Kind() Kind               { return KindScroll }
func (SliderMove) Kind() Kind           { return KindSliderMove }
func (HueChanged) Kind() Kind           { return KindHueChanged }
func (ColorChanged) Kind() Kind         { return KindColorChanged }
func (FaderMove) Kind() Kind            { return KindFaderMove }
func (DropperApplied) Kind() Kind       { return KindDropperApplied }
func (KeyPressed) Kind() Kind           { return KindKeyPressed }
func (DialogEnd) Kind() Kind            { return KindDialogEnd }
func (FileListRebuild) Kind() Kind      { return KindFileListRebuild }
func (ContainerSizeChanged) Kind() Kind { return KindContainerSizeChanged }
func (InputboxChanged) Kind() Kind      { return KindInputboxChanged }
func (CanvasAction) Kind() Kind         { return KindCanvasAction }
func (FileChosen) Kind() Kind           { return KindFileChosen }
func (Resize) Kind() Kind               { return KindResize }

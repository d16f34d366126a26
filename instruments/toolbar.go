package instruments

import (
	"math"

	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
)

// ToolbarListener is an invisible node that applies toolbar events to a
// Manager: ButtonPressed selects an instrument, ColorChanged and
// DropperApplied set the color, SliderMove sets the thickness.
type ToolbarListener struct {
	core.BaseNode
	manager *Manager
}

func NewToolbarListener(ctx *core.Context, m *Manager) *ToolbarListener {
	l := &ToolbarListener{manager: m}
	l.Init(ctx, l)
	return l
}

func (l *ToolbarListener) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.ButtonPressed:
		l.manager.Select(ID(e.Value))
	case event.ColorChanged:
		l.manager.SetColor(e.Color)
	case event.DropperApplied:
		l.manager.SetColor(e.Color)
	case event.SliderMove:
		l.manager.SetThickness(int(math.Round(e.Position * float64(l.manager.MaxThickness()))))
	}
}

// Render draws nothing.
func (l *ToolbarListener) Render(core.Renderer) {}

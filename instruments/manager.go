package instruments

import (
	"image"
	"log"

	"golang.org/x/image/draw"

	"github.com/framegrace/texelpaint/texelui/color"
	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
	"github.com/framegrace/texelpaint/texelui/pubsub"
)

// DefaultMaxThickness bounds the stroke thickness set from the slider.
const DefaultMaxThickness = 40

// Options configures a Manager.
type Options struct {
	MaxThickness int
	Color        color.Color
	Background   color.Color
	Initial      ID
}

// Manager holds the drawing state shared by the canvas and the toolbar:
// current instrument, color, thickness and the stroke in progress. It has
// its own registry identity so instruments can publish through it.
type Manager struct {
	ctx *core.Context
	id  pubsub.ID

	instruments  map[ID]Instrument
	current      ID
	color        color.Color
	thickness    int
	maxThickness int
	applying     bool
	last         image.Point
}

// NewManager registers the built-in rect, clear and dropper instruments.
func NewManager(ctx *core.Context, opts Options) *Manager {
	if opts.MaxThickness <= 0 {
		opts.MaxThickness = DefaultMaxThickness
	}
	if opts.Background == (color.Color{}) {
		opts.Background = color.White
	}
	m := &Manager{
		ctx:          ctx,
		id:           ctx.Registry.NextID(),
		instruments:  make(map[ID]Instrument),
		color:        opts.Color,
		thickness:    1,
		maxThickness: opts.MaxThickness,
	}
	m.Register(RectFill, &RectInstrument{})
	m.Register(Clear, &ClearInstrument{Background: opts.Background})
	m.Register(Dropper, &DropperInstrument{Sample: m.dropped})
	m.current = opts.Initial
	return m
}

// ID lets the manager act as a publisher.
func (m *Manager) ID() pubsub.ID { return m.id }

// Register installs inst under id, replacing any previous one.
func (m *Manager) Register(id ID, inst Instrument) {
	if inst == nil {
		panic("instruments: nil instrument")
	}
	m.instruments[id] = inst
}

// Select makes id current. Unknown ids are ignored and reported false.
// Switching while a stroke is in progress is deferred until it ends.
func (m *Manager) Select(id ID) bool {
	if _, ok := m.instruments[id]; !ok {
		log.Printf("Instruments: no instrument registered for %v", id)
		return false
	}
	if m.applying {
		return false
	}
	m.current = id
	return true
}

func (m *Manager) Current() ID            { return m.current }
func (m *Manager) Color() color.Color     { return m.color }
func (m *Manager) SetColor(c color.Color) { m.color = c }
func (m *Manager) Thickness() int         { return m.thickness }
func (m *Manager) MaxThickness() int      { return m.maxThickness }
func (m *Manager) Applying() bool         { return m.applying }
func (m *Manager) LastPoint() image.Point { return m.last }
func (m *Manager) Instrument() (Instrument, bool) {
	inst, ok := m.instruments[m.current]
	return inst, ok
}

// SetThickness clamps n to [1, MaxThickness].
func (m *Manager) SetThickness(n int) { m.thickness = geom.Clamp(n, 1, m.maxThickness) }

func (m *Manager) stroke(at image.Point) Stroke {
	return Stroke{At: at, Last: m.last, Color: m.color, Thickness: m.thickness}
}

// Begin starts a stroke at at.
func (m *Manager) Begin(canvas draw.Image, at image.Point) {
	inst, ok := m.Instrument()
	if !ok {
		return
	}
	m.applying = true
	m.last = at
	inst.Begin(canvas, m.stroke(at))
}

// Apply continues the stroke. Without a Begin it does nothing.
func (m *Manager) Apply(canvas draw.Image, at image.Point) {
	inst, ok := m.Instrument()
	if !ok || !m.applying {
		return
	}
	inst.Apply(canvas, m.stroke(at))
	m.last = at
}

// End finishes the stroke.
func (m *Manager) End(canvas draw.Image, at image.Point) {
	inst, ok := m.Instrument()
	if !ok || !m.applying {
		return
	}
	inst.End(canvas, m.stroke(at))
	m.applying = false
	m.last = at
}

// Preview reports a shape the current instrument wants drawn over the canvas.
func (m *Manager) Preview() (image.Rectangle, color.Color, bool) {
	inst, ok := m.Instrument()
	if !ok {
		return image.Rectangle{}, color.Color{}, false
	}
	if p, ok := inst.(Previewer); ok {
		return p.Preview()
	}
	return image.Rectangle{}, color.Color{}, false
}

func (m *Manager) dropped(c color.Color) {
	m.color = c
	m.ctx.Publish(m, event.DropperApplied{Color: c})
}

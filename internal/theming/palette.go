package theming

import (
	"github.com/framegrace/texelpaint/config"
	"github.com/framegrace/texelpaint/texelui/color"
)

// Palette holds the colors the layouts build widgets with.
type Palette struct {
	Window     color.Color
	Toolbar    color.Color
	Button     color.Color
	Accent     color.Color
	Text       color.Color
	Dialog     color.Color
	Highlight  color.Color
	Canvas     color.Color
	Ink        color.Color
	ButtonText color.Color
}

// Default is used when no configuration is available.
var Default = Palette{
	Window:    color.RGB(0x2e, 0x34, 0x40),
	Toolbar:   color.RGB(0x3b, 0x42, 0x52),
	Button:    color.RGB(0x4c, 0x56, 0x6a),
	Accent:    color.RGB(0x88, 0xc0, 0xd0),
	Text:      color.RGB(0xec, 0xef, 0xf4),
	Dialog:    color.RGB(0x43, 0x4c, 0x5e),
	Highlight: color.RGB(0x5e, 0x81, 0xac),
	Canvas:    color.White,
	Ink:       color.Black,
}

// FromConfig reads the theme and canvas sections of cfg, falling back to
// Default per key.
func FromConfig(cfg config.Config) Palette {
	d := Default
	p := Palette{
		Window:    cfg.GetColor("theme", "window", d.Window),
		Toolbar:   cfg.GetColor("theme", "toolbar", d.Toolbar),
		Button:    cfg.GetColor("theme", "button", d.Button),
		Accent:    cfg.GetColor("theme", "accent", d.Accent),
		Text:      cfg.GetColor("theme", "text", d.Text),
		Dialog:    cfg.GetColor("theme", "dialog", d.Dialog),
		Highlight: cfg.GetColor("theme", "highlight", d.Highlight),
		Canvas:    cfg.GetColor("canvas", "background", d.Canvas),
		Ink:       cfg.GetColor("instruments", "color", d.Ink),
	}
	p.ButtonText = p.Button.Contrast()
	return p
}

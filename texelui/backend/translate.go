package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button event.Button
}{
	{tcell.Button1, event.ButtonLeft},
	{tcell.Button2, event.ButtonRight},
	{tcell.Button3, event.ButtonMiddle},
}

var specialKeys = map[tcell.Key]event.Key{
	tcell.KeyBackspace:  event.KeyBackspace,
	tcell.KeyBackspace2: event.KeyBackspace,
	tcell.KeyLeft:       event.KeyLeft,
	tcell.KeyRight:      event.KeyRight,
	tcell.KeyEnter:      event.KeyReturn,
	tcell.KeyEscape:     event.KeyEscape,
}

// translate maps one tcell event to zero or more widget events.
func (s *Screen) translate(ev tcell.Event) []event.Event {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return []event.Event{event.Resize{Size: geom.Size{W: w, H: h}}}
	case *tcell.EventKey:
		return translateKey(e)
	case *tcell.EventMouse:
		return s.translateMouse(e)
	}
	return nil
}

func translateKey(e *tcell.EventKey) []event.Event {
	if e.Key() == tcell.KeyCtrlC {
		return []event.Event{event.WindowClosed{}}
	}
	ctrl := e.Modifiers()&tcell.ModCtrl != 0
	if k, ok := specialKeys[e.Key()]; ok {
		return []event.Event{event.KeyPressed{Key: k, Ctrl: ctrl}}
	}
	if e.Key() != tcell.KeyRune {
		return nil
	}
	k, shift := event.KeyFromRune(e.Rune())
	if k == event.KeyUndefined {
		return nil
	}
	return []event.Event{event.KeyPressed{Key: k, Shift: shift, Ctrl: ctrl}}
}

// translateMouse diffs the button mask against the previous one. Every
// changed button yields a press or release; no change is a move.
func (s *Screen) translateMouse(e *tcell.EventMouse) []event.Event {
	x, y := e.Position()
	pos := geom.Point{X: x, Y: y}
	now := e.Buttons()
	var out []event.Event
	for _, b := range mouseButtons {
		was, is := s.buttons&b.mask != 0, now&b.mask != 0
		switch {
		case is && !was:
			out = append(out, event.MouseButton{Pos: pos, Button: b.button, Action: event.Pressed})
		case was && !is:
			out = append(out, event.MouseButton{Pos: pos, Button: b.button, Action: event.Released})
		}
	}
	s.buttons = now
	if len(out) == 0 {
		out = append(out, event.MouseMove{Pos: pos})
	}
	return out
}

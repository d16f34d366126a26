package event

import "strings"

// Key is the reduced keyboard alphabet understood by widgets.
type Key int

const (
	KeyUndefined Key = iota - 1
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyBackspace
	KeyLeft
	KeyRight
	KeySpace
	KeyReturn
	KeyEscape
	KeyDot
)

var namedKeys = map[string]Key{
	"backspace": KeyBackspace,
	"left":      KeyLeft,
	"right":     KeyRight,
	"space":     KeySpace,
	"return":    KeyReturn,
	"enter":     KeyReturn,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"dot":       KeyDot,
	".":         KeyDot,
}

// KeyFromRune maps a letter, space or dot to a Key. Uppercase letters report
// shift.
func KeyFromRune(r rune) (k Key, shift bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), false
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	case r == ' ':
		return KeySpace, false
	case r == '.':
		return KeyDot, false
	}
	return KeyUndefined, false
}

// ParseKey accepts a single letter or one of the named keys.
func ParseKey(s string) Key {
	s = strings.ToLower(strings.TrimSpace(s))
	if k, ok := namedKeys[s]; ok {
		return k
	}
	if len(s) == 1 {
		k, _ := KeyFromRune(rune(s[0]))
		return k
	}
	return KeyUndefined
}

// Rune returns the printable character for k, or 0.
func (k Key) Rune(shift bool) rune {
	switch {
	case k >= KeyA && k <= KeyZ:
		if shift {
			return 'A' + rune(k-KeyA)
		}
		return 'a' + rune(k-KeyA)
	case k == KeySpace:
		return ' '
	case k == KeyDot:
		return '.'
	}
	return 0
}

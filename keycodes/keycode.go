// Package keycodes defines the key vocabulary the editor consumes and
// the decoding from tcell's richer event type onto it.
package keycodes

import "github.com/gdamore/tcell/v2"

// Key identifies a decoded key press.
type Key int

const (
	// KeyIgnore marks presses the editor does not react to.
	KeyIgnore Key = iota
	// KeyRune is an unmodified character key; Event.Rune carries it.
	KeyRune
	KeyEscape
	KeyBackspace
)

// Event is one key press in the editor's vocabulary.
type Event struct {
	Key  Key
	Rune rune
}

// FromTcell maps a tcell key event onto the vocabulary. Both
// backspace encodings (BS and DEL) count as backspace; arrows,
// function keys and any ctrl/alt-modified press decode to KeyIgnore.
// Shift alone is not a modifier: it is part of the character.
func FromTcell(ev *tcell.EventKey) Event {
	if ev.Modifiers()&^tcell.ModShift != 0 {
		return Event{Key: KeyIgnore}
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		return Event{Key: KeyEscape}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace}
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune()}
	}
	return Event{Key: KeyIgnore}
}

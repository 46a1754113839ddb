package editors

import (
	"sync"

	"github.com/ChAoSUnItY/rvim/keycodes"
)

// Editor is one editing session: the document buffer, its line index,
// the cursor, the viewport and the current mode. A single mutex
// serializes operations so the handle can be shared between the loader
// and the session loop; the lock is held for one operation at a time,
// never across a blocking event read.
type Editor struct {
	mu      sync.Mutex
	buf     *Buffer
	lines   []Span
	cursor  int
	topLine int
	mode    Mode
	path    string
}

// New builds an editor over the loaded content of the file at path.
func New(path, content string) *Editor {
	ed := &Editor{
		buf:  NewBuffer(content),
		path: path,
	}
	ed.lines = RebuildLines(ed.buf)
	return ed
}

func (ed *Editor) Mode() Mode {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.mode
}

func (ed *Editor) Cursor() int {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.cursor
}

// Contents returns the current document text.
func (ed *Editor) Contents() string {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.buf.String()
}

// HandleKey feeds one decoded key press into the mode state machine.
// height is the text-area height in rows, used to keep the cursor's
// line inside the viewport afterwards. quit is set when the user asked
// to end the session; err carries a failed save out of insert mode.
func (ed *Editor) HandleKey(ev keycodes.Event, height int) (quit bool, err error) {
	ed.mu.Lock()
	defer ed.mu.Unlock()

	switch ed.mode {
	case ModeNormal:
		quit = ed.handleNormal(ev)
	case ModeInsert:
		err = ed.handleInsert(ev)
	}
	ed.scrollIntoView(height)
	return quit, err
}

func (ed *Editor) handleNormal(ev keycodes.Event) bool {
	if ev.Key != keycodes.KeyRune {
		return false
	}
	switch ev.Rune {
	case 'q':
		return true
	case 'e':
		ed.mode = ModeInsert
	case 'a':
		ed.moveLeft()
	case 'd':
		ed.moveRight()
	case 'w':
		ed.moveVertical(-1)
	case 's':
		ed.moveVertical(1)
	}
	return false
}

func (ed *Editor) handleInsert(ev keycodes.Event) error {
	switch ev.Key {
	case keycodes.KeyEscape:
		// Leaving insert mode persists the document, every time.
		ed.mode = ModeNormal
		return ed.save()
	case keycodes.KeyBackspace:
		if ed.cursor == 0 {
			return nil
		}
		if _, err := ed.buf.Remove(ed.cursor - 1); err != nil {
			return err
		}
		ed.cursor--
		ed.lines = RebuildLines(ed.buf)
	case keycodes.KeyRune:
		if err := ed.buf.Insert(ed.cursor, ev.Rune); err != nil {
			return err
		}
		ed.cursor++
		ed.lines = RebuildLines(ed.buf)
	}
	return nil
}

func (ed *Editor) moveLeft() {
	if ed.cursor > 0 {
		ed.cursor--
	}
}

func (ed *Editor) moveRight() {
	if ed.cursor < ed.buf.Len() {
		ed.cursor++
	}
}

// moveVertical moves the cursor delta lines, keeping the column where
// the target line is long enough and clamping to its end otherwise.
// The column is not sticky: a clamp is permanent.
func (ed *Editor) moveVertical(delta int) {
	line := LineOf(ed.lines, ed.cursor)
	column := ed.cursor - ed.lines[line].Begin

	target := line + delta
	if target < 0 || target >= len(ed.lines) {
		return
	}
	ed.cursor = min(ed.lines[target].Begin+column, ed.lines[target].End)
}

// scrollIntoView adjusts topLine so the cursor's line is inside the
// height-row window.
func (ed *Editor) scrollIntoView(height int) {
	if height <= 0 {
		return
	}
	line := LineOf(ed.lines, ed.cursor)
	if line < ed.topLine {
		ed.topLine = line
	}
	if line >= ed.topLine+height {
		ed.topLine = line - height + 1
	}
}

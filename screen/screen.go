// Package screen owns the raw terminal session. It brings tcell's
// screen up and down symmetrically and exposes only the narrow
// surface the editor's session loop needs.
package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ChAoSUnItY/rvim/editors"
	"github.com/ChAoSUnItY/rvim/keycodes"
)

// Screen is the tcell-backed terminal collaborator. It satisfies
// editors.Terminal.
type Screen struct {
	tc tcell.Screen
}

// New allocates the terminal screen and switches it into raw mode.
// Every successful New must be paired with a Fini on all exit paths;
// a failure here leaves the terminal untouched.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	return &Screen{tc: tc}, nil
}

// Fini restores the terminal to its original cooked, echoing state.
func (s *Screen) Fini() {
	s.tc.Fini()
}

func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// PollKey blocks until the next key press and decodes it. A terminal
// resize surfaces as KeyIgnore so the caller redraws at the new size;
// all other event kinds are swallowed.
func (s *Screen) PollKey() keycodes.Event {
	for {
		switch ev := s.tc.PollEvent().(type) {
		case *tcell.EventKey:
			return keycodes.FromTcell(ev)
		case *tcell.EventResize:
			s.tc.Sync()
			return keycodes.Event{Key: keycodes.KeyIgnore}
		}
	}
}

// Draw paints one complete frame and parks the cursor.
func (s *Screen) Draw(f editors.Frame) {
	s.tc.Clear()
	width, height := s.tc.Size()
	for row, line := range f.Rows {
		if row >= height {
			break
		}
		col := 0
		for _, ch := range line {
			if col >= width {
				break
			}
			s.tc.SetContent(col, row, ch, nil, tcell.StyleDefault)
			col++
		}
	}
	s.tc.ShowCursor(min(f.CursorCol, width-1), f.CursorRow)
	s.tc.Show()
}

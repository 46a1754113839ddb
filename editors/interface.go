package editors

import "github.com/ChAoSUnItY/rvim/keycodes"

// Terminal is the narrow surface the interactive session drives. The
// real implementation wraps a tcell screen; tests substitute a
// scripted fake.
type Terminal interface {
	// Size reports the current terminal dimensions in cells.
	Size() (width, height int)
	// PollKey blocks until the next key press and returns it decoded.
	PollKey() keycodes.Event
	// Draw paints one complete frame and repositions the cursor.
	Draw(Frame)
}

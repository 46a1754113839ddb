package editors

// Frame is one full redraw: the rows to paint top to bottom, exactly
// terminal-height of them, and where the terminal cursor belongs
// afterwards. The last row is the status line.
type Frame struct {
	Rows      []string
	CursorRow int
	CursorCol int
}

// Render computes the frame for a width x height terminal. Text
// occupies the rows above the status line, each one line of the
// document truncated to width; rows past the end of the document show
// a "~" marker. There is no diffing, every frame is complete.
func (ed *Editor) Render(width, height int) Frame {
	ed.mu.Lock()
	defer ed.mu.Unlock()

	if width < 1 || height < 1 {
		return Frame{}
	}

	rows := make([]string, 0, height)
	for i := 0; i < height-1; i++ {
		n := ed.topLine + i
		if n >= len(ed.lines) {
			rows = append(rows, "~")
			continue
		}
		text := ed.buf.Slice(ed.lines[n].Begin, ed.lines[n].End)
		if len(text) > width {
			text = text[:width]
		}
		rows = append(rows, string(text))
	}
	rows = append(rows, ed.statusLine(width))

	line := LineOf(ed.lines, ed.cursor)
	column := ed.cursor - ed.lines[line].Begin
	return Frame{
		Rows:      rows,
		CursorRow: line - ed.topLine,
		CursorCol: min(column, width),
	}
}

func (ed *Editor) statusLine(width int) string {
	status := ed.path
	if ed.mode == ModeInsert {
		status = "[" + ed.mode.String() + "]"
	}
	if runes := []rune(status); len(runes) > width {
		status = string(runes[:width])
	}
	return status
}

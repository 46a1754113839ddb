package editors

// Span is one line's range of buffer indices. End is the index of the
// line's terminating newline (or the buffer length for the last line),
// so the newline itself is not part of the line's text, but a cursor
// sitting at End still belongs to this line.
type Span struct {
	Begin int
	End   int
}

// RebuildLines derives the line index from scratch. The spans
// partition [0, len] with no gaps: span i ends at the i-th newline and
// span i+1 begins one past it. An empty buffer still has exactly one
// zero-length line.
func RebuildLines(buf *Buffer) []Span {
	var spans []Span
	begin := 0
	for i := 0; i < buf.Len(); i++ {
		if buf.At(i) == '\n' {
			spans = append(spans, Span{Begin: begin, End: i})
			begin = i + 1
		}
	}
	return append(spans, Span{Begin: begin, End: buf.Len()})
}

// LineOf returns the line whose span contains cursor. The index must
// have been rebuilt since the last buffer mutation.
func LineOf(spans []Span, cursor int) int {
	for i, s := range spans {
		if s.Begin <= cursor && cursor <= s.End {
			return i
		}
	}
	return 0
}

package editors

import (
	"errors"
	"slices"
)

// ErrIndexOutOfRange is returned when an insert or remove position
// falls outside the buffer's valid range.
var ErrIndexOutOfRange = errors.New("buffer index out of range")

// Buffer holds the whole document as a flat rune sequence. It has no
// notion of lines; RebuildLines derives those.
type Buffer struct {
	data []rune
}

func NewBuffer(content string) *Buffer {
	return &Buffer{data: []rune(content)}
}

// Insert places ch before position at. Valid insertion points run from
// 0 through Len inclusive.
func (b *Buffer) Insert(at int, ch rune) error {
	if at < 0 || at > len(b.data) {
		return ErrIndexOutOfRange
	}
	b.data = slices.Insert(b.data, at, ch)
	return nil
}

// Remove deletes and returns the rune at position at.
func (b *Buffer) Remove(at int) (rune, error) {
	if at < 0 || at >= len(b.data) {
		return 0, ErrIndexOutOfRange
	}
	ch := b.data[at]
	b.data = slices.Delete(b.data, at, at+1)
	return ch, nil
}

func (b *Buffer) Len() int {
	return len(b.data)
}

func (b *Buffer) At(i int) rune {
	return b.data[i]
}

// Slice copies out the runes in [begin, end).
func (b *Buffer) Slice(begin, end int) []rune {
	return slices.Clone(b.data[begin:end])
}

func (b *Buffer) String() string {
	return string(b.data)
}

package editors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChAoSUnItY/rvim/keycodes"
)

const testHeight = 24

func keyRune(r rune) keycodes.Event {
	return keycodes.Event{Key: keycodes.KeyRune, Rune: r}
}

func press(t *testing.T, ed *Editor, evs ...keycodes.Event) {
	t.Helper()
	for _, ev := range evs {
		_, err := ed.HandleKey(ev, testHeight)
		require.NoError(t, err)
	}
}

func TestMoveClampLaws(t *testing.T) {
	ed := New("clamp.txt", "ab\ncd")

	press(t, ed, keyRune('a'))
	assert.Equal(t, 0, ed.Cursor(), "move left at start is a no-op")

	press(t, ed, keyRune('w'))
	assert.Equal(t, 0, ed.Cursor(), "move up on line 0 is a no-op")

	for i := 0; i < 10; i++ {
		press(t, ed, keyRune('d'))
	}
	assert.Equal(t, 5, ed.Cursor(), "move right clamps at len")

	press(t, ed, keyRune('s'))
	assert.Equal(t, 5, ed.Cursor(), "move down on the last line is a no-op")
}

func TestMoveDownKeepsColumn(t *testing.T) {
	// "ab\ncd", cursor on 'a': column 0 exists on both lines, so the
	// cursor lands on 'c'.
	ed := New("move.txt", "ab\ncd")

	press(t, ed, keyRune('s'))
	assert.Equal(t, 3, ed.Cursor())
}

func TestMoveDownClampsToShorterLine(t *testing.T) {
	// "ab\nc", cursor on 'b' (column 1): the target line only reaches
	// index 4, so the column clamps there.
	ed := New("move.txt", "ab\nc")
	press(t, ed, keyRune('d'))
	require.Equal(t, 1, ed.Cursor())

	press(t, ed, keyRune('s'))
	assert.Equal(t, 4, ed.Cursor())
}

func TestMoveUpClampsToShorterLine(t *testing.T) {
	ed := New("move.txt", "a\nbcde")
	for i := 0; i < 5; i++ {
		press(t, ed, keyRune('d'))
	}
	require.Equal(t, 5, ed.Cursor(), "cursor at column 3 of line 1")

	press(t, ed, keyRune('w'))
	assert.Equal(t, 1, ed.Cursor(), "line 0 ends at index 1")
}

func TestNormalModeIgnoresOtherKeys(t *testing.T) {
	ed := New("ignore.txt", "abc")

	press(t, ed, keyRune('z'), keyRune('Q'),
		keycodes.Event{Key: keycodes.KeyBackspace},
		keycodes.Event{Key: keycodes.KeyIgnore})

	assert.Equal(t, ModeNormal, ed.Mode())
	assert.Equal(t, 0, ed.Cursor())
	assert.Equal(t, "abc", ed.Contents())
}

func TestQuitSignal(t *testing.T) {
	ed := New("quit.txt", "")

	quit, err := ed.HandleKey(keyRune('q'), testHeight)
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Equal(t, ModeNormal, ed.Mode(), "quit does not change the state machine")
}

func TestEnterInsertAndType(t *testing.T) {
	ed := New("insert.txt", "bc")

	press(t, ed, keyRune('e'))
	assert.Equal(t, ModeInsert, ed.Mode())

	press(t, ed, keyRune('x'))
	assert.Equal(t, "xbc", ed.Contents())
	assert.Equal(t, 1, ed.Cursor())
}

func TestInsertModeSwallowsNormalCommands(t *testing.T) {
	ed := New("insert.txt", "")

	press(t, ed, keyRune('e'), keyRune('q'), keyRune('w'))
	assert.Equal(t, "qw", ed.Contents(), "q and w are literal text in insert mode")
	assert.Equal(t, ModeInsert, ed.Mode())
}

func TestBackspace(t *testing.T) {
	ed := New("bs.txt", "ab")

	press(t, ed, keyRune('d'), keyRune('e'),
		keycodes.Event{Key: keycodes.KeyBackspace})

	assert.Equal(t, "b", ed.Contents())
	assert.Equal(t, 0, ed.Cursor())
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	ed := New("bs.txt", "ab")

	press(t, ed, keyRune('e'), keycodes.Event{Key: keycodes.KeyBackspace})

	assert.Equal(t, "ab", ed.Contents())
	assert.Equal(t, 0, ed.Cursor())
}

func TestInsertBackspaceRoundTrip(t *testing.T) {
	ed := New("rt.txt", "hello")

	press(t, ed, keyRune('d'), keyRune('d'))
	require.Equal(t, 2, ed.Cursor())

	press(t, ed, keyRune('e'), keyRune('Z'),
		keycodes.Event{Key: keycodes.KeyBackspace})

	assert.Equal(t, "hello", ed.Contents(), "typing then backspacing restores the buffer")
	assert.Equal(t, 2, ed.Cursor(), "and the cursor position")
}

func TestEscapeSavesAndReturnsToNormal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	ed := New(path, "")

	press(t, ed, keyRune('e'), keyRune('h'), keyRune('i'))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "typing alone must not save")

	press(t, ed, keycodes.Event{Key: keycodes.KeyEscape})
	assert.Equal(t, ModeNormal, ed.Mode())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestSaveFailurePropagates(t *testing.T) {
	ed := New(filepath.Join(t.TempDir(), "missing", "out.txt"), "x")

	press(t, ed, keyRune('e'))
	_, err := ed.HandleKey(keycodes.Event{Key: keycodes.KeyEscape}, testHeight)
	assert.Error(t, err)
	assert.Equal(t, ModeNormal, ed.Mode(), "the mode transition still happens")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	content := "líne one\nline two\n\ntrailing"
	ed := New(path, content)

	require.NoError(t, ed.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	reloaded := New(path, string(data))
	assert.Equal(t, content, reloaded.Contents())
}

func TestEmptyFile(t *testing.T) {
	ed := New("empty.txt", "")

	press(t, ed, keyRune('a'), keyRune('d'), keyRune('w'), keyRune('s'))
	assert.Equal(t, 0, ed.Cursor(), "all movement is a no-op on an empty buffer")
	assert.Equal(t, []Span{{Begin: 0, End: 0}}, ed.lines)
}

func TestViewportFollowsCursor(t *testing.T) {
	ed := New("scroll.txt", "0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	height := 4

	for i := 0; i < 6; i++ {
		_, err := ed.HandleKey(keyRune('s'), height)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, ed.topLine, "cursor on line 6 pushes the window down")

	for i := 0; i < 6; i++ {
		_, err := ed.HandleKey(keyRune('w'), height)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, ed.topLine, "moving back up pulls the window up")
}

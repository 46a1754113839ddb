package editors

import (
	"bufio"
	"fmt"
	"os"
)

// Save writes the document to the editor's file path.
func (ed *Editor) Save() error {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.save()
}

// save serializes the whole buffer to the target path, truncating any
// previous content. Last successful write wins; there is no backup
// copy or atomic rename. Callers hold ed.mu.
func (ed *Editor) save() error {
	f, err := os.Create(ed.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", ed.path, err)
	}

	w := bufio.NewWriter(f)
	for i := 0; i < ed.buf.Len(); i++ {
		if _, err := w.WriteRune(ed.buf.At(i)); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", ed.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", ed.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", ed.path, err)
	}
	return nil
}

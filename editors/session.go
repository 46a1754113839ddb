package editors

// Session runs the interactive loop: render a frame, block for the
// next key, dispatch it, repeat. It returns nil on a clean quit and
// the first error otherwise. The caller owns terminal setup and
// teardown; the editor lock is never held while PollKey blocks.
func Session(ed *Editor, term Terminal) error {
	for {
		w, h := term.Size()
		term.Draw(ed.Render(w, h))

		quit, err := ed.HandleKey(term.PollKey(), h-1)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/ChAoSUnItY/rvim/editors"
	"github.com/ChAoSUnItY/rvim/screen"
)

var logfile *os.File
var logOpen sync.Once

// logf appends a timestamped line to rvim.log. Stdout belongs to the
// raw-mode screen, so this file is the only diagnostic channel while
// the session runs. If the log cannot be opened, messages are dropped.
func logf(format string, args ...interface{}) {
	logOpen.Do(func() {
		logfile, _ = os.OpenFile("rvim.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	})
	if logfile == nil {
		return
	}
	format = strings.TrimSpace(format)

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(logfile, "%s %s\n", timestamp, fmt.Sprintf(format, args...))
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	ed := editors.New(path, string(content))

	scr, err := screen.New()
	if err != nil {
		return fmt.Errorf("failed to configure terminal: %w", err)
	}
	defer scr.Fini()

	logf("editing %s (%d bytes)", path, len(content))
	if err := editors.Session(ed, scr); err != nil {
		logf("session ended with error: %v", err)
		return err
	}
	logf("clean quit")
	return nil
}

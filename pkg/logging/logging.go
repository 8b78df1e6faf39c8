// Package logging sets up the line oriented request log.
package logging

import (
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

// Stdout selects standard output instead of a log file.
const Stdout = "-"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a writer appending to path. When console is not nil, lines are copied to it too.
func Open(path string, console io.Writer) (io.Writer, io.Closer, error) {
	if path == Stdout {
		return os.Stdout, nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	if console == nil {
		return f, f, nil
	}
	return io.MultiWriter(f, console), f, nil
}

// Setup points the standard logger at path, mirrored to stderr when it is a terminal.
func Setup(path string) (io.Closer, error) {
	var console io.Writer
	if term.IsTerminal(int(os.Stderr.Fd())) {
		console = os.Stderr
	}
	w, closer, err := Open(path, console)
	if err != nil {
		return nil, err
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return closer, nil
}

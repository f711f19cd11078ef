// Released under an MIT license. See LICENSE.

// Package terminal switches the controlling terminal in and out of raw mode
// while a program runs, so that , sees keystrokes as they are typed.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// Restore returns the terminal to the mode it was in before Raw.
type Restore func() error

// Raw puts the terminal on stdin in raw mode. If stdin is not a terminal
// nothing is changed and the returned Restore does nothing.
func Raw() (Restore, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) {
		return func() error { return nil }, nil
	}

	cooked, err := liner.TerminalMode()
	if err != nil {
		return nil, err
	}

	err = raw(int(fd))
	if err != nil {
		return nil, err
	}

	return cooked.ApplyMode, nil
}

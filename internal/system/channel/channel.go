// Released under an MIT license. See LICENSE.

// Package channel provides the byte channel between a program and the
// outside world.
package channel

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// T (channel) reads and writes single bytes.
type T struct {
	r *bufio.Reader
	w *bufio.Writer

	// Unbuffered output is flushed after every byte.
	unbuffered bool
}

// New creates a new channel. Output is unbuffered if unbuffered is true.
func New(r io.Reader, w io.Writer, unbuffered bool) *T {
	return &T{
		r:          bufio.NewReader(r),
		w:          bufio.NewWriter(w),
		unbuffered: unbuffered,
	}
}

// Standard creates a channel on stdin and stdout. Output to a terminal
// is unbuffered.
func Standard() *T {
	return New(os.Stdin, os.Stdout, isTerminal(os.Stdout))
}

// Flush writes any buffered output.
func (c *T) Flush() error {
	return c.w.Flush()
}

// ReadByte returns the next input byte, or 0 at the end of input.
func (c *T) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}

	return b, err
}

// WriteByte writes b.
func (c *T) WriteByte(b byte) error {
	err := c.w.WriteByte(b)
	if err != nil || !c.unbuffered {
		return err
	}

	return c.w.Flush()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

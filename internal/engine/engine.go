// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for lexed bfpp code.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/michaelmacinnis/bfpp/internal/engine/frame"
	"github.com/michaelmacinnis/bfpp/internal/engine/track"
	"github.com/michaelmacinnis/bfpp/internal/interface/cell"
	"github.com/michaelmacinnis/bfpp/internal/type/inst"
	"github.com/michaelmacinnis/bfpp/internal/type/num"
	"github.com/michaelmacinnis/bfpp/internal/type/tape"
)

// T (engine) is a facade in front of the machinery for running bfpp code.
type T struct {
	root    *frame.T
	runtime *frame.Runtime
}

// New creates a new T. Programs read from in and write to out.
func New(c tape.Config, in io.ByteReader, out io.ByteWriter) *T {
	return &T{
		runtime: &frame.Runtime{
			Config: c,
			In:     in,
			Out:    out,
			Track:  track.New(),
		},
	}
}

// Close releases the root frame left by the last run.
func (e *T) Close() {
	if e.root != nil {
		e.root.Close()
		e.root = nil
	}
}

// Dump logs every non-zero cell of the root frame's tape.
func (e *T) Dump() {
	if e.root == nil {
		return
	}

	t := e.root.Tape()

	log.Debug("tape", "length", t.Len(), "cursor", t.Cursor())

	t.Each(func(i int, c cell.T) {
		if !num.Zero.Equal(c) {
			log.Debug("cell", "index", i, "type", c.Name(), "content", c)
		}
	})
}

// Root returns the root frame of the last run.
func (e *T) Root() *frame.T {
	return e.root
}

// Run executes code in a new root frame. The root frame from any previous
// run is released first.
func (e *T) Run(code []inst.T) error {
	e.Close()

	e.root = frame.New(e.runtime, code, nil)

	return e.root.Run()
}

// Track returns the tracker counting frames and functions.
func (e *T) Track() *track.T {
	return e.runtime.Track
}

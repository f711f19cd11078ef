// Released under an MIT license. See LICENSE.

// Package frame provides bfpp's execution frame: one tape, one instruction
// pointer and a link to the frame that created it.
package frame

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/michaelmacinnis/bfpp/internal/engine/loop"
	"github.com/michaelmacinnis/bfpp/internal/engine/track"
	"github.com/michaelmacinnis/bfpp/internal/interface/cell"
	"github.com/michaelmacinnis/bfpp/internal/type/fault"
	"github.com/michaelmacinnis/bfpp/internal/type/fn"
	"github.com/michaelmacinnis/bfpp/internal/type/inst"
	"github.com/michaelmacinnis/bfpp/internal/type/num"
	"github.com/michaelmacinnis/bfpp/internal/type/tape"
)

// Runtime is the state shared by every frame in a run.
type Runtime struct {
	Config tape.Config
	In     io.ByteReader
	Out    io.ByteWriter
	Track  *track.T
}

// T (frame) is one instance of the interpreter state.
type T struct {
	code    []inst.T
	depth   int
	ip      int
	loops   loop.T
	parent  *T
	runtime *Runtime
	tape    *tape.T
}

type frame = T

// New creates a new frame that executes a private copy of code.
// The parent is nil for the root frame.
func New(r *Runtime, code []inst.T, parent *frame) *frame {
	f := &frame{
		code:    inst.Clone(code),
		parent:  parent,
		runtime: r,
		tape:    tape.New(r.Config),
	}

	if parent != nil {
		f.depth = parent.depth + 1
	}

	f.tape.OnGrow = func(from, to int) {
		log.Debug("tape grew", "depth", f.depth, "from", from, "to", to)
	}

	r.Track.Alloc(track.Frame)

	return f
}

// Close releases the frame's tape and instructions.
func (f *frame) Close() {
	if f.tape == nil {
		return
	}

	f.tape.Each(func(_ int, c cell.T) {
		f.release(c)
	})

	f.code = nil
	f.tape = nil

	f.runtime.Track.Free(track.Frame)
}

// Depth returns the number of frames between f and the root frame.
func (f *frame) Depth() int {
	return f.depth
}

// IP returns the position of the next instruction.
func (f *frame) IP() int {
	return f.ip
}

// Loops returns the number of loop bodies currently executing.
func (f *frame) Loops() int {
	return f.loops.Len()
}

// Parent returns the frame that created f.
func (f *frame) Parent() *frame {
	return f.parent
}

// Tape returns the frame's tape.
func (f *frame) Tape() *tape.T {
	return f.tape
}

// Run executes instructions until the end of the stream or a fault.
func (f *frame) Run() error {
	for f.ip < len(f.code) {
		i := f.code[f.ip]

		err := f.step(i)
		if err != nil {
			return fault.Locate(err, i.Source)
		}
	}

	if top, open := f.loops.Top(); open {
		return fault.At(f.code[top].Source, fault.MismatchedLoop,
			"[ has no matching ]")
	}

	return nil
}

func (f *frame) step(i inst.T) error {
	switch i.Op {
	case inst.Increment, inst.Decrement:
		return f.arithmetic(i.Op)

	case inst.MoveLeft:
		return f.move(-1)

	case inst.MoveRight:
		return f.move(1)

	case inst.OpenLoop:
		return f.enter()

	case inst.CloseLoop:
		return f.repeat()

	case inst.OpenFunction:
		return f.define()

	case inst.CloseFunction:
		return fault.New(fault.MismatchedFunction, "} has no matching {")

	case inst.OpenCall:
		return f.call()

	case inst.CloseCall:
		return fault.New(fault.MismatchedCall, ") has no matching (")

	case inst.ScopeUp, inst.ScopeGlobal:
		// Only meaningful inside a call-specifier region.
		f.ip++

		return nil

	case inst.ReadChar:
		return f.read()

	case inst.WriteChar:
		return f.write()
	}

	return fmt.Errorf("unknown opcode %d", i.Op)
}

func (f *frame) arithmetic(op inst.Op) error {
	switch c := f.tape.Get().(type) {
	case num.T:
		if op == inst.Increment {
			f.tape.Set(c.Increment())
		} else {
			f.tape.Set(c.Decrement())
		}
	case *fn.T:
		return fault.New(fault.TypeMismatch, "%s is not valid on a function", op)
	default:
		return unexpected(c)
	}

	f.ip++

	return nil
}

func (f *frame) move(delta int) error {
	err := f.tape.Move(delta)
	if err != nil {
		return err
	}

	f.ip++

	return nil
}

func (f *frame) read() error {
	switch c := f.tape.Get().(type) {
	case num.T:
	case *fn.T:
		return fault.New(fault.TypeMismatch, ", is not valid on a function")
	default:
		return unexpected(c)
	}

	b, err := f.runtime.In.ReadByte()
	if errors.Is(err, io.EOF) {
		b, err = 0, nil
	}

	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	f.tape.Set(num.New(uint16(b)))
	f.ip++

	return nil
}

func (f *frame) write() error {
	switch c := f.tape.Get().(type) {
	case num.T:
		err := f.runtime.Out.WriteByte(c.Byte())
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	case *fn.T:
		return fault.New(fault.TypeMismatch, ". is not valid on a function")
	default:
		return unexpected(c)
	}

	f.ip++

	return nil
}

// put replaces the cell at index i, releasing what was there.
func (f *frame) put(i int, c cell.T) error {
	prev, err := f.tape.Put(i, c)
	if err != nil {
		return err
	}

	f.retain(c)
	f.release(prev)

	return nil
}

// store replaces the current cell, releasing what was there.
func (f *frame) store(c cell.T) {
	f.retain(c)
	f.release(f.tape.Set(c))
}

func (f *frame) release(c cell.T) {
	if fn.Is(c) {
		f.runtime.Track.Free(track.Function)
	}
}

func (f *frame) retain(c cell.T) {
	if fn.Is(c) {
		f.runtime.Track.Alloc(track.Function)
	}
}

func unexpected(c cell.T) error {
	return fault.New(fault.TypeMismatch, "unexpected %s cell", c.Name())
}

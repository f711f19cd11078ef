// Released under an MIT license. See LICENSE.

package frame

import (
	"github.com/michaelmacinnis/bfpp/internal/engine/loop"
	"github.com/michaelmacinnis/bfpp/internal/type/fault"
	"github.com/michaelmacinnis/bfpp/internal/type/inst"
)

// enter handles [. A zero value skips the body; anything else, including a
// function, enters it.
func (f *frame) enter() error {
	if f.tape.Get().Bool() {
		f.loops.Push(f.ip)
		f.ip++

		return nil
	}

	end := loop.Match(f.code, f.ip, inst.OpenLoop, inst.CloseLoop)
	if end < 0 {
		return fault.New(fault.MismatchedLoop, "[ has no matching ]")
	}

	f.ip = end + 1

	return nil
}

// repeat handles ]. The body runs again, without re-entering [, until the
// current cell is zero.
func (f *frame) repeat() error {
	top, ok := f.loops.Top()
	if !ok {
		return fault.New(fault.MismatchedLoop, "] has no matching [")
	}

	if f.tape.Get().Bool() {
		f.ip = top + 1

		return nil
	}

	f.loops.Pop()
	f.ip++

	return nil
}

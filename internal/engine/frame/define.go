// Released under an MIT license. See LICENSE.

package frame

import (
	"github.com/charmbracelet/log"

	"github.com/michaelmacinnis/bfpp/internal/engine/loop"
	"github.com/michaelmacinnis/bfpp/internal/type/fault"
	"github.com/michaelmacinnis/bfpp/internal/type/fn"
	"github.com/michaelmacinnis/bfpp/internal/type/inst"
)

// define captures the instructions between { and its matching } as a
// function and stores it in the current cell. Nested definitions are
// captured, not evaluated.
func (f *frame) define() error {
	end := loop.Match(f.code, f.ip, inst.OpenFunction, inst.CloseFunction)
	if end < 0 {
		return fault.New(fault.MismatchedFunction, "{ has no matching }")
	}

	body := fn.New(f.code[f.ip+1 : end])

	log.Debug("function defined",
		"depth", f.depth, "cell", f.tape.Cursor(), "length", body.Len())

	f.store(body)
	f.ip = end + 1

	return nil
}

// Released under an MIT license. See LICENSE.

package frame

import (
	"github.com/charmbracelet/log"

	"github.com/michaelmacinnis/bfpp/internal/interface/cell"
	"github.com/michaelmacinnis/bfpp/internal/type/fault"
	"github.com/michaelmacinnis/bfpp/internal/type/fn"
	"github.com/michaelmacinnis/bfpp/internal/type/inst"
	"github.com/michaelmacinnis/bfpp/internal/type/num"
)

// Specifier is the decoded content of a call-specifier region.
type Specifier struct {
	Arguments int  // Cells pulled from the left of the caller's cursor.
	Results   int  // Cells pushed at the caller's cursor.
	Scopes    int  // Parent links to follow before looking up the function.
	Global    bool // Look up the function in the root frame.

	end int
}

// Scan decodes the call-specifier region that starts after the ( at ip.
// It returns false if the region is not closed.
func Scan(code []inst.T, ip int) (Specifier, bool) {
	s := Specifier{}

	for j := ip + 1; j < len(code); j++ {
		switch code[j].Op {
		case inst.Decrement:
			s.Arguments++
		case inst.Increment:
			s.Results++
		case inst.ScopeUp:
			s.Scopes++
		case inst.ScopeGlobal:
			s.Global = true
		case inst.CloseCall:
			s.end = j

			return s, true
		default:
			// Ignored inside a call-specifier region.
		}
	}

	return s, false
}

// Resolve returns the frame whose tape holds the function for s.
func (f *frame) Resolve(s Specifier) (*frame, error) {
	target := f

	if s.Global {
		if s.Scopes > 0 {
			return nil, fault.New(fault.UnresolvableScope,
				"@ cannot be combined with '")
		}

		for target.parent != nil {
			target = target.parent
		}

		return target, nil
	}

	for n := 0; n < s.Scopes; n++ {
		if target.parent == nil {
			return nil, fault.New(fault.UnresolvableScope,
				"%d scope levels requested from a frame nested %d deep",
				s.Scopes, f.depth)
		}

		target = target.parent
	}

	return target, nil
}

// call handles ( ... ).
func (f *frame) call() error {
	var address int

	switch c := f.tape.Get().(type) {
	case num.T:
		address = int(c)
	case *fn.T:
		return fault.New(fault.TypeMismatch,
			"( requires a function address, not a function")
	default:
		return unexpected(c)
	}

	s, ok := Scan(f.code, f.ip)
	if !ok {
		return fault.New(fault.MismatchedCall, "( has no matching )")
	}

	target, err := f.Resolve(s)
	if err != nil {
		return err
	}

	callee, err := target.lookup(address)
	if err != nil {
		return err
	}

	args, err := f.pull(s.Arguments)
	if err != nil {
		return err
	}

	log.Debug("call",
		"depth", f.depth, "address", address, "scope", target.depth,
		"arguments", s.Arguments, "results", s.Results)

	results, err := f.invoke(callee, args, s.Results)
	if err != nil {
		return err
	}

	err = f.push(results)
	if err != nil {
		return err
	}

	f.ip = s.end + 1

	return nil
}

// invoke runs callee in a new child frame and returns copies of n result
// cells. The child is released before invoke returns.
func (f *frame) invoke(callee *fn.T, args []cell.T, n int) ([]cell.T, error) {
	child := New(f.runtime, callee.Code(), f)
	defer child.Close()

	base := child.tape.Cursor()
	for i, c := range args {
		err := child.put(base+i, c)
		if err != nil {
			return nil, err
		}
	}

	err := child.Run()
	if err != nil {
		return nil, err
	}

	return child.copies(child.tape.Cursor(), n)
}

// lookup returns the function stored at address.
func (f *frame) lookup(address int) (*fn.T, error) {
	if address >= f.tape.Config().Max {
		return nil, fault.New(fault.InvalidAddress,
			"%d is beyond the end of the tape", address)
	}

	c, err := f.tape.At(address)
	if err != nil {
		return nil, err
	}

	switch c := c.(type) {
	case *fn.T:
		return c, nil
	case num.T:
		return nil, fault.New(fault.TypeMismatch,
			"cell %d holds a value, not a function", address)
	default:
		return nil, unexpected(c)
	}
}

// pull returns copies of the n cells to the left of the cursor.
func (f *frame) pull(n int) ([]cell.T, error) {
	return f.copies(f.tape.Cursor()-n, n)
}

// push writes cells starting at the cursor. The cursor does not move.
func (f *frame) push(cells []cell.T) error {
	base := f.tape.Cursor()

	for i, c := range cells {
		err := f.put(base+i, c)
		if err != nil {
			return err
		}
	}

	return nil
}

func (f *frame) copies(base, n int) ([]cell.T, error) {
	cells := make([]cell.T, n)

	for i := range cells {
		c, err := f.tape.At(base + i)
		if err != nil {
			return nil, err
		}

		cells[i] = c.Copy()
	}

	return cells, nil
}

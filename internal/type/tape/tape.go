// Released under an MIT license. See LICENSE.

// Package tape provides the growable, cursor-addressed memory of a frame.
package tape

import (
	"fmt"
	"math"

	"github.com/michaelmacinnis/bfpp/internal/interface/cell"
	"github.com/michaelmacinnis/bfpp/internal/type/fault"
	"github.com/michaelmacinnis/bfpp/internal/type/num"
)

// Defaults.
const (
	Initial = 100
	Max     = 30000
	Growth  = 1.5
)

// Config holds the sizing rules for a tape.
type Config struct {
	Initial int     // Length of a new tape.
	Max     int     // Hard upper bound on length.
	Growth  float64 // Multiplicative growth factor.
}

// DefaultConfig returns the default sizing rules.
func DefaultConfig() Config {
	return Config{
		Initial: Initial,
		Max:     Max,
		Growth:  Growth,
	}
}

// Validate returns an error if c cannot describe a usable tape.
func (c Config) Validate() error {
	switch {
	case c.Initial < 1:
		return fmt.Errorf("initial length %d is less than 1", c.Initial)
	case c.Max < c.Initial:
		return fmt.Errorf("maximum length %d is less than initial length %d", c.Max, c.Initial)
	case !(c.Growth > 1) || math.IsInf(c.Growth, 0):
		return fmt.Errorf("growth factor %v must be a finite number greater than 1", c.Growth)
	}

	return nil
}

// T (tape) is an ordered sequence of cells with a cursor.
// The cursor is always a valid index.
type T struct {
	cells  []cell.T
	config Config
	cursor int

	// OnGrow, if set, is called after the tape grows.
	OnGrow func(from, to int)
}

type tape = T

// New creates a new tape of length c.Initial with every cell zero.
func New(c Config) *tape {
	t := &tape{config: c}
	t.cells = zeroed(make([]cell.T, c.Initial))

	return t
}

// At returns the cell at index i. An index beyond the current length but
// within the maximum is a cell that has not been allocated yet: zero.
func (t *tape) At(i int) (cell.T, error) {
	if err := t.check(i); err != nil {
		return nil, err
	}

	if i >= len(t.cells) {
		return num.Zero, nil
	}

	return t.cells[i], nil
}

// Config returns the sizing rules for t.
func (t *tape) Config() Config {
	return t.config
}

// Cursor returns the index of the current cell.
func (t *tape) Cursor() int {
	return t.cursor
}

// Each calls f for every allocated cell in order.
func (t *tape) Each(f func(i int, c cell.T)) {
	for i, c := range t.cells {
		f(i, c)
	}
}

// Get returns the current cell.
func (t *tape) Get() cell.T {
	return t.cells[t.cursor]
}

// Len returns the number of allocated cells.
func (t *tape) Len() int {
	return len(t.cells)
}

// Move moves the cursor by delta, growing the tape if the new position is
// within bounds but not yet allocated.
func (t *tape) Move(delta int) error {
	i := t.cursor + delta

	err := t.ensure(i)
	if err != nil {
		return err
	}

	t.cursor = i

	return nil
}

// Put replaces the cell at index i with c, growing the tape if necessary.
// The previous cell is returned.
func (t *tape) Put(i int, c cell.T) (cell.T, error) {
	err := t.ensure(i)
	if err != nil {
		return nil, err
	}

	prev := t.cells[i]
	t.cells[i] = c

	return prev, nil
}

// Set replaces the current cell with c. The previous cell is returned.
func (t *tape) Set(c cell.T) cell.T {
	prev := t.cells[t.cursor]
	t.cells[t.cursor] = c

	return prev
}

func (t *tape) check(i int) error {
	if i < 0 || i >= t.config.Max {
		return fault.New(fault.OutOfBounds,
			"cell %d is outside the tape [0, %d)", i, t.config.Max)
	}

	return nil
}

// ensure makes index i addressable.
func (t *tape) ensure(i int) error {
	if err := t.check(i); err != nil {
		return err
	}

	for i >= len(t.cells) {
		if err := t.grow(); err != nil {
			return err
		}
	}

	return nil
}

func (t *tape) grow() error {
	old := len(t.cells)

	f := math.Floor(float64(old) * t.config.Growth)
	if math.IsNaN(f) || f > float64(t.config.Max) {
		f = float64(t.config.Max)
	}

	n := int(f)
	if n <= old {
		n = old + 1
	}

	if n > t.config.Max {
		return fault.New(fault.GrowthFailure,
			"cannot grow tape of %d cells beyond %d", old, t.config.Max)
	}

	t.cells = append(t.cells, zeroed(make([]cell.T, n-old))...)

	if t.OnGrow != nil {
		t.OnGrow(old, n)
	}

	return nil
}

func zeroed(cells []cell.T) []cell.T {
	for i := range cells {
		cells[i] = num.Zero
	}

	return cells
}

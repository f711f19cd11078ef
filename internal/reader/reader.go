// Released under an MIT license. See LICENSE.

// Package reader turns bfpp source text into instructions.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/bfpp/internal/reader/lexer"
	"github.com/michaelmacinnis/bfpp/internal/type/inst"
)

// Read scans everything from r. Label names the source in locations.
func Read(label string, r io.Reader) ([]inst.T, error) {
	l := lexer.New(label)
	s := bufio.NewScanner(r)

	s.Split(bufio.ScanLines)
	s.Buffer(nil, 1<<20)

	for s.Scan() {
		l.Scan(s.Text() + "\n")
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", label, err)
	}

	return l.Instructions()
}

// ReadFile scans the file at path.
func ReadFile(path string) ([]inst.T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(path, f)
}

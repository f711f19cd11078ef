package lexer

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/bfpp/internal/type/inst"
	"github.com/michaelmacinnis/bfpp/internal/type/loc"
)

type harness struct {
	*testing.T
	lexer *T
}

func setup(t *testing.T, label string) *harness {
	return &harness{T: t, lexer: New(label)}
}

func (h *harness) expect(text string, locations ...loc.T) {
	h.Helper()

	code, err := h.lexer.Instructions()
	if err != nil {
		h.Fatalf("unexpected error: %v", err)
	}

	if inst.Text(code) != text {
		h.Fatalf("expected %q; got %q", text, inst.Text(code))
	}

	for i, l := range locations {
		if code[i].Source != l {
			h.Fatalf("instruction %d: expected %s; got %s", i, l.String(), code[i].Source.String())
		}
	}
}

func (h *harness) at(line, char int) loc.T {
	return loc.T{Char: char, Line: line, Name: h.Name()}
}

func TestInstructions(t *testing.T) {
	h := setup(t, t.Name())

	h.lexer.Scan("+-<>[]{}()'@,.")
	h.expect("+-<>[]{}()'@,.")
}

func TestOtherCharactersIgnored(t *testing.T) {
	h := setup(t, t.Name())

	h.lexer.Scan("a+ b\t-\r\n#c>")
	h.expect("+->", h.at(1, 2), h.at(1, 6), h.at(2, 3))
}

func TestLineComment(t *testing.T) {
	h := setup(t, t.Name())

	h.lexer.Scan("+! ignored +-<>\n-")
	h.expect("+-", h.at(1, 1), h.at(2, 1))
}

func TestLineCommentAcrossScans(t *testing.T) {
	h := setup(t, t.Name())

	h.lexer.Scan("+! ignored")
	h.lexer.Scan(" +-<> still ignored\n>")
	h.expect("+>")
}

func TestBlockComment(t *testing.T) {
	h := setup(t, t.Name())

	h.lexer.Scan("+* [ignored]\n+ *.")
	h.expect("+.", h.at(1, 1), h.at(2, 4))
}

func TestBlockCommentAcrossScans(t *testing.T) {
	h := setup(t, t.Name())

	h.lexer.Scan("+*\n")
	h.lexer.Scan("++\n")
	h.lexer.Scan("*-\n")
	h.expect("+-", h.at(1, 1), h.at(3, 2))
}

func TestUnterminatedBlockComment(t *testing.T) {
	h := setup(t, t.Name())

	h.lexer.Scan("+\n + * never closed")

	_, err := h.lexer.Instructions()
	if !errors.Is(err, ErrUnterminated) {
		t.Fatalf("expected %v; got %v", ErrUnterminated, err)
	}

	if err.Error() != h.Name()+":2:4: unterminated comment" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

package forth

import (
	"strconv"
	"strings"
)

// CellKind tags the variant held by a Cell.
type CellKind uint8

// Cell kinds.
const (
	IntCell CellKind = iota
	CharCell
	XTCell
)

func (kind CellKind) String() string {
	switch kind {
	case IntCell:
		return "int"
	case CharCell:
		return "char"
	case XTCell:
		return "xt"
	default:
		return "CellKind(" + strconv.Itoa(int(kind)) + ")"
	}
}

// Cell is a single value on a stack or in the heap: an integer, a character,
// or an execution token. The language treats cells as untyped, so operations
// convert contextually through Number and Word rather than switching on Kind.
type Cell struct {
	kind CellKind
	n    int
	xt   *Word
}

// Int returns an integer cell.
func Int(n int) Cell { return Cell{kind: IntCell, n: n} }

// Char returns a character cell.
func Char(r rune) Cell { return Cell{kind: CharCell, n: int(r)} }

// XT returns an execution token cell referring to w.
func XT(w *Word) Cell { return Cell{kind: XTCell, xt: w} }

// Bool returns the engine's flag cell: 1 for true, 0 for false.
func Bool(b bool) Cell {
	if b {
		return Int(1)
	}
	return Int(0)
}

// Kind returns the cell's tag.
func (c Cell) Kind() CellKind { return c.kind }

// Number interprets the cell as an integer; characters yield their code
// point. Execution tokens are not numbers.
func (c Cell) Number() (int, error) {
	if c.kind == XTCell {
		return 0, CellTypeError{Want: IntCell, Got: c.kind}
	}
	return c.n, nil
}

// Rune interprets the cell as a character.
func (c Cell) Rune() (rune, error) {
	n, err := c.Number()
	return rune(n), err
}

// Word returns the word referred to by an execution token cell.
func (c Cell) Word() (*Word, error) {
	if c.kind != XTCell || c.xt == nil {
		return nil, NotExecutionTokenError{c}
	}
	return c.xt, nil
}

// IsTrue reports whether the cell is a non-zero flag; execution tokens are
// always true.
func (c Cell) IsTrue() bool {
	return c.kind == XTCell || c.n != 0
}

func (c Cell) String() string {
	switch c.kind {
	case CharCell:
		return strconv.QuoteRune(rune(c.n))
	case XTCell:
		if c.xt == nil {
			return "xt(nil)"
		}
		return "xt(" + c.xt.String() + ")"
	default:
		return strconv.Itoa(c.n)
	}
}

// FormatNumber renders n in the given base, upper-casing any letter digits.
func FormatNumber(n, base int) string {
	return strings.ToUpper(strconv.FormatInt(int64(n), base))
}

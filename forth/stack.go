package forth

// Stack is a LIFO of cells; the engine uses one for data and another, with
// identical semantics, for return addresses and loop control.
//
// There is no overflow checking: integer cells wrap as Go ints do.
type Stack struct {
	cells []Cell
}

// NewStack returns a stack holding the given cells, bottom first.
func NewStack(cells ...Cell) *Stack {
	return &Stack{cells: append([]Cell(nil), cells...)}
}

// Depth returns the number of cells on the stack.
func (s *Stack) Depth() int { return len(s.cells) }

// Values returns a copy of the stack contents, bottom first.
func (s *Stack) Values() []Cell {
	return append([]Cell{}, s.cells...)
}

// Clear empties the stack.
func (s *Stack) Clear() { s.cells = s.cells[:0] }

// Push pushes cells in order, leaving the last one on top.
func (s *Stack) Push(cells ...Cell) { s.cells = append(s.cells, cells...) }

// PushInt pushes integer cells in order.
func (s *Stack) PushInt(ns ...int) {
	for _, n := range ns {
		s.cells = append(s.cells, Int(n))
	}
}

// PushUnsigned pushes the absolute value of each argument. Cells are signed
// Go ints, so this is how unsigned results are represented; it is lossy for
// the most negative int, which has no positive counterpart and stays
// negative.
func (s *Stack) PushUnsigned(ns ...int) {
	for _, n := range ns {
		if n < 0 {
			n = -n
		}
		s.cells = append(s.cells, Int(n))
	}
}

// Pop removes and returns the top cell.
func (s *Stack) Pop() (Cell, error) {
	i := len(s.cells) - 1
	if i < 0 {
		return Cell{}, ErrStackUnderflow
	}
	c := s.cells[i]
	s.cells = s.cells[:i]
	return c, nil
}

// PopUnsigned pops a number and returns its absolute value; see PushUnsigned.
func (s *Stack) PopUnsigned() (int, error) {
	c, err := s.Pop()
	if err != nil {
		return 0, err
	}
	n, err := c.Number()
	if n < 0 {
		n = -n
	}
	return n, err
}

// Peek returns the top cell without removing it.
func (s *Stack) Peek() (Cell, error) { return s.Pick(0) }

// PeekNext returns the cell just below the top.
func (s *Stack) PeekNext() (Cell, error) { return s.Pick(1) }

// Pick returns the cell at the given depth, 0 being the top.
func (s *Stack) Pick(depth int) (Cell, error) {
	i := len(s.cells) - 1 - depth
	if depth < 0 || i < 0 {
		return Cell{}, ErrStackUnderflow
	}
	return s.cells[i], nil
}

// Inc adds n to the top cell, which must be a number.
func (s *Stack) Inc(n int) error {
	i := len(s.cells) - 1
	if i < 0 {
		return ErrStackUnderflow
	}
	m, err := s.cells[i].Number()
	if err != nil {
		return err
	}
	s.cells[i] = Int(m + n)
	return nil
}

// Roll moves the cell at the given depth to the top.
func (s *Stack) Roll(depth int) error {
	i := len(s.cells) - 1 - depth
	if depth < 0 || i < 0 {
		return ErrStackUnderflow
	}
	c := s.cells[i]
	copy(s.cells[i:], s.cells[i+1:])
	s.cells[len(s.cells)-1] = c
	return nil
}

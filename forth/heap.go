package forth

// Heap is the engine's data space: a growable sequence of cells addressed by
// index. Here is the next free address.
type Heap struct {
	cells []Cell

	// Limit, when non-zero, caps the number of cells the heap may hold.
	Limit int
}

// Here returns the next free address.
func (heap *Heap) Here() int { return len(heap.cells) }

// Unused returns how many cells may still be allocated.
func (heap *Heap) Unused() int {
	if heap.Limit == 0 {
		return int(^uint(0) >> 1)
	}
	if n := heap.Limit - len(heap.cells); n > 0 {
		return n
	}
	return 0
}

// Cells returns a copy of the heap contents.
func (heap *Heap) Cells() []Cell {
	return append([]Cell{}, heap.cells...)
}

// Append stores values at Here, advancing it, and returns the address of the
// first stored value.
func (heap *Heap) Append(values ...Cell) (int, error) {
	addr := len(heap.cells)
	if err := heap.grow(addr + len(values)); err != nil {
		return addr, err
	}
	copy(heap.cells[addr:], values)
	return addr, nil
}

// Allot reserves n zeroed cells, or releases -n cells when n is negative.
func (heap *Heap) Allot(n int) error {
	size := len(heap.cells) + n
	if size < 0 {
		return AddressError{size, "allot"}
	}
	if n < 0 {
		heap.cells = heap.cells[:size]
		return nil
	}
	return heap.grow(size)
}

// Load returns the cell at addr.
func (heap *Heap) Load(addr int) (Cell, error) {
	if addr < 0 || addr >= len(heap.cells) {
		return Cell{}, AddressError{addr, "load"}
	}
	return heap.cells[addr], nil
}

// Stor writes values starting at addr, which must already be allocated.
func (heap *Heap) Stor(addr int, values ...Cell) error {
	if addr < 0 || addr+len(values) > len(heap.cells) {
		return AddressError{addr + len(values) - 1, "stor"}
	}
	copy(heap.cells[addr:], values)
	return nil
}

// Move copies u cells from src to dst; the ranges may overlap. Both must lie
// within the allocated heap.
func (heap *Heap) Move(dst, src, u int) error {
	size := len(heap.cells)
	if src < 0 || src > size || u > size-src {
		return AddressError{src, "move"}
	}
	if dst < 0 || dst > size || u > size-dst {
		return AddressError{dst, "move"}
	}
	copy(heap.cells[dst:dst+u], heap.cells[src:src+u])
	return nil
}

// Index returns the lowest address holding the given cell, or -1.
func (heap *Heap) Index(c Cell) int {
	for addr, v := range heap.cells {
		if v == c {
			return addr
		}
	}
	return -1
}

func (heap *Heap) grow(size int) error {
	if size <= len(heap.cells) {
		return nil
	}
	if heap.Limit != 0 && size > heap.Limit {
		return ErrHeapLimit
	}
	for len(heap.cells) < size {
		heap.cells = append(heap.cells, Int(0))
	}
	return nil
}

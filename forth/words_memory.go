package forth

import "strings"

func memoryWords() []*Word {
	return []*Word{
		{Name: "!", Interpret: func(c *Context) {
			addr, x := c.PopInt(), c.Pop()
			c.stor(addr, x)
		}},
		{Name: "@", Interpret: func(c *Context) {
			c.Push(c.load(c.PopInt()))
		}},
		{Name: "+!", Interpret: func(c *Context) {
			addr, n := c.PopInt(), c.PopInt()
			c.stor(addr, Int(c.number(c.load(addr), nil)+n))
		}},
		{Name: "2!", Interpret: func(c *Context) {
			addr := c.PopInt()
			b, a := c.Pop(), c.Pop()
			c.stor(addr, b, a)
		}},
		{Name: "2@", Interpret: func(c *Context) {
			addr := c.PopInt()
			b, a := c.load(addr), c.load(addr+1)
			c.Push(a, b)
		}},
		{Name: "C!", Interpret: func(c *Context) {
			addr, r := c.PopInt(), c.PopInt()
			c.stor(addr, Char(rune(r)))
		}},
		{Name: "C@", Interpret: func(c *Context) {
			c.Push(c.load(c.PopInt()))
		}},
		{Name: ",", Interpret: func(c *Context) { c.heapAppend(c.Pop()) }},
		{Name: "C,", Interpret: func(c *Context) { c.heapAppend(Char(rune(c.PopInt()))) }},
		{Name: "ALLOT", Interpret: func(c *Context) {
			if err := c.heap().Allot(c.PopInt()); err != nil {
				c.Fail(err)
			}
		}},
		{Name: "HERE", Interpret: func(c *Context) { c.PushInt(c.heap().Here()) }},
		{Name: "UNUSED", Interpret: func(c *Context) { c.PushInt(c.heap().Unused()) }},

		// Every cell and every character occupies one address.
		unary("CELLS", func(n int) int { return n }),
		unary("CELL+", func(n int) int { return n + 1 }),
		unary("CHARS", func(n int) int { return n }),
		unary("CHAR+", func(n int) int { return n + 1 }),

		{Name: "FILL", Interpret: func(c *Context) {
			r, u := rune(c.PopInt()), c.PopUnsigned()
			addr := c.PopInt()
			for i := 0; i < u; i++ {
				c.stor(addr+i, Char(r))
			}
		}},
		{Name: "ERASE", Interpret: func(c *Context) {
			u, addr := c.PopUnsigned(), c.PopInt()
			for i := 0; i < u; i++ {
				c.stor(addr+i, Int(0))
			}
		}},
		{Name: "MOVE", Interpret: func(c *Context) {
			u, dst, src := c.PopUnsigned(), c.PopInt(), c.PopInt()
			if err := c.heap().Move(dst, src, u); err != nil {
				c.Fail(err)
			}
		}},
		{Name: "COUNT", Interpret: func(c *Context) {
			addr := c.PopInt()
			c.PushInt(addr+1, c.number(c.load(addr), nil))
		}},
	}
}

func (c *Context) heap() *Heap { return &c.engine.heap }

func (c *Context) load(addr int) Cell {
	x, err := c.heap().Load(addr)
	if err != nil {
		c.Fail(err)
	}
	return x
}

func (c *Context) stor(addr int, values ...Cell) {
	if err := c.heap().Stor(addr, values...); err != nil {
		c.Fail(err)
	}
}

func (c *Context) heapAppend(values ...Cell) int {
	addr, err := c.heap().Append(values...)
	if err != nil {
		c.Fail(err)
	}
	return addr
}

// storeString appends s to the heap as a counted string, returning the
// address of its count.
func (c *Context) storeString(s string) int {
	runes := []rune(s)
	cells := make([]Cell, 0, len(runes)+1)
	cells = append(cells, Int(len(runes)))
	for _, r := range runes {
		cells = append(cells, Char(r))
	}
	return c.heapAppend(cells...)
}

// loadString reads u characters starting at addr.
func (c *Context) loadString(addr, u int) string {
	var sb strings.Builder
	for i := 0; i < u; i++ {
		r, err := c.load(addr + i).Rune()
		if err != nil {
			c.Fail(err)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

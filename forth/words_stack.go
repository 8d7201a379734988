package forth

func stackWords() []*Word {
	return []*Word{
		{Name: "DUP", Interpret: func(c *Context) {
			x := c.peek(0)
			c.Push(x)
		}},
		{Name: "DROP", Interpret: func(c *Context) { c.Pop() }},
		{Name: "SWAP", Interpret: func(c *Context) {
			b, a := c.Pop(), c.Pop()
			c.Push(b, a)
		}},
		{Name: "OVER", Interpret: func(c *Context) {
			c.Push(c.peek(1))
		}},
		{Name: "ROT", Interpret: func(c *Context) {
			c.roll(2)
		}},
		{Name: "?DUP", Interpret: func(c *Context) {
			if x := c.peek(0); x.IsTrue() {
				c.Push(x)
			}
		}},
		{Name: "NIP", Interpret: func(c *Context) {
			b := c.Pop()
			c.Pop()
			c.Push(b)
		}},
		{Name: "TUCK", Interpret: func(c *Context) {
			b, a := c.Pop(), c.Pop()
			c.Push(b, a, b)
		}},
		{Name: "PICK", Interpret: func(c *Context) {
			c.Push(c.peek(c.PopInt()))
		}},
		{Name: "DEPTH", Interpret: func(c *Context) {
			c.PushInt(c.Stack.Depth())
		}},
		{Name: "2DUP", Interpret: func(c *Context) {
			a, b := c.peek(1), c.peek(0)
			c.Push(a, b)
		}},
		{Name: "2DROP", Interpret: func(c *Context) {
			c.Pop()
			c.Pop()
		}},
		{Name: "2SWAP", Interpret: func(c *Context) {
			c.roll(3)
			c.roll(3)
		}},
		{Name: "2OVER", Interpret: func(c *Context) {
			a, b := c.peek(3), c.peek(2)
			c.Push(a, b)
		}},

		{Name: ">R", Interpret: func(c *Context) { c.RPush(c.Pop()) }},
		{Name: "R>", Interpret: func(c *Context) { c.Push(c.RPop()) }},
		{Name: "R@", Interpret: func(c *Context) {
			x, err := c.RStack.Peek()
			if err != nil {
				c.Fail(err)
			}
			c.Push(x)
		}},
		{Name: "2>R", Interpret: func(c *Context) {
			b, a := c.Pop(), c.Pop()
			c.RPush(a, b)
		}},
		{Name: "2R>", Interpret: func(c *Context) {
			b, a := c.RPop(), c.RPop()
			c.Push(a, b)
		}},
		{Name: "2R@", Interpret: func(c *Context) {
			a, err := c.RStack.PeekNext()
			if err != nil {
				c.Fail(err)
			}
			b, _ := c.RStack.Peek()
			c.Push(a, b)
		}},
	}
}

func (c *Context) peek(depth int) Cell {
	x, err := c.Stack.Pick(depth)
	if err != nil {
		c.Fail(err)
	}
	return x
}

func (c *Context) roll(depth int) {
	if err := c.Stack.Roll(depth); err != nil {
		c.Fail(err)
	}
}

package forth

// Defining words read the new word's name when they run. Compiled into a
// definition, they read it at compile time instead, and create the word each
// time the definition runs.

func defineWords() []*Word {
	return []*Word{
		defining("CONSTANT", func(c *Context, name string) {
			x := c.Pop()
			c.define(&Word{Name: name, Interpret: pushing(x)})
		}),
		defining("VALUE", func(c *Context, name string) {
			x := c.Pop()
			c.define(&Word{Name: name, Value: true, Interpret: pushing(x)})
		}),
		defining("VARIABLE", func(c *Context, name string) {
			addr := c.heapAppend(Int(0))
			c.define(&Word{Name: name, Interpret: pushing(Int(addr)), body: addr, hasBody: true})
		}),
		defining("CREATE", func(c *Context, name string) {
			addr := c.heap().Here()
			c.define(&Word{Name: name, Interpret: pushing(Int(addr)), body: addr, hasBody: true})
		}),
		{
			Name: "TO",
			Interpret: func(c *Context) {
				w := c.valueWord(c.NextWordOrFail())
				w.Interpret = pushing(c.Pop())
			},
			Compile: func(c *Context) {
				w := c.valueWord(c.NextWordOrFail())
				c.Append(Call("TO "+w.Name, func(c *Context) {
					w.Interpret = pushing(c.Pop())
				}))
			},
		},
		{Name: ">BODY", Interpret: func(c *Context) {
			w := c.PopXT()
			if addr, ok := w.Body(); ok {
				c.PushInt(addr)
			} else if addr := c.heap().Index(XT(w)); addr >= 0 {
				c.PushInt(addr)
			} else {
				c.Fail(NotCreatedWordError(w.String()))
			}
		}},
	}
}

func defining(name string, create func(c *Context, name string)) *Word {
	return &Word{
		Name: name,
		Interpret: func(c *Context) {
			create(c, c.NextWordOrFail())
		},
		Compile: func(c *Context) {
			newName := c.NextWordOrFail()
			c.Append(Call(name+" "+newName, func(c *Context) {
				create(c, newName)
			}))
		},
	}
}

func pushing(x Cell) Behavior {
	return func(c *Context) { c.Push(x) }
}

func (c *Context) define(w *Word) {
	c.engine.dict.Push(w)
	c.logf("+", "defined %v", w)
}

func (c *Context) valueWord(name string) *Word {
	w := c.lookup(name)
	if !w.Value {
		c.Fail(NotAValueWordError(name))
	}
	return w
}

package forth

func controlWords() []*Word {
	return []*Word{
		{
			Name: ":",
			Interpret: func(c *Context) {
				c.openFrame(colonFrame, &Word{Name: c.NextWordOrFail()})
			},
			Compile: func(c *Context) {
				name := c.NextWordOrFail()
				c.Append(Call(": "+name, func(c *Context) {
					c.openFrame(colonFrame, &Word{Name: name})
				}))
			},
		},
		{Name: ":NONAME", Interpret: func(c *Context) {
			c.openFrame(nonameFrame, &Word{})
		}},
		{Name: ";", Compile: endDefinition},

		{Name: "IF", Immediate: true, Interpret: func(c *Context) {
			c.openFrame(ifFrame, nil)
		}},
		{Name: "ELSE", Immediate: true, Interpret: func(c *Context) {
			def := c.closeFrame("ELSE", ifFrame)
			c.resolve(def, "IF", ifElse(def.code))
			c.defs = append(c.defs, &definition{kind: elseFrame, mode: def.mode})
		}},
		{Name: "THEN", Immediate: true, Interpret: func(c *Context) {
			def := c.closeFrame("THEN", ifFrame, elseFrame)
			c.compileDepth--
			c.resolve(def, def.kind.String(), then(def.code))
		}},

		{Name: "DO", Immediate: true, Interpret: func(c *Context) {
			if c.compileDepth > 0 {
				c.Append(Call("DO", doSetup))
			} else {
				doSetup(c)
			}
			c.openFrame(doFrame, nil)
		}},
		{Name: "LOOP", Immediate: true, Interpret: func(c *Context) {
			def := c.closeFrame("LOOP", doFrame)
			c.compileDepth--
			c.resolve(def, "LOOP", loop(def.code, func(*Context) int { return 1 }))
		}},
		{Name: "+LOOP", Immediate: true, Interpret: func(c *Context) {
			def := c.closeFrame("+LOOP", doFrame)
			c.compileDepth--
			c.resolve(def, "+LOOP", loop(def.code, (*Context).PopInt))
		}},
		{Name: "I", Interpret: func(c *Context) {
			c.Push(c.rpeek(0))
		}},
		{Name: "J", Interpret: func(c *Context) {
			c.Push(c.rpeek(2))
		}},

		{Name: "RECURSE", Compile: func(c *Context) {
			def := c.colon()
			if def == nil {
				c.Fail(ControlMismatchError{Word: "RECURSE"})
			}
			c.AppendWord(def.word)
		}},
		{Name: "EXECUTE", Interpret: func(c *Context) {
			c.Execute(c.PopXT())
		}},
		{
			Name: "'",
			Interpret: func(c *Context) {
				c.Push(XT(c.lookup(c.NextWordOrFail())))
			},
			// Compiled, the name is read now but looked up when the definition
			// runs.
			Compile: func(c *Context) {
				name := c.NextWordOrFail()
				c.Append(Call("' "+name, func(c *Context) {
					c.Push(XT(c.lookup(name)))
				}))
			},
		},
		{Name: "[']", Compile: func(c *Context) {
			c.Append(Literal(XT(c.lookup(c.NextWordOrFail()))))
		}},
		{Name: "POSTPONE", Compile: postpone},
		{Name: "[COMPILE]", Compile: postpone},
		{Name: "LITERAL", Compile: func(c *Context) {
			c.Append(Literal(c.Pop()))
		}},
		{Name: "COMPILE,", Interpret: func(c *Context) {
			c.AppendWord(c.PopXT())
		}},
		{Name: "[", Immediate: true, Interpret: func(c *Context) {
			if c.compileDepth == 0 {
				c.Fail(CompileOnlyError("["))
			}
			c.compileDepth--
		}},
		{Name: "]", Interpret: func(c *Context) {
			c.compileDepth++
		}},
		{Name: "IMMEDIATE", Interpret: func(c *Context) {
			if err := c.engine.dict.MarkImmediate(); err != nil {
				c.Fail(err)
			}
		}},
		{Name: "FIND", Interpret: func(c *Context) {
			addr := c.PopInt()
			name := c.loadString(addr+1, c.number(c.load(addr), nil))
			switch w := c.engine.dict.Find(name); {
			case w == nil:
				c.PushInt(addr, 0)
			case w.Immediate:
				c.Push(XT(w), Int(1))
			default:
				c.Push(XT(w), Int(-1))
			}
		}},
		{Name: "QUIT", Interpret: func(c *Context) {
			c.RStack.Clear()
			c.defs = c.defs[:0]
			c.compileDepth = 0
		}},
	}
}

// endDefinition closes a colon or :NONAME frame, installing its code as the
// word's behavior. Named words are then found by name; anonymous ones leave
// their execution token on the stack, or compile it as a literal when the
// definition was nested inside another.
func endDefinition(c *Context) {
	def := c.closeFrame(";", colonFrame, nonameFrame)
	c.compileDepth--
	w, code := def.word, def.code
	w.Code = code
	w.Interpret = code.Run
	c.engine.dict.Push(w)
	c.logf("+", "defined %v code:%v", w, len(code))
	if w.Name != "" {
		return
	}
	if c.compileDepth > 0 {
		c.Append(Literal(XT(w)))
	} else {
		c.Push(XT(w))
	}
}

// postpone compiles the compilation semantics of the following word, or its
// execution semantics if it has no special compilation behavior.
func postpone(c *Context) {
	w := c.lookup(c.NextWordOrFail())
	if w.Compile != nil {
		c.Append(Call(w.String(), w.Compile))
	} else {
		c.AppendWord(w)
	}
}

func (c *Context) lookup(name string) *Word {
	w, err := c.engine.dict.FindOrFail(name)
	if err != nil {
		c.Fail(err)
	}
	return w
}

func (c *Context) rpeek(depth int) Cell {
	x, err := c.RStack.Pick(depth)
	if err != nil {
		c.Fail(err)
	}
	return x
}

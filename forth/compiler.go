package forth

// Entry is one element of compiled code: either a literal cell to push, or a
// behavior to call.
type Entry struct {
	Lit  Cell
	Call Behavior

	// Name labels call entries in dumps; Body, when set, is the code a
	// control structure runs.
	Name string
	Body Code
}

// Literal returns an entry that pushes c.
func Literal(c Cell) Entry { return Entry{Lit: c} }

// Call returns an entry that runs b, labelled by name.
func Call(name string, b Behavior) Entry { return Entry{Call: b, Name: name} }

// Code is a compiled body, run by pushing literals and calling behaviors in
// order.
type Code []Entry

// Run executes the code against c.
func (code Code) Run(c *Context) {
	for _, e := range code {
		if e.Call != nil {
			e.Call(c)
		} else {
			c.Stack.Push(e.Lit)
		}
	}
}

// frameKind names the construct that opened a definition frame.
type frameKind uint8

const (
	colonFrame frameKind = iota
	nonameFrame
	ifFrame
	elseFrame
	doFrame
)

var frameKindNames = [...]string{
	colonFrame:  ":",
	nonameFrame: ":NONAME",
	ifFrame:     "IF",
	elseFrame:   "ELSE",
	doFrame:     "DO",
}

func (kind frameKind) String() string { return frameKindNames[kind] }

// frameMode records, when a control frame is opened, whether it is the
// outermost pending structure or nested inside another one.
//
// A topLevelPending frame is resolved by running its body as soon as it
// closes; a nestedDeferred frame closes by appending a closure to its parent
// frame, to run whenever the parent's code does.
type frameMode uint8

const (
	topLevelPending frameMode = iota
	nestedDeferred
)

func (mode frameMode) String() string {
	if mode == nestedDeferred {
		return "deferred"
	}
	return "eager"
}

// definition is a frame on the definitions stack: a body being collected,
// either for a word or for a control structure.
type definition struct {
	kind frameKind
	mode frameMode
	word *Word
	code Code
}

func (def *definition) append(entries ...Entry) {
	def.code = append(def.code, entries...)
}

// openFrame pushes a new frame, deciding its mode from the current compile
// depth, and then increments the depth.
func (c *Context) openFrame(kind frameKind, word *Word) *definition {
	def := &definition{kind: kind, word: word}
	if c.compileDepth > 0 {
		def.mode = nestedDeferred
	}
	c.defs = append(c.defs, def)
	c.compileDepth++
	c.logf("[", "open %v %v depth:%v", kind, def.mode, c.compileDepth)
	return def
}

// closeFrame pops the current frame, which must be of one of the given kinds.
func (c *Context) closeFrame(closer string, kinds ...frameKind) *definition {
	i := len(c.defs) - 1
	if i < 0 {
		c.Fail(ControlMismatchError{Word: closer})
	}
	def := c.defs[i]
	for _, kind := range kinds {
		if def.kind == kind {
			c.defs = c.defs[:i]
			return def
		}
	}
	c.Fail(ControlMismatchError{Word: closer, Open: def.kind.String()})
	return nil
}

// current returns the frame under construction.
func (c *Context) current() *definition {
	i := len(c.defs) - 1
	if i < 0 {
		c.Fail(ControlMismatchError{Word: "compile"})
	}
	return c.defs[i]
}

// colon returns the innermost frame that defines a word.
func (c *Context) colon() *definition {
	for i := len(c.defs) - 1; i >= 0; i-- {
		if def := c.defs[i]; def.kind == colonFrame || def.kind == nonameFrame {
			return def
		}
	}
	return nil
}

// resolve either runs a closing structure now, or defers it into the parent
// frame, according to the mode chosen when its frame was opened.
func (c *Context) resolve(def *definition, name string, run Behavior) {
	if def.mode == nestedDeferred {
		c.current().append(Entry{Call: run, Name: name, Body: def.code})
		c.logf("]", "defer %v into %v", name, c.current().kind)
		return
	}
	c.logf("]", "run %v", name)
	run(c)
}

// Append appends entries to the definition under construction.
func (c *Context) Append(entries ...Entry) {
	c.current().append(entries...)
}

// AppendWord appends the execution semantics of w to the definition under
// construction. The call is bound late, so redefining a word's behavior (as
// TO does) is seen by code already compiled against it.
func (c *Context) AppendWord(w *Word) {
	c.Append(Call(w.String(), func(c *Context) { w.Interpret(c) }))
}

// ifElse runs the body captured between IF and ELSE, leaving a sentinel for
// THEN: 0 when the IF body ran, 1 when the ELSE body should.
func ifElse(body Code) Behavior {
	return func(c *Context) {
		if c.Pop().IsTrue() {
			body.Run(c)
			c.Push(Int(0))
		} else {
			c.Push(Int(1))
		}
	}
}

// then runs body when the flag, or ELSE's sentinel, is true.
func then(body Code) Behavior {
	return func(c *Context) {
		if c.Pop().IsTrue() {
			body.Run(c)
		}
	}
}

// doSetup moves the loop limit and starting index to the return stack,
// leaving the index on top.
func doSetup(c *Context) {
	start := c.Pop()
	limit := c.Pop()
	c.RStack.Push(limit, start)
}

// loop runs body while the index on the return stack is below its limit,
// advancing the index by the amount step returns after each pass, then drops
// the loop control pair.
func loop(body Code, step func(c *Context) int) Behavior {
	return func(c *Context) {
		for c.loopIndex() < c.loopLimit() {
			body.Run(c)
			if err := c.RStack.Inc(step(c)); err != nil {
				c.Fail(err)
			}
		}
		c.RPop()
		c.RPop()
	}
}

func (c *Context) loopIndex() int { return c.number(c.RStack.Peek()) }
func (c *Context) loopLimit() int { return c.number(c.RStack.PeekNext()) }

func (c *Context) number(cell Cell, err error) int {
	if err != nil {
		c.Fail(err)
	}
	n, err := cell.Number()
	if err != nil {
		c.Fail(err)
	}
	return n
}

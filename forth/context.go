package forth

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jcorbin/threadforth/internal/panicerr"
	"github.com/jcorbin/threadforth/internal/runeio"
)

// Context is the state of one evaluation: the source being read, the data
// and return stacks, the definitions under construction, and the numeric
// base. The dictionary and heap it works on belong to its Engine, and
// outlive it.
type Context struct {
	logging

	engine *Engine
	name   string
	source string
	offset int

	// token and tokenAt locate the word being interpreted, for errors.
	token   string
	tokenAt int

	Stack  Stack
	RStack Stack

	defs         []*definition
	compileDepth int

	// Base is the numeric base for parsing and printing numbers.
	Base int
}

// Engine returns the engine this context evaluates against.
func (c *Context) Engine() *Engine { return c.engine }

// Compiling reports whether tokens are being compiled rather than executed.
func (c *Context) Compiling() bool { return c.compileDepth > 0 }

// CompileDepth returns the compile nesting counter, shared by definitions
// and control structures.
func (c *Context) CompileDepth() int { return c.compileDepth }

// Interpret runs the outer interpreter over the whole source. It returns the
// first error encountered, located in the source as an *EvalError; the
// stacks are left as they were at the point of failure.
func (c *Context) Interpret() error {
	err := panicerr.Recover("forth", func() error {
		c.interpret()
		return nil
	})
	if err == nil {
		return nil
	}
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	line, col := c.position(c.tokenAt)
	return &EvalError{
		Name:  c.name,
		Line:  line,
		Col:   col,
		Token: c.token,
		Err:   err,
	}
}

func (c *Context) interpret() {
	for {
		at := c.skipSpace()
		name := c.NextWord()
		if name == "" {
			return
		}
		c.token, c.tokenAt = name, at
		c.dispatch(name)
	}
}

func (c *Context) dispatch(name string) {
	if w := c.engine.dict.Find(name); w != nil {
		switch {
		case c.compileDepth == 0 || w.Immediate:
			c.logf(">", "interpret %v", name)
			c.execute(w)
		case w.Compile != nil:
			c.logf(">", "compile %v", name)
			w.Compile(c)
		default:
			c.logf(">", "append %v", name)
			c.AppendWord(w)
		}
		return
	}

	n, err := c.ParseNumber(name)
	if err != nil {
		c.Fail(err)
	}
	if c.compileDepth > 0 {
		c.logf(">", "literal %v", n)
		c.Append(Literal(n))
	} else {
		c.logf(">", "push %v", n)
		c.Stack.Push(n)
	}
}

func (c *Context) execute(w *Word) {
	if w.Interpret == nil {
		c.Fail(CompileOnlyError(w.Name))
	}
	w.Interpret(c)
}

// ParseNumber parses a token as a number in the current base. Tokens may
// carry a sign, a base prefix (# decimal, $ hex, % binary), or be a
// character literal like 'a' or <ESC>.
func (c *Context) ParseNumber(token string) (Cell, error) {
	if r, err := runeio.UnquoteRune(token); err == nil {
		return Char(r), nil
	}

	base := c.Base
	s := token
	if len(s) > 1 {
		switch s[0] {
		case '#':
			base, s = 10, s[1:]
		case '$':
			base, s = 16, s[1:]
		case '%':
			base, s = 2, s[1:]
		}
	}
	if base < 2 || base > 36 {
		return Cell{}, BaseError(base)
	}
	n, err := strconv.ParseInt(s, base, strconv.IntSize)
	if err != nil {
		return Cell{}, UnknownWordError(token)
	}
	return Int(int(n)), nil
}

// skipSpace advances past whitespace, returning the new offset.
func (c *Context) skipSpace() int {
	for c.offset < len(c.source) {
		r, n := utf8.DecodeRuneInString(c.source[c.offset:])
		if !unicode.IsSpace(r) {
			break
		}
		c.offset += n
	}
	return c.offset
}

// NextWord skips whitespace and returns the following run of non-space
// characters, consuming the single whitespace character that ends it.
// Returns "" at end of input.
func (c *Context) NextWord() string {
	begin := c.skipSpace()
	for c.offset < len(c.source) {
		r, n := utf8.DecodeRuneInString(c.source[c.offset:])
		if unicode.IsSpace(r) {
			word := c.source[begin:c.offset]
			c.offset += n
			return word
		}
		c.offset += n
	}
	return c.source[begin:c.offset]
}

// NextWordOrFail is NextWord, failing with ErrMissingWord at end of input.
func (c *Context) NextWordOrFail() string {
	word := c.NextWord()
	if word == "" {
		c.Fail(ErrMissingWord)
	}
	return word
}

// ReadUntil returns the source up to the next delim, consuming the
// delimiter. Fails with UnterminatedLiteralError if there is none.
func (c *Context) ReadUntil(delim rune) string {
	rest := c.source[c.offset:]
	i := strings.IndexRune(rest, delim)
	if i < 0 {
		c.offset = len(c.source)
		c.Fail(UnterminatedLiteralError(delim))
	}
	c.offset += i + utf8.RuneLen(delim)
	return rest[:i]
}

// SkipLine discards the rest of the current line.
func (c *Context) SkipLine() {
	rest := c.source[c.offset:]
	if i := strings.IndexAny(rest, "\r\n"); i >= 0 {
		c.offset += i + 1
	} else {
		c.offset = len(c.source)
	}
}

func (c *Context) position(offset int) (line, col int) {
	if offset > len(c.source) {
		offset = len(c.source)
	}
	before := c.source[:offset]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return line, utf8.RuneCountInString(before) + 1
}

// Fail aborts the evaluation with err.
func (c *Context) Fail(err error) {
	c.logf("#", "halt error: %v", err)
	panic(haltError{err})
}

// Output sends text to the engine's output sink.
func (c *Context) Output(text string) { c.engine.Output(text) }

// Push pushes cells onto the data stack.
func (c *Context) Push(cells ...Cell) { c.Stack.Push(cells...) }

// PushInt pushes integers onto the data stack.
func (c *Context) PushInt(ns ...int) { c.Stack.PushInt(ns...) }

// Pop pops the data stack.
func (c *Context) Pop() Cell {
	cell, err := c.Stack.Pop()
	if err != nil {
		c.Fail(err)
	}
	return cell
}

// PopInt pops a number from the data stack.
func (c *Context) PopInt() int { return c.number(c.Stack.Pop()) }

// PopUnsigned pops a number from the data stack as its absolute value.
func (c *Context) PopUnsigned() int {
	n, err := c.Stack.PopUnsigned()
	if err != nil {
		c.Fail(err)
	}
	return n
}

// PopXT pops an execution token from the data stack.
func (c *Context) PopXT() *Word {
	w, err := c.Pop().Word()
	if err != nil {
		c.Fail(err)
	}
	return w
}

// RPush pushes cells onto the return stack.
func (c *Context) RPush(cells ...Cell) { c.RStack.Push(cells...) }

// RPop pops the return stack.
func (c *Context) RPop() Cell {
	cell, err := c.RStack.Pop()
	if err != nil {
		c.Fail(err)
	}
	return cell
}

// Execute runs the interpretation semantics of w.
func (c *Context) Execute(w *Word) {
	c.logf("x", "execute %v", w)
	c.execute(w)
}

// Parse returns the source up to the next delim, consuming the delimiter,
// or the rest of the source if there is none.
func (c *Context) Parse(delim rune) string {
	rest := c.source[c.offset:]
	if i := strings.IndexRune(rest, delim); i >= 0 {
		c.offset += i + utf8.RuneLen(delim)
		return rest[:i]
	}
	c.offset = len(c.source)
	return rest
}

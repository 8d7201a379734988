package forth

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func ioWords() []*Word {
	return []*Word{
		{Name: ".", Interpret: func(c *Context) {
			c.Output(c.FormatNumber(c.PopInt()) + " ")
		}},
		{Name: "U.", Interpret: func(c *Context) {
			c.Output(c.FormatNumber(c.PopUnsigned()) + " ")
		}},
		{Name: ".R", Interpret: func(c *Context) {
			width, n := c.PopInt(), c.PopInt()
			c.Output(fmt.Sprintf("%*s", width, c.FormatNumber(n)))
		}},
		{Name: "U.R", Interpret: func(c *Context) {
			width, n := c.PopInt(), c.PopUnsigned()
			c.Output(fmt.Sprintf("%*s", width, c.FormatNumber(n)))
		}},
		{Name: ".S", Interpret: func(c *Context) {
			var sb strings.Builder
			fmt.Fprintf(&sb, "<%v> ", c.Stack.Depth())
			for _, x := range c.Stack.Values() {
				if n, err := x.Number(); err == nil && x.Kind() == IntCell {
					sb.WriteString(c.FormatNumber(n))
				} else {
					sb.WriteString(x.String())
				}
				sb.WriteByte(' ')
			}
			c.Output(sb.String())
		}},
		{Name: "EMIT", Interpret: func(c *Context) {
			c.Output(string(rune(c.PopInt())))
		}},
		{Name: "CR", Interpret: func(c *Context) { c.Output("\n") }},
		{Name: "SPACE", Interpret: func(c *Context) { c.Output(" ") }},
		{Name: "SPACES", Interpret: func(c *Context) {
			if n := c.PopInt(); n > 0 {
				c.Output(strings.Repeat(" ", n))
			}
		}},
		{Name: "BL", Interpret: func(c *Context) { c.Push(Char(' ')) }},
		{Name: "TYPE", Interpret: func(c *Context) {
			u, addr := c.PopUnsigned(), c.PopInt()
			c.Output(c.loadString(addr, u))
		}},
		{Name: "WORDS", Interpret: func(c *Context) {
			var sb strings.Builder
			for w := c.engine.dict.Tail(); w != nil; w = w.Prev() {
				if w.Name != "" && c.engine.dict.Find(w.Name) == w {
					sb.WriteString(w.Name)
					sb.WriteByte(' ')
				}
			}
			c.Output(sb.String())
		}},

		{
			Name: ".\"",
			Interpret: func(c *Context) {
				c.Output(c.ReadUntil('"'))
			},
			Compile: func(c *Context) {
				text := c.ReadUntil('"')
				c.Append(Call(".\"", func(c *Context) { c.Output(text) }))
			},
		},
		{Name: ".(", Immediate: true, Interpret: func(c *Context) {
			c.Output(c.ReadUntil(')'))
		}},
		{
			Name: "S\"",
			Interpret: func(c *Context) {
				text := c.ReadUntil('"')
				addr := c.storeString(text)
				c.PushInt(addr+1, utf8.RuneCountInString(text))
			},
			Compile: func(c *Context) {
				text := c.ReadUntil('"')
				addr := c.storeString(text)
				c.Append(Literal(Int(addr+1)), Literal(Int(utf8.RuneCountInString(text))))
			},
		},
		{
			Name: "C\"",
			Interpret: func(c *Context) {
				c.PushInt(c.storeString(c.ReadUntil('"')))
			},
			Compile: func(c *Context) {
				c.Append(Literal(Int(c.storeString(c.ReadUntil('"')))))
			},
		},
		{Name: "PARSE", Interpret: func(c *Context) {
			text := c.Parse(rune(c.PopInt()))
			addr := c.storeString(text)
			c.PushInt(addr+1, utf8.RuneCountInString(text))
		}},
		{Name: "CHAR", Interpret: func(c *Context) {
			c.Push(Char(firstRune(c.NextWordOrFail())))
		}},
		{Name: "[CHAR]", Compile: func(c *Context) {
			c.Append(Literal(Char(firstRune(c.NextWordOrFail()))))
		}},
		{Name: "(", Immediate: true, Interpret: func(c *Context) {
			c.ReadUntil(')')
		}},
		{Name: "\\", Immediate: true, Interpret: func(c *Context) {
			c.SkipLine()
		}},
		{Name: "DECIMAL", Interpret: func(c *Context) { c.Base = 10 }},
		{Name: "HEX", Interpret: func(c *Context) { c.Base = 16 }},
	}
}

// FormatNumber renders n in the context's current base.
func (c *Context) FormatNumber(n int) string {
	base := c.Base
	if base < 2 || base > 36 {
		c.Fail(BaseError(base))
	}
	return FormatNumber(n, base)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

package forth

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/jcorbin/threadforth/internal/runeio"
)

// Dumper writes a human readable description of an engine's state: the
// words defined beyond any built-ins, the heap, and, when a Context is set,
// its stacks.
type Dumper struct {
	Engine  *Engine
	Context *Context
	Out     io.Writer

	// Raw adds a structural rendering of the heap and stacks after the
	// formatted sections.
	Raw bool

	addrWidth int
}

// Dump writes the engine's state into w.
func (eng *Engine) Dump(w io.Writer) {
	Dumper{Engine: eng, Out: w}.Dump()
}

// Dump writes the dump.
func (dump Dumper) Dump() {
	fmt.Fprintf(dump.Out, "# Engine Dump\n")
	fmt.Fprintf(dump.Out, "  words: %v\n", dump.Engine.dict.Len())
	fmt.Fprintf(dump.Out, "  here: %v\n", dump.Engine.heap.Here())
	dump.dumpWords()
	dump.dumpHeap()
	if dump.Context != nil {
		dump.dumpContext()
	}
	if dump.Raw {
		dump.dumpRaw()
	}
}

func (dump *Dumper) dumpWords() {
	var buf bytes.Buffer
	header := false
	for w := dump.Engine.dict.Head(); w != nil; w = w.Next() {
		_, hasBody := w.Body()
		if w.Code == nil && !hasBody && !w.Value {
			continue
		}
		if !header {
			fmt.Fprintf(dump.Out, "# Words\n")
			header = true
		}
		buf.WriteString("  ")
		dump.formatWord(&buf, w)
		buf.WriteByte('\n')
		buf.WriteTo(dump.Out)
	}
}

func (dump *Dumper) formatWord(buf *bytes.Buffer, w *Word) {
	switch addr, hasBody := w.Body(); {
	case hasBody:
		fmt.Fprintf(buf, "CREATE %v @%v", w, addr)
	case w.Value:
		fmt.Fprintf(buf, "VALUE %v", w)
	default:
		buf.WriteString(": ")
		buf.WriteString(w.String())
		dump.formatCode(buf, w.Code)
		buf.WriteString(" ;")
	}
	if w.Immediate {
		buf.WriteString(" IMMEDIATE")
	}
	if w.Name != "" && dump.Engine.dict.Find(w.Name) != w {
		buf.WriteString(" \\ shadowed")
	}
}

func (dump *Dumper) formatCode(buf *bytes.Buffer, code Code) {
	for _, e := range code {
		buf.WriteByte(' ')
		if e.Call == nil {
			buf.WriteString(formatCell(e.Lit))
			continue
		}
		buf.WriteString(e.Name)
		if e.Body != nil {
			buf.WriteByte('(')
			dump.formatCode(buf, e.Body)
			buf.WriteString(" )")
		}
	}
}

func (dump *Dumper) dumpHeap() {
	cells := dump.Engine.heap.cells
	if len(cells) == 0 {
		return
	}
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(len(cells))) + 1
	}
	fmt.Fprintf(dump.Out, "# Heap\n")
	var buf bytes.Buffer
	for addr := 0; addr < len(cells); {
		fmt.Fprintf(&buf, "  @% *v ", dump.addrWidth, addr)

		// runs of characters print as a string
		end := addr
		for end < len(cells) && cells[end].Kind() == CharCell {
			end++
		}
		if end-addr > 1 {
			var sb strings.Builder
			for _, c := range cells[addr:end] {
				sb.WriteRune(rune(c.n))
			}
			buf.WriteString(strconv.Quote(sb.String()))
			addr = end
		} else {
			buf.WriteString(formatCell(cells[addr]))
			addr++
		}
		buf.WriteByte('\n')
		buf.WriteTo(dump.Out)
	}
}

func (dump *Dumper) dumpContext() {
	fmt.Fprintf(dump.Out, "# Context\n")
	fmt.Fprintf(dump.Out, "  base: %v\n", dump.Context.Base)
	fmt.Fprintf(dump.Out, "  compileDepth: %v\n", dump.Context.compileDepth)
	fmt.Fprintf(dump.Out, "  stack: %v\n", formatCells(dump.Context.Stack.Values()))
	fmt.Fprintf(dump.Out, "  rstack: %v\n", formatCells(dump.Context.RStack.Values()))
	for i, def := range dump.Context.defs {
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "  def[%v]: %v %v", i, def.kind, def.mode)
		if def.word != nil && def.word.Name != "" {
			buf.WriteString(" ")
			buf.WriteString(def.word.Name)
		}
		dump.formatCode(&buf, def.code)
		buf.WriteByte('\n')
		buf.WriteTo(dump.Out)
	}
}

// rawCell is a cell with the execution token reduced to its word's name, so
// that structural printing does not walk the dictionary.
type rawCell struct {
	Kind string
	N    int
	Word string
}

func rawCells(cells []Cell) []rawCell {
	raw := make([]rawCell, len(cells))
	for i, c := range cells {
		raw[i] = rawCell{Kind: c.kind.String(), N: c.n}
		if c.xt != nil {
			raw[i].Word = c.xt.String()
		}
	}
	return raw
}

func (dump *Dumper) dumpRaw() {
	opts := []repr.Option{repr.Indent("  "), repr.OmitEmpty(true)}
	fmt.Fprintf(dump.Out, "# Raw Heap\n%v\n", repr.String(rawCells(dump.Engine.heap.cells), opts...))
	if dump.Context != nil {
		fmt.Fprintf(dump.Out, "# Raw Stack\n%v\n", repr.String(rawCells(dump.Context.Stack.Values()), opts...))
		fmt.Fprintf(dump.Out, "# Raw RStack\n%v\n", repr.String(rawCells(dump.Context.RStack.Values()), opts...))
	}
}

func formatCell(c Cell) string {
	if c.kind == CharCell {
		if name := runeio.ControlName(rune(c.n)); name != "" {
			return name
		}
	}
	return c.String()
}

func formatCells(cells []Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = formatCell(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

package forth

import (
	"bytes"
	"io"
)

// Prelude is Forth source for words built from the standard library rather
// than written in Go; load it with Engine.Load.
var Prelude io.WriterTo = preludeSource{}

type preludeSource struct{}

func (preludeSource) Name() string { return "prelude.fs" }

func (preludeSource) WriteTo(w io.Writer) (n int64, err error) {
	var buf bytes.Buffer
	line := func(parts ...string) {
		if err != nil {
			return
		}
		for _, s := range parts {
			buf.WriteString(s)
		}
		buf.WriteByte('\n')
		var m int64
		m, err = buf.WriteTo(w)
		n += m
	}

	line(`\ threadforth prelude`)

	// Rotate the other way, burying the top under the next two.
	line(`: -ROT ( a b c -- c a b ) ROT ROT ;`)

	// Print the contents of a variable.
	line(`: ? ( addr -- ) @ . ;`)

	// Turn an address and count into the limit and start that DO wants, for
	// walking a string or array.
	line(`: BOUNDS ( addr u -- addr+u addr ) OVER + SWAP ;`)

	line(`: 2NIP ( a b c d -- c d ) ROT DROP ROT DROP ;`)

	return n, err
}

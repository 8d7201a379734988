package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteFlusher is an io.Writer that may hold output until flushed.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Flushable returns w as a WriteFlusher. Writers that already flush are
// returned as is, in-memory buffers and io.Discard get a no-op Flush, and
// anything else (files, terminals, pipes) is buffered.
func Flushable(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case WriteFlusher:
		return impl
	case *bytes.Buffer, *strings.Builder:
		return unbuffered{w}
	}
	if w == io.Discard {
		return unbuffered{w}
	}
	return bufio.NewWriter(w)
}

type unbuffered struct{ io.Writer }

func (unbuffered) Flush() error { return nil }

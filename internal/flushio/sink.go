package flushio

import (
	"io"

	"github.com/jcorbin/threadforth/internal/runeio"
)

// Sink adapts writers into a text output that has no error return. Output
// goes to every writer added; the first write error is retained and reported
// by the next Flush, and a writer that failed receives no further output.
type Sink struct {
	outs   []WriteFlusher
	failed []bool
	err    error
}

// NewSink creates a sink writing into w.
func NewSink(w io.Writer) *Sink {
	sink := &Sink{}
	sink.Tee(w)
	return sink
}

// Output writes text, normalizing C1 control characters into their 7-bit
// escape forms.
func (sink *Sink) Output(text string) {
	for i, out := range sink.outs {
		if sink.failed[i] {
			continue
		}
		if _, err := runeio.WriteANSIString(out, text); err != nil {
			sink.failed[i] = true
			if sink.err == nil {
				sink.err = err
			}
		}
	}
}

// Tee adds another writer to receive all further output.
func (sink *Sink) Tee(w io.Writer) {
	sink.outs = append(sink.outs, Flushable(w))
	sink.failed = append(sink.failed, false)
}

// Flush flushes every writer, returning and clearing any retained write
// error, or else the first flush error.
func (sink *Sink) Flush() error {
	err := sink.err
	sink.err = nil
	for _, out := range sink.outs {
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

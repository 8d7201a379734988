package flushio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/threadforth/internal/flushio"
)

type failWriter struct{ err error }

func (fw failWriter) Write(p []byte) (int, error) { return 0, fw.err }

func Test_Sink(t *testing.T) {
	var a, b bytes.Buffer
	sink := flushio.NewSink(&a)
	sink.Output("hello ")
	sink.Tee(&b)
	sink.Output("world")
	sink.Output("\u0085")
	assert.NoError(t, sink.Flush())
	assert.Equal(t, "hello world\r\n", a.String())
	assert.Equal(t, "world\r\n", b.String())
}

func Test_Sink_error(t *testing.T) {
	bang := errors.New("bang")
	var out strings.Builder
	sink := flushio.NewSink(nopFlush{failWriter{bang}})
	sink.Tee(&out)
	sink.Output("a")
	sink.Output("b")
	assert.Equal(t, "ab", out.String(), "expected a failed writer to not starve the others")
	assert.Equal(t, bang, sink.Flush(), "expected retained write error")
	assert.NoError(t, sink.Flush(), "expected error to be reported once")
}

func Test_Sink_flushError(t *testing.T) {
	bang := errors.New("bang")
	sink := flushio.NewSink(failWriter{bang})
	sink.Output("buffered")
	assert.Equal(t, bang, sink.Flush(), "expected buffered write error at flush")
}

func Test_Flushable(t *testing.T) {
	var buf bytes.Buffer
	var sb strings.Builder
	bw := bufio.NewWriter(&buf)
	assert.Same(t, bw, flushio.Flushable(bw), "expected a flusher to be used as is")
	assert.NoError(t, flushio.Flushable(&sb).Flush())
	assert.NoError(t, flushio.Flushable(io.Discard).Flush())
	_, buffered := flushio.Flushable(os.Stdout).(*bufio.Writer)
	assert.True(t, buffered, "expected a file to be buffered")
}

type nopFlush struct{ failWriter }

func (nopFlush) Flush() error { return nil }

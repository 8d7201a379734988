package forth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errWriter struct{ err error }

func (ew errWriter) Write(p []byte) (int, error) { return 0, ew.err }

func Test_WithOutput_replaced(t *testing.T) {
	bang := errors.New("bang")
	var out strings.Builder
	eng := New(
		WithOutput(errWriter{bang}),
		optFunc(func(eng *Engine) { eng.Output("lost") }),
		WithOutput(&out),
	)
	eng.Output("kept")
	assert.Equal(t, bang, eng.Flush(), "expected the replaced output's error")
	assert.NoError(t, eng.Flush(), "expected the error to be reported once")
	assert.Equal(t, "kept", out.String())
}

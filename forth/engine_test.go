package forth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/threadforth/internal/logio"
	"github.com/jcorbin/threadforth/internal/panicerr"
)

type evalTestCases []evalTestCase

func (ets evalTestCases) run(t *testing.T) {
	for _, et := range ets {
		if !t.Run(et.name, et.run) {
			return
		}
	}
}

func evalTest(name string) (et evalTestCase) {
	et.name = name
	return et
}

type optFunc func(eng *Engine)

func (f optFunc) apply(eng *Engine) { f(eng) }

type evalTestCase struct {
	name    string
	opts    []interface{}
	stack   []Cell
	srcs    []string
	expect  []func(t *testing.T, eng *Engine, c *Context)
	wantErr error

	prelude bool
}

func (et evalTestCase) apply(wraps ...func(evalTestCase) evalTestCase) evalTestCase {
	for _, wrap := range wraps {
		et = wrap(et)
	}
	return et
}

func (et evalTestCase) withOptions(opts ...EngineOption) evalTestCase {
	for _, opt := range opts {
		et.opts = append(et.opts, opt)
	}
	return et
}

func (et evalTestCase) withPrelude() evalTestCase {
	et.prelude = true
	return et
}

func (et evalTestCase) withStack(values ...int) evalTestCase {
	for _, n := range values {
		et.stack = append(et.stack, Int(n))
	}
	return et
}

func (et evalTestCase) withHeap(values ...int) evalTestCase {
	et.opts = append(et.opts, optFunc(func(eng *Engine) {
		for _, n := range values {
			eng.heap.Append(Int(n))
		}
	}))
	return et
}

// eval adds source to be interpreted; each source gets its own Context,
// sharing the engine's dictionary and heap.
func (et evalTestCase) eval(srcs ...string) evalTestCase {
	et.srcs = append(et.srcs, srcs...)
	return et
}

func (et evalTestCase) expectError(err error) evalTestCase {
	et.wantErr = err
	return et
}

func (et evalTestCase) expectStack(values ...int) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		if values == nil {
			values = []int{}
		}
		assert.Equal(t, values, cellNumbers(t, c.Stack.Values()), "expected stack values")
	})
	return et
}

func (et evalTestCase) expectCells(cells ...Cell) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		if cells == nil {
			cells = []Cell{}
		}
		assert.Equal(t, cells, c.Stack.Values(), "expected stack cells")
	})
	return et
}

// expectXT expects the top of the stack to be the execution token of the
// named word, as currently defined.
func (et evalTestCase) expectXT(name string) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		top, err := c.Stack.Peek()
		if !assert.NoError(t, err, "expected an execution token on the stack") {
			return
		}
		w, err := top.Word()
		if assert.NoError(t, err, "expected an execution token on the stack") {
			assert.Same(t, eng.dict.Find(name), w, "expected xt of %v", name)
		}
	})
	return et
}

func (et evalTestCase) expectRStack(values ...int) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		if values == nil {
			values = []int{}
		}
		assert.Equal(t, values, cellNumbers(t, c.RStack.Values()), "expected return stack values")
	})
	return et
}

func (et evalTestCase) expectHeap(addr int, values ...int) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		cells := eng.heap.Cells()
		if !assert.True(t, addr+len(values) <= len(cells), "expected heap to extend to @%v", addr+len(values)) {
			return
		}
		assert.Equal(t, values, cellNumbers(t, cells[addr:addr+len(values)]), "expected heap values @%v", addr)
	})
	return et
}

func (et evalTestCase) expectHere(here int) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		assert.Equal(t, here, eng.heap.Here(), "expected HERE")
	})
	return et
}

func (et evalTestCase) expectCompileDepth(depth int) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		assert.Equal(t, depth, c.CompileDepth(), "expected compile depth")
	})
	return et
}

func (et evalTestCase) expectOutput(output string) evalTestCase {
	var out strings.Builder
	et.opts = append(et.opts, WithOutput(&out))
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return et
}

func (et evalTestCase) expectWord(name string) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		assert.NotNil(t, eng.dict.Find(name), "expected word %q to be defined", name)
	})
	return et
}

func (et evalTestCase) expectDump(dump string) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine, c *Context) {
		var out strings.Builder
		Dumper{Engine: eng, Context: c, Out: &out}.Dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return et
}

func (et evalTestCase) withTestOutput() evalTestCase {
	et.opts = append(et.opts, func(et *evalTestCase, t *testing.T) EngineOption {
		return WithTee(&logio.Writer{Logf: func(mess string, args ...interface{}) {
			t.Logf("out: "+mess, args...)
		}})
	})
	return et
}

func (et evalTestCase) run(t *testing.T) {
	var trace strings.Builder
	eng := et.buildEngine(t, WithLogf(func(mess string, args ...interface{}) {
		fmt.Fprintf(&trace, mess, args...)
		trace.WriteByte('\n')
	}))

	c := et.runEval(t, eng)

	defer func() {
		if t.Failed() {
			t.Logf("trace:\n%v", trace.String())
			et.dumpToTest(t, eng, c)
		}
	}()

	if !t.Failed() {
		for _, expect := range et.expect {
			expect(t, eng, c)
		}
	}
}

func (et evalTestCase) runEval(t *testing.T, eng *Engine) (c *Context) {
	ctx := context.Background()
	if et.prelude {
		if !assert.NoError(t, eng.Load(ctx, Prelude), "unexpected prelude error") {
			return eng.NewContext("", "")
		}
	}

	var err error
	c = eng.NewContext(t.Name(), "")
	c.Stack.Push(et.stack...)
	for i, src := range et.srcs {
		if i > 0 {
			c = eng.NewContext(fmt.Sprintf("%v_%v", t.Name(), i+1), src)
		} else {
			c.source = src
		}
		if err = c.Interpret(); err != nil {
			break
		}
	}
	if ferr := eng.Flush(); err == nil {
		err = ferr
	}

	if et.wantErr != nil {
		assert.True(t, errors.Is(err, et.wantErr), "expected error: %v\ngot: %+v", et.wantErr, err)
	} else if !assert.NoError(t, err, "unexpected eval error") {
		if stack := panicerr.PanicStack(err); stack != "" {
			t.Logf("panic stack:\n%s", stack)
		}
	}
	return c
}

func (et evalTestCase) buildEngine(t *testing.T, opts ...EngineOption) *Engine {
	var opt EngineOption = EngineOptions(opts...)
	for _, o := range et.opts {
		switch impl := o.(type) {
		case func(et *evalTestCase, t *testing.T) EngineOption:
			opt = EngineOptions(opt, impl(&et, t))
		case EngineOption:
			opt = EngineOptions(opt, impl)
		default:
			t.Logf("unsupported evalTestCase opt type %T", o)
			t.FailNow()
		}
	}
	return New(opt)
}

func (et evalTestCase) dumpToTest(t *testing.T, eng *Engine, c *Context) {
	lw := logio.Writer{Logf: func(mess string, args ...interface{}) {
		t.Logf("dump: "+mess, args...)
	}}
	defer lw.Flush()
	Dumper{Engine: eng, Context: c, Out: &lw, Raw: true}.Dump()
}

//// utilities

func cellNumbers(t *testing.T, cells []Cell) []int {
	ns := make([]int, len(cells))
	for i, c := range cells {
		n, err := c.Number()
		if err != nil {
			t.Errorf("cell[%v] is not a number: %v", i, c)
		}
		ns[i] = n
	}
	return ns
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

package forth

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/semaphore"
)

// Output receives text produced by display words.
type Output interface {
	Output(text string)
}

// OutputFunc adapts a function into an Output.
type OutputFunc func(text string)

// Output calls f(text).
func (f OutputFunc) Output(text string) { f(text) }

type discardOutput struct{}

func (discardOutput) Output(string) {}

// Engine owns the state that persists across evaluations: the dictionary
// and the heap. Each evaluation runs in its own Context.
//
// At most one evaluation may run against an engine at a time; Evaluate
// serializes callers, while contexts made directly by NewContext are the
// caller's to synchronize.
type Engine struct {
	logging

	dict Dictionary
	heap Heap
	out  Output

	// outErr holds an error from flushing a replaced output, until the next
	// Flush reports it.
	outErr error

	base     int
	words    []*Word
	noStdlib bool

	eval *semaphore.Weighted
}

// New builds an engine, registering the standard word library and then any
// words given through WithWords.
func New(opts ...EngineOption) *Engine {
	eng := &Engine{
		out:  discardOutput{},
		base: 10,
		eval: semaphore.NewWeighted(1),
	}
	EngineOptions(opts...).apply(eng)
	if !eng.noStdlib {
		for _, w := range StandardLibrary() {
			eng.RegisterWord(w)
		}
	}
	for _, w := range eng.words {
		eng.RegisterWord(w)
	}
	eng.words = nil
	return eng
}

// Dictionary returns the engine's dictionary.
func (eng *Engine) Dictionary() *Dictionary { return &eng.dict }

// Heap returns the engine's data space.
func (eng *Engine) Heap() *Heap { return &eng.heap }

// RegisterWord adds w to the dictionary, shadowing any word of the same
// name.
func (eng *Engine) RegisterWord(w *Word) {
	eng.dict.Push(w)
}

// Output sends text to the output sink.
func (eng *Engine) Output(text string) {
	eng.out.Output(text)
}

// Flush flushes the output sink, if it buffers, returning any delivery
// error.
func (eng *Engine) Flush() error {
	err := eng.outErr
	eng.outErr = nil
	if fl, ok := eng.out.(interface{ Flush() error }); ok {
		if ferr := fl.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

// NewContext creates a context to interpret source against the engine.
// The name labels errors; it may be empty.
func (eng *Engine) NewContext(name, source string) *Context {
	return &Context{
		logging: eng.logging,
		engine:  eng,
		name:    name,
		source:  source,
		Base:    eng.base,
	}
}

// Evaluate interprets source in a fresh context, waiting for any other
// evaluation against the engine to finish first. Dictionary and heap
// changes made before a failure are kept.
func (eng *Engine) Evaluate(ctx context.Context, source string) error {
	return eng.EvaluateNamed(ctx, "", source)
}

// EvaluateNamed is Evaluate with a source name for error locations.
func (eng *Engine) EvaluateNamed(ctx context.Context, name, source string) error {
	if err := eng.eval.Acquire(ctx, 1); err != nil {
		return err
	}
	defer eng.eval.Release(1)

	eng.logf("{", "eval %v", sourceName(name))
	err := eng.NewContext(name, source).Interpret()
	if ferr := eng.Flush(); err == nil {
		err = ferr
	}
	eng.logf("}", "eval %v done err:%v", sourceName(name), err)
	return err
}

// Load renders src and evaluates it. When src has a Name() method it names
// the source for error locations.
func (eng *Engine) Load(ctx context.Context, src io.WriterTo) error {
	var sb strings.Builder
	if _, err := src.WriteTo(&sb); err != nil {
		return err
	}
	var name string
	if nom, ok := src.(interface{ Name() string }); ok {
		name = nom.Name()
	}
	return eng.EvaluateNamed(ctx, name, sb.String())
}

func sourceName(name string) string {
	if name == "" {
		return "<eval>"
	}
	return name
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}

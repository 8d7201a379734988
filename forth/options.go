package forth

import (
	"io"

	"github.com/jcorbin/threadforth/internal/flushio"
)

// EngineOption configures an Engine under construction.
type EngineOption interface{ apply(eng *Engine) }

// EngineOptions combines any number of options into one.
func EngineOptions(opts ...EngineOption) EngineOption {
	var res engineOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case engineOptions:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type engineOptions []EngineOption

func (opts engineOptions) apply(eng *Engine) {
	for _, opt := range opts {
		opt.apply(eng)
	}
}

// WithOutput directs display words to write into w; the engine flushes it
// after each evaluation.
func WithOutput(w io.Writer) EngineOption { return outputOption{w} }

// WithTee copies display output into w, in addition to any prior output.
func WithTee(w io.Writer) EngineOption { return teeOption{w} }

// WithOutputFunc directs display words to call fn with each piece of text.
func WithOutputFunc(fn func(text string)) EngineOption { return outputFuncOption(fn) }

// WithLogf enables trace logging of interpretation and compilation.
func WithLogf(logfn func(mess string, args ...interface{})) EngineOption {
	return withLogfn(logfn)
}

// WithHeapLimit caps the heap at the given number of cells; 0 means no cap.
func WithHeapLimit(cells int) EngineOption { return heapLimitOption(cells) }

// WithBase sets the numeric base new contexts start with.
func WithBase(base int) EngineOption { return baseOption(base) }

// WithWords registers the given words after the standard library.
func WithWords(words ...*Word) EngineOption { return wordsOption(words) }

// WithoutStandardLibrary starts the engine with only the words given through
// WithWords.
func WithoutStandardLibrary() EngineOption { return noStdlibOption{} }

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type outputFuncOption func(text string)
type withLogfn func(mess string, args ...interface{})
type heapLimitOption int
type baseOption int
type wordsOption []*Word
type noStdlibOption struct{}

func (o outputOption) apply(eng *Engine) {
	eng.outErr = eng.Flush()
	eng.out = flushio.NewSink(o.Writer)
}

func (o teeOption) apply(eng *Engine) {
	if sink, ok := eng.out.(*flushio.Sink); ok {
		sink.Tee(o.Writer)
		return
	}
	prior, sink := eng.out, flushio.NewSink(o.Writer)
	eng.out = teeOutput{prior, sink}
}

func (fn outputFuncOption) apply(eng *Engine) { eng.out = OutputFunc(fn) }
func (logfn withLogfn) apply(eng *Engine)     { eng.logfn = logfn }
func (lim heapLimitOption) apply(eng *Engine) { eng.heap.Limit = int(lim) }
func (base baseOption) apply(eng *Engine)     { eng.base = int(base) }
func (words wordsOption) apply(eng *Engine)   { eng.words = append(eng.words, words...) }
func (noStdlibOption) apply(eng *Engine)      { eng.noStdlib = true }

type teeOutput struct {
	prior Output
	sink  *flushio.Sink
}

func (tee teeOutput) Output(text string) {
	tee.prior.Output(text)
	tee.sink.Output(text)
}

func (tee teeOutput) Flush() error {
	err := tee.sink.Flush()
	if fl, ok := tee.prior.(interface{ Flush() error }); ok {
		if ferr := fl.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

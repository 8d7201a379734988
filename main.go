package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/jcorbin/threadforth/forth"
	"github.com/jcorbin/threadforth/internal/logio"
)

type stringsFlag []string

func (sf *stringsFlag) String() string { return strings.Join(*sf, " ") }

func (sf *stringsFlag) Set(s string) error {
	*sf = append(*sf, s)
	return nil
}

func main() {
	log := logio.NewLogger(os.Stderr)
	run(context.Background(), log)
	os.Exit(log.ExitCode())
}

func run(ctx context.Context, log *logio.Logger) {
	var (
		trace       bool
		heapLimit   int
		configPath  string
		exprs       stringsFlag
		interactive bool
		dump        bool
		noPrelude   bool
	)
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&heapLimit, "heap-limit", 0, "limit the heap to this many cells")
	flag.StringVar(&configPath, "config", "", "config file (default "+defaultConfigName+" if present)")
	flag.Var(&exprs, "e", "evaluate an expression; may be repeated")
	flag.BoolVar(&interactive, "i", false, "start an interactive shell after loading")
	flag.BoolVar(&dump, "dump", false, "dump engine state to stderr on exit")
	flag.BoolVar(&noPrelude, "no-prelude", false, "do not load the prelude")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "heap-limit" {
			cfg.Engine.HeapLimit = heapLimit
		}
	})

	opts := []forth.EngineOption{
		forth.WithOutput(os.Stdout),
		forth.WithHeapLimit(cfg.Engine.HeapLimit),
		forth.WithBase(cfg.Engine.Base),
	}
	if trace {
		opts = append(opts, forth.WithLogf(log.Leveledf("TRACE")))
	}
	eng := forth.New(opts...)
	if dump {
		defer eng.Dump(os.Stderr)
	}

	if cfg.Engine.LoadPrelude() && !noPrelude {
		if err := eng.Load(ctx, forth.Prelude); err != nil {
			log.Errorf("prelude: %v", err)
			return
		}
	}

	files := append(cfg.Files(), flag.Args()...)
	for _, name := range files {
		if err := eng.Load(ctx, fileSource(name)); err != nil {
			log.Errorf("%v", err)
			return
		}
	}
	for _, expr := range exprs {
		if err := eng.EvaluateNamed(ctx, "-e", expr); err != nil {
			log.Errorf("%v", err)
			return
		}
	}

	if !interactive && len(files) == 0 && len(exprs) == 0 {
		if isTerminal(os.Stdin) {
			interactive = true
		} else {
			log.ErrorIf(eng.Load(ctx, readerSource{"<stdin>", os.Stdin}))
			return
		}
	}
	if interactive {
		r := repl{
			eng:     eng,
			out:     os.Stdout,
			prompt:  cfg.REPL.Prompt,
			history: cfg.REPL.History,
		}
		log.ErrorIf(r.run(ctx))
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

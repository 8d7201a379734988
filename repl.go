package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jcorbin/threadforth/forth"
)

// repl is an interactive shell: each line read is its own evaluation, so a
// definition must fit on one line.
type repl struct {
	eng     *forth.Engine
	out     io.Writer
	prompt  string
	history string
}

func (r *repl) run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if r.history != "" {
		if f, err := os.Open(r.history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		text, err := line.Prompt(r.prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		line.AppendHistory(text)
		r.evalLine(ctx, text)
	}

	if r.history != "" {
		f, err := os.Create(r.history)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			return err
		}
	}
	return nil
}

// evalLine evaluates one line, then reports " ok" or the error.
func (r *repl) evalLine(ctx context.Context, text string) {
	if err := r.eng.EvaluateNamed(ctx, "<repl>", text); err != nil {
		fmt.Fprintf(r.out, " %v\n", err)
	} else {
		fmt.Fprintf(r.out, " ok\n")
	}
}

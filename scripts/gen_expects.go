// gen_expects generates functional wrappers for the evalTestCase builder
// methods, so that tests may pass them as variadic options:
//
//	evalTest("name").eval(src).apply(expectEvalStack(1, 2))
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	// output is piped through goimports, which runs until its stdin closes
	eg.Go(func() error {
		fmtCmd := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := fmtCmd.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		fmtCmd.Stdout = out
		fmtCmd.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := fmtCmd.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

var (
	packageClause = regexp.MustCompile(`^package (\w+)`)
	builderMethod = regexp.MustCompile(`func \(et evalTestCase\) (expect|with)(.+?)\((.+?)\) evalTestCase`)
)

func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(1024)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := packageClause.FindSubmatch(sc.Bytes()); len(match) > 0 {
			buf.WriteString("package ")
			buf.Write(match[1])
			buf.WriteString("\n\n")

			buf.WriteString("// @generated from ")
			buf.WriteString(in.Name())
			buf.WriteString("\n\n")

			if args := flag.Args(); len(args) >= 2 {
				buf.WriteString("//go:generate go run ../scripts/gen_expects.go --")
				for _, arg := range args {
					buf.WriteByte(' ')
					buf.WriteString(arg)
				}
				buf.WriteString("\n\n")
			}
		}

		if match := builderMethod.FindSubmatch(sc.Bytes()); len(match) > 0 {
			var (
				baseName = match[1]
				whatName = match[2]
				args     = match[3]
			)
			fmt.Fprintf(&buf, "func %sEval%s(%s) func(evalTestCase) evalTestCase {\n", baseName, whatName, args)
			buf.WriteString("\treturn func(et evalTestCase) evalTestCase {\n")
			fmt.Fprintf(&buf, "\t\treturn et.%s%s(", baseName, whatName)
			for i, part := range bytes.Split(args, []byte(",")) {
				if i > 0 {
					buf.WriteString(", ")
				}
				fields := bytes.Fields(part)
				buf.Write(fields[0])
				if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
					buf.WriteString("...")
				}
			}
			buf.WriteString(")\n")
			buf.WriteString("\t}\n")
			buf.WriteString("}\n\n")
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

package main

import (
	"io"
	"os"
)

// fileSource loads a source file into the engine by name.
type fileSource string

func (name fileSource) Name() string { return string(name) }

func (name fileSource) WriteTo(w io.Writer) (int64, error) {
	f, err := os.Open(string(name))
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(w, f)
}

// readerSource loads all of a stream, like standard input.
type readerSource struct {
	name string
	r    io.Reader
}

func (rs readerSource) Name() string { return rs.name }

func (rs readerSource) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(w, rs.r)
}

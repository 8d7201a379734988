/*
Command threadforth is a Forth dialect interpreter and compiler.

Usage:

	threadforth [flags] [files...]

Source is loaded in order: the prelude (unless -no-prelude), any files named
in the config file's [load] section, the files given as arguments, and then
each -e expression. With -i, or when nothing else was given and standard
input is a terminal, an interactive shell follows; otherwise, with nothing
else given, standard input is read as source.

Each file, expression, and shell line is a separate evaluation: definitions,
variables, and other heap contents carry over between them, while the data
stack does not.

The optional config file, threadforth.toml (or the path given by -config):

	[engine]
	base = 10          # initial numeric base
	heap_limit = 4096  # maximum heap cells, 0 for no limit
	prelude = true     # load the prelude

	[repl]
	prompt = "> "
	history = ".threadforth_history"

	[load]
	files = ["lib.fs"] # resolved relative to the config file

The engine itself is in package forth.
*/
package main

/*
Package forth implements a small Forth engine built around a compile nesting
counter instead of a single compile/interpret mode flag.

An Engine owns the dictionary and the heap; each call to Evaluate interprets
one source text in a fresh Context with its own data and return stacks.
Definitions and data space persist across evaluations, stacks do not.

Words carry two behaviors: Interpret, run when the word executes, and
Compile, run when the word is met while compiling. A word without a Compile
behavior is compiled as a call to its Interpret behavior. Immediate words
always run their Interpret behavior.

Control structures (IF ELSE THEN, DO LOOP +LOOP) open frames on the
definitions stack just as : does. When one closes at the top level, outside
any definition, its body runs at once; when nested, it compiles into the
enclosing frame as a closure. So

	1 IF 2 ELSE 3 THEN

leaves 2 without defining anything.

Word behaviors abort by calling Context.Fail; Interpret recovers and returns
the error wrapped in an *EvalError that locates the failing token.
*/
package forth

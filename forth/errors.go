package forth

import (
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrMissingWord      = errors.New("missing word")
	ErrNoNameToMark     = errors.New("most recent definition has no name")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrHeapLimit        = errors.New("heap limit exceeded")
	ErrQuotientOverflow = errors.New("quotient overflow")
)

// UnknownWordError names a token that is neither a dictionary entry nor a
// number in the current base.
type UnknownWordError string

// UndefinedWordError names a word that an explicit lookup failed to find.
type UndefinedWordError string

// UnterminatedLiteralError carries the delimiter that was never found.
type UnterminatedLiteralError rune

// NotAValueWordError names a TO target that was not created by VALUE.
type NotAValueWordError string

// NotCreatedWordError names a >BODY argument with no data field.
type NotCreatedWordError string

// CompileOnlyError names a word that has no interpretation semantics.
type CompileOnlyError string

// BaseError carries an unusable numeric base.
type BaseError int

func (name UnknownWordError) Error() string   { return fmt.Sprintf("unknown word %q", string(name)) }
func (name UndefinedWordError) Error() string { return fmt.Sprintf("undefined word %q", string(name)) }
func (name NotAValueWordError) Error() string {
	return fmt.Sprintf("%q was not defined by VALUE", string(name))
}
func (name NotCreatedWordError) Error() string {
	return fmt.Sprintf("%q was not defined by CREATE", string(name))
}
func (name CompileOnlyError) Error() string {
	return fmt.Sprintf("%q may only be used while compiling", string(name))
}
func (delim UnterminatedLiteralError) Error() string {
	return fmt.Sprintf("unterminated literal, missing %q", rune(delim))
}
func (base BaseError) Error() string { return fmt.Sprintf("invalid numeric base %v", int(base)) }

// NotExecutionTokenError carries a cell that was expected to be an execution
// token.
type NotExecutionTokenError struct{ Cell Cell }

func (err NotExecutionTokenError) Error() string {
	return fmt.Sprintf("not an execution token: %v", err.Cell)
}

// CellTypeError indicates a cell of the wrong kind for an operation.
type CellTypeError struct {
	Want, Got CellKind
}

func (err CellTypeError) Error() string {
	return fmt.Sprintf("expected %v cell, got %v", err.Want, err.Got)
}

// ControlMismatchError indicates a control word closing a frame it does not
// match, or closing when no frame is open.
type ControlMismatchError struct {
	Word string
	Open string
}

func (err ControlMismatchError) Error() string {
	if err.Open == "" {
		return fmt.Sprintf("%v without an open control structure", err.Word)
	}
	return fmt.Sprintf("%v cannot close %v", err.Word, err.Open)
}

// AddressError indicates a heap access outside the allocated heap.
type AddressError struct {
	Addr int
	Op   string
}

func (err AddressError) Error() string {
	return fmt.Sprintf("invalid heap %v @%v", err.Op, err.Addr)
}

// EvalError locates a failure within the source being evaluated.
type EvalError struct {
	Name  string
	Line  int
	Col   int
	Token string
	Err   error
}

func (err *EvalError) Error() string {
	name := err.Name
	if name == "" {
		name = "<eval>"
	}
	if err.Token == "" {
		return fmt.Sprintf("%v:%v:%v: %v", name, err.Line, err.Col, err.Err)
	}
	return fmt.Sprintf("%v:%v:%v: %v: %v", name, err.Line, err.Col, err.Token, err.Err)
}

func (err *EvalError) Unwrap() error { return err.Err }

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }

package golox

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the stage an error stems from.
type ErrorKind int

// Kinds of errors.
const (
	ScanError ErrorKind = iota
	ParseError
	ResolveError
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case ScanError:
		return "scan error"
	case ParseError:
		return "parse error"
	case ResolveError:
		return "resolve error"
	case RuntimeError:
		return "runtime error"
	}
	return "unknown error"
}

// Static is true for errors found before a program is executed.
func (k ErrorKind) Static() bool {
	return k != RuntimeError
}

// Error is the error type shared by all stages of the pipeline.
type Error struct {
	Kind  ErrorKind
	Line  int
	Where string // location hint, e.g. " at 'x'" or " at end"
	Msg   string
}

// NewError creates an error without a location hint.
func NewError(kind ErrorKind, line int, msg string) *Error {
	return &Error{Kind: kind, Line: line, Msg: msg}
}

// ErrorAt creates an error located at a token.
func ErrorAt(kind ErrorKind, tok Token, msg string) *Error {
	err := &Error{Kind: kind, Line: tok.Line, Msg: msg}
	if tok.Kind == EOF {
		err.Where = " at end"
	} else {
		err.Where = " at '" + tok.Lexeme + "'"
	}
	return err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line: %d] Error%s: %s", e.Line, e.Where, e.Msg)
}

// Errors collects the errors a stage reported.
type Errors []*Error

func (errs Errors) Error() string {
	var b strings.Builder
	for i, e := range errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Kind is the kind of the first error, which decides how a run failed.
func (errs Errors) Kind() ErrorKind {
	if len(errs) == 0 {
		return ScanError
	}
	return errs[0].Kind
}

// Err returns nil for an empty list, errs otherwise.
func (errs Errors) Err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/runtime"
	"github.com/npillmayer/schuko/gconf"
)

// Value is a Lox run time value.
type Value = interface{}

// Interpreter executes resolved Lox programs. An interpreter may execute any
// number of programs; globals and binding distances survive between them.
type Interpreter struct {
	globals  *runtime.Environment
	env      *runtime.Environment // current environment
	locals   map[golox.TokenID]int
	out      io.Writer
	calls    *arraystack.Stack // of frame
	maxDepth int
	Error    func(error)
}

// frame is an entry of the call stack.
type frame struct {
	name string
	line int
}

func (f frame) String() string {
	return fmt.Sprintf("%s (line %d)", f.name, f.line)
}

// Option configures an interpreter.
type Option func(*Interpreter)

// Output redirects the output of 'print' statements.
func Output(w io.Writer) Option {
	return func(intp *Interpreter) {
		intp.out = w
	}
}

// MaxCallDepth limits the depth of the Lox call stack. Exceeding it is a
// run time error. n ≤ 0 means unlimited.
func MaxCallDepth(n int) Option {
	return func(intp *Interpreter) {
		intp.maxDepth = n
	}
}

// Natives defines additional native functions in the globals.
func Natives(natives ...*Native) Option {
	return func(intp *Interpreter) {
		for _, n := range natives {
			intp.DefineNative(n)
		}
	}
}

// New creates an interpreter. Its globals contain the native function
// 'clock'. Configuration key "maxcalldepth" presets the call depth limit.
func New(opts ...Option) *Interpreter {
	globals := runtime.NewEnvironment("globals", nil)
	intp := &Interpreter{
		globals:  globals,
		env:      globals,
		locals:   make(map[golox.TokenID]int),
		out:      os.Stdout,
		calls:    arraystack.New(),
		maxDepth: gconf.GetInt("maxcalldepth"),
		Error:    logError,
	}
	intp.DefineNative(Clock())
	for _, opt := range opts {
		opt(intp)
	}
	return intp
}

// SetErrorHandler sets the handler errors of a run are reported to.
func (intp *Interpreter) SetErrorHandler(h func(error)) {
	if h == nil {
		intp.Error = logError
		return
	}
	intp.Error = h
}

// Report passes an error to the interpreter's error handler.
func (intp *Interpreter) Report(err error) {
	intp.Error(err)
}

func logError(e error) {
	tracer().Errorf(e.Error())
}

// DefineNative binds a native function in the globals.
func (intp *Interpreter) DefineNative(n *Native) {
	intp.globals.Define(n.Name, n)
}

// Globals returns the global environment.
func (intp *Interpreter) Globals() *runtime.Environment {
	return intp.globals
}

// Resolve records the binding distance of a local variable reference.
// It is called by the resolver.
func (intp *Interpreter) Resolve(name golox.Token, distance int) {
	intp.locals[name.ID] = distance
}

// Interpret executes a resolved program. The first run time error stops
// execution and is returned, without having been reported.
func (intp *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		sig, err := intp.execute(stmt)
		if err != nil {
			intp.traceCallStack(err)
			intp.env = intp.globals
			intp.calls.Clear()
			return err
		}
		if sig.returning {
			return golox.NewError(golox.RuntimeError, 0, "Can't return from top-level code.")
		}
	}
	return nil
}

func (intp *Interpreter) traceCallStack(err error) {
	if intp.calls.Empty() {
		return
	}
	tracer().Debugf("%v", err)
	for _, f := range intp.calls.Values() {
		tracer().Debugf("    in %v", f)
	}
}

// call invokes a callable, maintaining the call stack.
func (intp *Interpreter) call(callee Callable, paren golox.Token, args []Value) (Value, error) {
	intp.calls.Push(frame{name: callee.String(), line: paren.Line})
	if intp.maxDepth > 0 && intp.calls.Size() > intp.maxDepth {
		return nil, runtimeError(paren, "Stack overflow.")
	}
	result, err := callee.Call(intp, args)
	if err != nil {
		if _, ok := err.(*golox.Error); !ok {
			err = runtimeError(paren, err.Error())
		}
		return nil, err // frames are kept for tracing, Interpret clears them
	}
	intp.calls.Pop()
	return result, nil
}

func runtimeError(tok golox.Token, msg string) *golox.Error {
	return golox.NewError(golox.RuntimeError, tok.Line, msg)
}

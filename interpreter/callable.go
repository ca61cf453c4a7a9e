package interpreter

import (
	"time"

	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/runtime"
)

// Callable is a value which can be called: functions, natives and classes.
type Callable interface {
	Arity() int
	Call(intp *Interpreter, args []Value) (Value, error)
	String() string
}

// --- User defined functions ------------------------------------------------

// Function is a user defined function or method together with the
// environment it has been defined in.
type Function struct {
	decl          *ast.Function
	closure       *runtime.Environment
	isInitializer bool
}

// NewFunction creates a closure over env.
func NewFunction(decl *ast.Function, env *runtime.Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: env, isInitializer: isInitializer}
}

// Name returns the declared name of the function.
func (f *Function) Name() string {
	return f.decl.Name.Lexeme
}

// Arity is part of interface Callable.
func (f *Function) Arity() int {
	return len(f.decl.Params)
}

func (f *Function) String() string {
	return "<fn " + f.Name() + ">"
}

// Bind creates a new closure of the method with 'this' bound to inst.
func (f *Function) Bind(inst *Instance) *Function {
	env := runtime.NewEnvironment("this", f.closure)
	env.Define("this", inst)
	return NewFunction(f.decl, env, f.isInitializer)
}

// Call executes the function body in a new environment enclosed by the
// closure. Initializers always return 'this'.
func (f *Function) Call(intp *Interpreter, args []Value) (Value, error) {
	env := runtime.NewEnvironment(f.decl.Name.Lexeme, f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}
	sig, err := intp.executeBlock(f.decl.Body, env)
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		this, _ := f.closure.GetAt(0, "this")
		return this, nil
	}
	if sig.returning {
		return sig.value, nil
	}
	return nil, nil
}

// --- Natives ---------------------------------------------------------------

// Native is a function implemented in Go.
type Native struct {
	Name   string
	Params int // arity
	Fn     func(intp *Interpreter, args []Value) (Value, error)
}

// Arity is part of interface Callable.
func (n *Native) Arity() int {
	return n.Params
}

// Call is part of interface Callable.
func (n *Native) Call(intp *Interpreter, args []Value) (Value, error) {
	return n.Fn(intp, args)
}

func (n *Native) String() string {
	return "<native fn>"
}

// Clock returns the native function 'clock', which returns the seconds since
// the Unix epoch.
func Clock() *Native {
	return &Native{
		Name:   "clock",
		Params: 0,
		Fn: func(*Interpreter, []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	}
}

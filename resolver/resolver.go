package resolver

import (
	"fmt"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/runtime"
)

// Binder receives the binding distance of every resolved local reference.
type Binder interface {
	Resolve(name golox.Token, distance int)
}

// FunctionType tells what kind of function body is being resolved.
type FunctionType int

// Function types
const (
	NoFunction FunctionType = iota
	PlainFunction
	Method
	Initializer
)

// ClassType tells what kind of class body is being resolved.
type ClassType int

// Class types
const (
	NoClass ClassType = iota
	PlainClass
	Subclass
)

// Resolver is the static resolution pass.
type Resolver struct {
	binder   Binder
	scopes   runtime.ScopeTree
	function FunctionType
	class    ClassType
	global   string // name of a global variable whose initializer is being resolved
	Error    func(error)
	errors   golox.Errors
}

// New creates a resolver which reports binding distances to b.
func New(b Binder) *Resolver {
	return &Resolver{binder: b, Error: logError}
}

// SetErrorHandler sets an error handler for the resolver.
func (r *Resolver) SetErrorHandler(h func(error)) {
	if h == nil {
		r.Error = logError
		return
	}
	r.Error = h
}

// Resolve resolves a program. If any static errors have been reported,
// they are returned as golox.Errors.
func (r *Resolver) Resolve(stmts []ast.Stmt) error {
	r.resolveStmts(stmts)
	tracer().Infof("resolved %d statements, %d errors", len(stmts), len(r.errors))
	return r.errors.Err()
}

// --- Statements ------------------------------------------------------------

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope("block")
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			if r.scopes.Empty() {
				r.global = s.Name.Lexeme
			}
			r.resolveExpr(s.Initializer)
			r.global = ""
		}
		r.define(s.Name)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, PlainFunction)
	case *ast.Class:
		r.resolveClass(s)
	case *ast.Expression:
		r.resolveExpr(s.Expression)
	case *ast.Print:
		r.resolveExpr(s.Expression)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.Return:
		if r.function == NoFunction {
			r.errorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.HasValue && r.function == Initializer {
			r.errorAt(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	default:
		r.errorAt(golox.Token{}, fmt.Sprintf("cannot resolve statement of type %T", stmt))
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind FunctionType) {
	enclosing := r.function
	r.function = kind
	r.beginScope(fn.Name.Lexeme)
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.function = enclosing
}

// resolveClass wraps the methods in a scope binding 'this' and, for
// subclasses, in another one binding 'super'.
func (r *Resolver) resolveClass(c *ast.Class) {
	enclosing := r.class
	r.class = PlainClass
	r.declare(c.Name)
	r.define(c.Name)
	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.errorAt(c.Superclass.Name, "A class can't inherit from itself.")
		}
		r.class = Subclass
		r.resolveExpr(c.Superclass)
		r.beginScope("super")
		tag, _ := r.scopes.Current().DefineTag("super")
		tag.Ready = true
	}
	r.beginScope("this")
	tag, _ := r.scopes.Current().DefineTag("this")
	tag.Ready = true
	for _, method := range c.Methods {
		kind := Method
		if method.Name.Lexeme == "init" {
			kind = Initializer
		}
		r.resolveFunction(method, kind)
	}
	r.endScope()
	if c.Superclass != nil {
		r.endScope()
	}
	r.class = enclosing
}

// --- Expressions -----------------------------------------------------------

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
	case *ast.Variable:
		if r.scopes.Empty() {
			if e.Name.Lexeme == r.global {
				r.errorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		} else if tag := r.scopes.Current().Tags().ResolveTag(e.Name.Lexeme); tag != nil && !tag.Ready {
			r.errorAt(e.Name, "Can't read local variable in its own initializer.")
		}
		r.resolveLocal(e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.class == NoClass {
			r.errorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.Keyword)
	case *ast.Super:
		if r.class == NoClass {
			r.errorAt(e.Keyword, "Can't use 'super' outside of a class.")
			return
		} else if r.class != Subclass {
			r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(e.Keyword)
	default:
		r.errorAt(golox.Token{}, fmt.Sprintf("cannot resolve expression of type %T", expr))
	}
}

// --- Scopes ----------------------------------------------------------------

func (r *Resolver) beginScope(name string) {
	r.scopes.PushNewScope(name)
}

func (r *Resolver) endScope() {
	r.scopes.PopScope()
}

// declare adds a name to the innermost scope, not yet ready for use.
// Globals are not tracked.
func (r *Resolver) declare(name golox.Token) {
	if r.scopes.Empty() {
		return
	}
	scope := r.scopes.Current()
	if scope.Tags().ResolveTag(name.Lexeme) != nil {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	scope.DefineTag(name.Lexeme)
}

// define marks a declared name as ready for use.
func (r *Resolver) define(name golox.Token) {
	if r.scopes.Empty() {
		return
	}
	tags := r.scopes.Current().Tags()
	tag := tags.ResolveTag(name.Lexeme)
	if tag == nil {
		tag, _ = tags.DefineTag(name.Lexeme)
	}
	tag.Ready = true
}

func (r *Resolver) resolveLocal(name golox.Token) {
	if r.scopes.Empty() {
		return
	}
	if tag, dist := r.scopes.Current().ResolveTag(name.Lexeme); tag != nil {
		tracer().Debugf("%s@%d resolved at distance %d", name.Lexeme, name.Line, dist)
		r.binder.Resolve(name, dist)
	}
}

// --- Errors ----------------------------------------------------------------

func (r *Resolver) errorAt(tok golox.Token, msg string) {
	err := golox.NewError(golox.ResolveError, tok.Line, msg)
	r.errors = append(r.errors, err)
	r.Error(err)
}

func logError(e error) {
	tracer().Errorf("resolve error: " + e.Error())
}

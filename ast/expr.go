package ast

import "github.com/npillmayer/golox"

// Expr is an expression node.
type Expr interface {
	exprNode()
}

// Literal is a number, string, boolean or nil constant.
type Literal struct {
	Value interface{}
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
}

// Unary is a prefix operation, '-' or '!'.
type Unary struct {
	Operator golox.Token
	Right    Expr
}

// Binary is an arithmetic, comparison or equality operation.
type Binary struct {
	Left     Expr
	Operator golox.Token
	Right    Expr
}

// Logical is a short-circuit 'and' or 'or'.
type Logical struct {
	Left     Expr
	Operator golox.Token
	Right    Expr
}

// Variable references a variable by name.
type Variable struct {
	Name golox.Token
}

// Assign assigns to a variable.
type Assign struct {
	Name  golox.Token
	Value Expr
}

// Call is a call of a function, method or class. Paren is the closing
// parenthesis, used for error locations.
type Call struct {
	Callee    Expr
	Paren     golox.Token
	Arguments []Expr
}

// Get reads a property of an instance.
type Get struct {
	Object Expr
	Name   golox.Token
}

// Set writes a field of an instance.
type Set struct {
	Object Expr
	Name   golox.Token
	Value  Expr
}

// This is the 'this' keyword inside a method.
type This struct {
	Keyword golox.Token
}

// Super is a 'super.method' access.
type Super struct {
	Keyword golox.Token
	Method  golox.Token
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}

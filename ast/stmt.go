package ast

import "github.com/npillmayer/golox"

// Stmt is a statement node.
type Stmt interface {
	stmtNode()
}

// Expression is an expression evaluated for its side effects.
type Expression struct {
	Expression Expr
}

// Print writes the stringified value of an expression.
type Print struct {
	Expression Expr
}

// Var declares a variable. Initializer may be nil.
type Var struct {
	Name        golox.Token
	Initializer Expr
}

// Block is a braced list of statements with a scope of its own.
type Block struct {
	Statements []Stmt
}

// If is a conditional. ElseBranch may be nil.
type If struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

// While is a loop. 'for' loops are desugared into While as well.
type While struct {
	Condition Expr
	Body      Stmt
}

// Function declares a function or a method.
type Function struct {
	Name   golox.Token
	Params []golox.Token
	Body   []Stmt
}

// Return leaves a function. Value is never nil; a bare 'return' carries a
// nil literal and HasValue is false.
type Return struct {
	Keyword  golox.Token
	Value    Expr
	HasValue bool
}

// Class declares a class. Superclass may be nil.
type Class struct {
	Name       golox.Token
	Superclass *Variable
	Methods    []*Function
}

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*Class) stmtNode()      {}

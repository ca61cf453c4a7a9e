package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders an expression or a statement in a Lisp-like, fully
// parenthesized form, e.g.
//
//    (* (- 123) (group 45.67))
//
func Sprint(node interface{}) string {
	var b strings.Builder
	switch n := node.(type) {
	case Expr:
		printExpr(&b, n)
	case Stmt:
		printStmt(&b, n)
	default:
		fmt.Fprintf(&b, "<%T?>", node)
	}
	return b.String()
}

func parenthesize(b *strings.Builder, name string, parts ...interface{}) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		switch x := p.(type) {
		case Expr:
			printExpr(b, x)
		case Stmt:
			printStmt(b, x)
		case string:
			b.WriteString(x)
		}
	}
	b.WriteByte(')')
}

// LiteralString formats a literal value the way it appears in printed trees.
func LiteralString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return strconv.Quote(x)
	}
	return fmt.Sprintf("%v", v)
}

func printExpr(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *Literal:
		b.WriteString(LiteralString(e.Value))
	case *Grouping:
		parenthesize(b, "group", e.Expression)
	case *Unary:
		parenthesize(b, e.Operator.Lexeme, e.Right)
	case *Binary:
		parenthesize(b, e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		parenthesize(b, e.Operator.Lexeme, e.Left, e.Right)
	case *Variable:
		b.WriteString(e.Name.Lexeme)
	case *Assign:
		parenthesize(b, "=", e.Name.Lexeme, e.Value)
	case *Call:
		parts := []interface{}{e.Callee}
		for _, arg := range e.Arguments {
			parts = append(parts, arg)
		}
		parenthesize(b, "call", parts...)
	case *Get:
		parenthesize(b, ".", e.Object, e.Name.Lexeme)
	case *Set:
		parenthesize(b, "=", e.Object, e.Name.Lexeme, e.Value)
	case *This:
		b.WriteString("this")
	case *Super:
		parenthesize(b, "super", e.Method.Lexeme)
	}
}

func printStmt(b *strings.Builder, stmt Stmt) {
	switch s := stmt.(type) {
	case *Expression:
		parenthesize(b, ";", s.Expression)
	case *Print:
		parenthesize(b, "print", s.Expression)
	case *Var:
		if s.Initializer == nil {
			parenthesize(b, "var", s.Name.Lexeme)
		} else {
			parenthesize(b, "var", s.Name.Lexeme, "=", s.Initializer)
		}
	case *Block:
		parts := make([]interface{}, len(s.Statements))
		for i, st := range s.Statements {
			parts[i] = st
		}
		parenthesize(b, "block", parts...)
	case *If:
		if s.ElseBranch == nil {
			parenthesize(b, "if", s.Condition, s.ThenBranch)
		} else {
			parenthesize(b, "if-else", s.Condition, s.ThenBranch, s.ElseBranch)
		}
	case *While:
		parenthesize(b, "while", s.Condition, s.Body)
	case *Function:
		parts := []interface{}{s.Name.Lexeme, "(" + paramList(s) + ")"}
		for _, st := range s.Body {
			parts = append(parts, st)
		}
		parenthesize(b, "fun", parts...)
	case *Return:
		parenthesize(b, "return", s.Value)
	case *Class:
		parts := []interface{}{s.Name.Lexeme}
		if s.Superclass != nil {
			parts = append(parts, "<", s.Superclass.Name.Lexeme)
		}
		for _, m := range s.Methods {
			parts = append(parts, m)
		}
		parenthesize(b, "class", parts...)
	}
}

func paramList(f *Function) string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, " ")
}

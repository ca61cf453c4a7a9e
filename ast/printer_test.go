package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/golox"
)

func tok(kind golox.TokType, lexeme string) golox.Token {
	return golox.Token{Kind: kind, Lexeme: lexeme, Line: 1}
}

func TestPrintExpr(t *testing.T) {
	expr := &Binary{
		Left:     &Unary{Operator: tok(golox.Minus, "-"), Right: &Literal{Value: 123.0}},
		Operator: tok(golox.Star, "*"),
		Right:    &Grouping{Expression: &Literal{Value: 45.67}},
	}
	if got := Sprint(expr); got != "(* (- 123) (group 45.67))" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestPrintStmt(t *testing.T) {
	fn := &Function{
		Name:   tok(golox.Identifier, "f"),
		Params: []golox.Token{tok(golox.Identifier, "a"), tok(golox.Identifier, "b")},
		Body: []Stmt{&Return{
			Keyword: tok(golox.Return, "return"),
			Value: &Binary{
				Left:     &Variable{Name: tok(golox.Identifier, "a")},
				Operator: tok(golox.Plus, "+"),
				Right:    &Variable{Name: tok(golox.Identifier, "b")},
			},
		}},
	}
	if got := Sprint(fn); got != "(fun f (a b) (return (+ a b)))" {
		t.Errorf("unexpected rendering %q", got)
	}
	v := &Var{Name: tok(golox.Identifier, "s"), Initializer: &Literal{Value: "x"}}
	if got := Sprint(v); got != `(var s = "x")` {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestLeveled(t *testing.T) {
	stmts := []Stmt{
		&Class{
			Name:       tok(golox.Identifier, "B"),
			Superclass: &Variable{Name: tok(golox.Identifier, "A")},
			Methods: []*Function{{
				Name: tok(golox.Identifier, "m"),
				Body: []Stmt{&Print{Expression: &Super{
					Keyword: tok(golox.Super, "super"),
					Method:  tok(golox.Identifier, "m"),
				}}},
			}},
		},
	}
	want := []Line{
		{0, "class B < A"},
		{1, "fun m()"},
		{2, "print"},
		{3, "super.m"},
	}
	if diff := cmp.Diff(want, Leveled(stmts)); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

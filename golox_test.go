package golox

import (
	"errors"
	"testing"
)

func TestErrorLocation(t *testing.T) {
	tok := Token{Kind: Identifier, Lexeme: "x", Line: 3}
	if got := ErrorAt(ParseError, tok, "Expect ';' after value.").Error(); got != "[line: 3] Error at 'x': Expect ';' after value." {
		t.Errorf("unexpected message %q", got)
	}
	eof := Token{Kind: EOF, Line: 4}
	if got := ErrorAt(ParseError, eof, "Expect expression.").Error(); got != "[line: 4] Error at end: Expect expression." {
		t.Errorf("unexpected message %q", got)
	}
	if got := NewError(RuntimeError, 1, "Operands must be numbers.").Error(); got != "[line: 1] Error: Operands must be numbers." {
		t.Errorf("unexpected message %q", got)
	}
}

func TestErrorsList(t *testing.T) {
	var errs Errors
	if errs.Err() != nil {
		t.Errorf("empty error list should be nil error")
	}
	errs = append(errs, NewError(ResolveError, 1, "a"), NewError(ResolveError, 2, "b"))
	err := errs.Err()
	var list Errors
	if !errors.As(err, &list) || len(list) != 2 {
		t.Fatalf("expected error list of length 2, got %v", err)
	}
	if !list.Kind().Static() {
		t.Errorf("resolve errors are static errors")
	}
	if err.Error() != "[line: 1] Error: a\n[line: 2] Error: b" {
		t.Errorf("unexpected rendering %q", err.Error())
	}
}

func TestTokTypeString(t *testing.T) {
	if Keywords["while"] != While || While.String() != "while" {
		t.Errorf("keyword table out of sync with token names")
	}
	if BangEqual.String() != "!=" {
		t.Errorf("expected '!=', got %q", BangEqual.String())
	}
}

package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/golox"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func kinds(tokens []golox.Token) []golox.TokType {
	k := make([]golox.TokType, len(tokens))
	for i, t := range tokens {
		k[i] = t.Kind
	}
	return k
}

func TestOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.scanner")
	defer teardown()
	//
	tokens, err := Scan("( ) { } , . - + ; / * ! != = == > >= < <=", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []golox.TokType{
		golox.LeftParen, golox.RightParen, golox.LeftBrace, golox.RightBrace,
		golox.Comma, golox.Dot, golox.Minus, golox.Plus, golox.Semicolon,
		golox.Slash, golox.Star, golox.Bang, golox.BangEqual, golox.Equal,
		golox.EqualEqual, golox.Greater, golox.GreaterEqual, golox.Less,
		golox.LessEqual, golox.EOF,
	}
	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjacentOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.scanner")
	defer teardown()
	//
	tokens, _ := Scan("!===<=>", nil)
	want := []golox.TokType{golox.BangEqual, golox.EqualEqual, golox.LessEqual,
		golox.Greater, golox.EOF}
	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.scanner")
	defer teardown()
	//
	tokens, _ := Scan("var classy = class; _x1 While while", nil)
	want := []golox.TokType{golox.Var, golox.Identifier, golox.Equal, golox.Class,
		golox.Semicolon, golox.Identifier, golox.Identifier, golox.While, golox.EOF}
	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if tokens[1].Lexeme != "classy" {
		t.Errorf("expected lexeme 'classy', got %q", tokens[1].Lexeme)
	}
}

func TestLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.scanner")
	defer teardown()
	//
	tokens, err := Scan(`12 3.25 "hello" 7.`, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{12.0, 3.25, "hello", 7.0, nil, nil}
	got := make([]interface{}, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Literal
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("literals mismatch (-want +got):\n%s", diff)
	}
	// a trailing dot is not part of the number
	if tokens[3].Kind != golox.Number || tokens[4].Kind != golox.Dot {
		t.Errorf("expected 7 followed by '.', got %v", tokens)
	}
}

func TestLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.scanner")
	defer teardown()
	//
	source := "a // comment\nb\n\"multi\nline\" c\n"
	tokens, err := Scan(source, nil)
	if err != nil {
		t.Fatal(err)
	}
	lines := make([]int, len(tokens))
	for i, tok := range tokens {
		lines[i] = tok.Line
	}
	if diff := cmp.Diff([]int{1, 2, 4, 4, 5}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestUniqueIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.scanner")
	defer teardown()
	//
	first, _ := Scan("x x", nil)
	second, _ := Scan("x", nil)
	seen := map[golox.TokenID]bool{}
	for _, tok := range append(first, second...) {
		if seen[tok.ID] {
			t.Fatalf("token ID %d handed out twice", tok.ID)
		}
		seen[tok.ID] = true
	}
}

func TestDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.scanner")
	defer teardown()
	//
	var reported []string
	tokens, err := Scan("a @ b\n\"open\nstring", func(e error) {
		reported = append(reported, e.Error())
	})
	if err == nil {
		t.Fatalf("expected scan errors")
	}
	want := []string{
		"[line: 1] Error: Unexpected character.",
		"[line: 3] Error: Unterminated string.",
	}
	if diff := cmp.Diff(want, reported); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	// scanning continues: a, b, EOF
	if diff := cmp.Diff([]golox.TokType{golox.Identifier, golox.Identifier, golox.EOF}, kinds(tokens)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

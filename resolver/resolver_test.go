package resolver

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/parser"
	"github.com/npillmayer/golox/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// bindings records resolutions as "name@line:distance".
type bindings []string

func (b *bindings) Resolve(name golox.Token, distance int) {
	*b = append(*b, fmt.Sprintf("%s@%d:%d", name.Lexeme, name.Line, distance))
}

func resolve(t *testing.T, source string) (bindings, []string) {
	t.Helper()
	tokens, err := scanner.Scan(source, nil)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	stmts, err := parser.Parse(tokens, nil)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var b bindings
	var reported []string
	r := New(&b)
	r.SetErrorHandler(func(e error) {
		reported = append(reported, e.Error())
	})
	if err = r.Resolve(stmts); (err != nil) != (len(reported) > 0) {
		t.Errorf("error result %v does not match reported diagnostics %v", err, reported)
	}
	return b, reported
}

func TestLocalDistances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	source := `var g = 0;
{
  var a = 1;
  {
    print a;
    print g;
  }
}
fun f(x) {
  return x;
}`
	b, reported := resolve(t, source)
	if len(reported) > 0 {
		t.Fatalf("unexpected diagnostics %v", reported)
	}
	if diff := cmp.Diff(bindings{"a@5:1", "x@10:0"}, b); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestClosureDistance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	source := `fun outer() {
  var n = 0;
  fun inner() {
    n = n + 1;
    return n;
  }
  return inner;
}`
	b, reported := resolve(t, source)
	if len(reported) > 0 {
		t.Fatalf("unexpected diagnostics %v", reported)
	}
	want := bindings{"n@4:1", "n@4:1", "n@5:1", "inner@7:0"}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestThisAndSuper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	source := `class A { m() { return 1; } }
class B < A {
  m() { return super.m(); }
  n() { return this; }
}`
	b, reported := resolve(t, source)
	if len(reported) > 0 {
		t.Fatalf("unexpected diagnostics %v", reported)
	}
	if diff := cmp.Diff(bindings{"super@3:2", "this@4:1"}, b); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestStaticErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	for _, c := range []struct {
		source string
		want   []string
	}{
		{"{ var a = a; }", []string{"[line: 1] Error: Can't read local variable in its own initializer."}},
		{"var a = a;", []string{"[line: 1] Error: Can't read local variable in its own initializer."}},
		{"var a = 1; { var a = a + 1; }", []string{"[line: 1] Error: Can't read local variable in its own initializer."}},
		{"{ var a = 1; var a = 2; }", []string{"[line: 1] Error: Already a variable with this name in this scope."}},
		{"return 1;", []string{"[line: 1] Error: Can't return from top-level code."}},
		{"class C { init() { return 5; } }", []string{"[line: 1] Error: Can't return a value from an initializer."}},
		{"class C { init() { return nil; } }", []string{"[line: 1] Error: Can't return a value from an initializer."}},
		{"print this;", []string{"[line: 1] Error: Can't use 'this' outside of a class."}},
		{"fun f() { super.g(); }", []string{"[line: 1] Error: Can't use 'super' outside of a class."}},
		{"class C { m() { super.m(); } }", []string{"[line: 1] Error: Can't use 'super' in a class with no superclass."}},
		{"class C < C {}", []string{"[line: 1] Error: A class can't inherit from itself."}},
		// several errors in one pass
		{"return;\nprint this;", []string{
			"[line: 1] Error: Can't return from top-level code.",
			"[line: 2] Error: Can't use 'this' outside of a class.",
		}},
	} {
		_, reported := resolve(t, c.source)
		if diff := cmp.Diff(c.want, reported); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", c.source, diff)
		}
	}
}

func TestAcceptedPrograms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.resolver")
	defer teardown()
	//
	for _, source := range []string{
		"var a = 1; var a = 2;",             // globals may be redeclared
		"var a = 1; { var a = 2; }",         // shadowing in a nested block
		"class C { init() { return; } }",    // bare return in initializer
		"fun f() { fun g() { return 1; } }", // nested functions
		"var f = 1; fun g() { return g; }",  // recursion
	} {
		if _, reported := resolve(t, source); len(reported) > 0 {
			t.Errorf("%q: unexpected diagnostics %v", source, reported)
		}
	}
}

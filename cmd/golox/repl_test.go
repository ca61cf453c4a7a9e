package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSessionKeepsGlobals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.repl")
	defer teardown()
	//
	var out bytes.Buffer
	repl := newSession(&out)
	lines := []string{
		"var a = 1;",
		"fun inc() { a = a + 1; }",
		"inc();",
		"print a;",
		"print nope;", // runtime error does not end the session
		"print a + 1;",
	}
	for _, line := range lines {
		if repl.Eval(line) {
			t.Fatalf("session ended after %q", line)
		}
	}
	if diff := cmp.Diff("2\n3\n", out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	want := []string{"a", "clock", "inc"}
	if diff := cmp.Diff(want, repl.intp.Globals().Names()); diff != "" {
		t.Errorf("globals mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.repl")
	defer teardown()
	//
	var out bytes.Buffer
	repl := newSession(&out)
	for _, line := range []string{"", ":help", ":env", ":ast print 1 + 2;", ":nonsense"} {
		if repl.Eval(line) {
			t.Errorf("command %q should not end the session", line)
		}
	}
	if !repl.Eval("  exit ") {
		t.Errorf("expected 'exit' to end the session")
	}
	if out.Len() > 0 {
		t.Errorf("commands should not produce program output, got %q", out.String())
	}
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.repl")
	defer teardown()
	//
	stmts, err := parse("print 1 + 2;", nil)
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledList(stmts)
	if len(ll) == 0 || ll[0].Level != 0 || ll[0].Text != "print" {
		t.Errorf("expected tree to start with 'print' at level 0, got %v", ll)
	}
}

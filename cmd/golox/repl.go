package main

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/interpreter"
	"github.com/npillmayer/golox/lox"
	"github.com/npillmayer/golox/parser"
	"github.com/npillmayer/golox/scanner"
)

// REPL is an interactive session with a persistent interpreter.
type REPL struct {
	intp *interpreter.Interpreter
	rl   *readline.Instance
	out  io.Writer
}

// NewREPL creates a session reading from the terminal.
func NewREPL() (*REPL, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, err
	}
	repl := newSession(os.Stdout)
	repl.rl = rl
	return repl, nil
}

// newSession creates a session without line editing, writing program
// output to out.
func newSession(out io.Writer) *REPL {
	intp := interpreter.New(interpreter.Output(out))
	intp.SetErrorHandler(func(e error) {
		pterm.Error.Println(e.Error())
	})
	return &REPL{intp: intp, out: out}
}

// Close releases the terminal.
func (repl *REPL) Close() {
	if repl.rl != nil {
		repl.rl.Close()
	}
}

func (repl *REPL) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	source, err := os.ReadFile(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	if err = lox.Run(string(source), repl.intp); err != nil {
		tracer().Errorf("init file %s: %v", filename, err)
	}
}

// Loop reads and evaluates lines until end of input or "exit".
func (repl *REPL) Loop() {
	for {
		line, err := repl.rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if quit := repl.Eval(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval handles one input line. It returns true if the session should end.
// Errors are reported by the interpreter's error handler and do not end
// the session.
func (repl *REPL) Eval(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case line == "exit":
		return true
	case line == ":help":
		repl.help()
	case line == ":env":
		pterm.Info.Println(strings.Join(repl.intp.Globals().Names(), " "))
	case strings.HasPrefix(line, ":ast"):
		repl.showAST(strings.TrimSpace(strings.TrimPrefix(line, ":ast")))
	case strings.HasPrefix(line, ":"):
		pterm.Error.Println("unknown command " + line + ", try :help")
	default:
		err := lox.Run(line, repl.intp)
		tracer().Debugf("%q => %v", line, err)
	}
	return false
}

func (repl *REPL) help() {
	pterm.Info.Println("Enter Lox declarations and statements, e.g. print 1 + 2;")
	pterm.Info.Println(":ast <source>   show the syntax tree of source")
	pterm.Info.Println(":env            list global names")
	pterm.Info.Println("exit            quit (or <ctrl>D)")
}

// showAST parses source and renders its statements as a tree on the
// terminal. Nothing is resolved or run.
func (repl *REPL) showAST(source string) {
	stmts, err := parse(source, repl.intp.Report)
	if err != nil {
		return
	}
	ll := leveledList(stmts)
	if len(ll) == 0 {
		pterm.Info.Println("no statements")
		return
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func parse(source string, report func(error)) ([]ast.Stmt, error) {
	tokens, err := scanner.Scan(source, report)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens, report)
}

// leveledList converts an indented syntax tree listing to pterm's format.
func leveledList(stmts []ast.Stmt) pterm.LeveledList {
	var ll pterm.LeveledList
	for _, line := range ast.Leveled(stmts) {
		ll = append(ll, pterm.LeveledListItem{Level: line.Level, Text: line.Text})
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

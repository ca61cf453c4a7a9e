/*
Package lox runs Lox source text through the complete pipeline:
scanning, parsing, resolution and interpretation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lox

import (
	"errors"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/interpreter"
	"github.com/npillmayer/golox/parser"
	"github.com/npillmayer/golox/resolver"
	"github.com/npillmayer/golox/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.lox'
func tracer() tracing.Trace {
	return tracing.Select("golox.lox")
}

// Exit codes of a run.
const (
	ExitOK      = 0
	ExitUsage   = 64
	ExitStatic  = 65 // scan, parse or resolve error
	ExitRuntime = 70
	ExitIO      = 74
)

// Run executes source with intp. Every error is reported to the
// interpreter's error handler as it is found. Scanning and parsing run to
// the end of the source to find as many errors as possible; if either
// reported errors, the program is neither resolved nor executed. The
// returned error is nil, a golox.Errors list of static errors, or a
// *golox.Error of kind golox.RuntimeError.
func Run(source string, intp *interpreter.Interpreter) error {
	tokens, scanErr := scanner.Scan(source, intp.Report)
	var static golox.Errors
	if !collect(&static, scanErr) {
		return scanErr
	}
	stmts, parseErr := parser.Parse(tokens, intp.Report)
	collect(&static, parseErr)
	if len(static) > 0 {
		return static
	}
	r := resolver.New(intp)
	r.SetErrorHandler(intp.Report)
	if err := r.Resolve(stmts); err != nil {
		return err
	}
	if err := intp.Interpret(stmts); err != nil {
		intp.Report(err)
		return err
	}
	tracer().Debugf("run of %d statements complete", len(stmts))
	return nil
}

// collect appends the diagnostics of a stage to list. It returns false
// for errors which are not diagnostics.
func collect(list *golox.Errors, err error) bool {
	if err == nil {
		return true
	}
	var errs golox.Errors
	if errors.As(err, &errs) {
		*list = append(*list, errs...)
		return true
	}
	return false
}

// ExitCode maps the result of Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var e *golox.Error
	if errors.As(err, &e) {
		if e.Kind.Static() {
			return ExitStatic
		}
		return ExitRuntime
	}
	var errs golox.Errors
	if errors.As(err, &errs) && errs.Kind().Static() {
		return ExitStatic
	}
	return ExitRuntime
}

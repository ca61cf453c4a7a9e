/*
Package interpreter evaluates Lox programs by walking their syntax tree.

The interpreter keeps a chain of environments (see package runtime), starting
at the globals, which are seeded with native functions. Local variables are
looked up at the binding distance the resolver computed; unresolved names are
looked up in the globals.

Values

Lox values are represented as Go values:

    nil               nil
    boolean           bool
    number            float64
    string            string
    function          *Function, *Native
    class             *Class
    instance          *Instance

Errors

Run time errors are returned as *golox.Error of kind golox.RuntimeError and
abort the current call to Interpret. A 'return' statement is not an error: it
travels as a signal through statement execution and is consumed at the
boundary of the function call.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interpreter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.interpreter'
func tracer() tracing.Trace {
	return tracing.Select("golox.interpreter")
}

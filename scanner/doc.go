/*
Package scanner implements the tokenizer for Lox.

The scanner is built on lexmachine: Lox token patterns are compiled into a
DFA once, then every scan runs the DFA over the input. Diagnostics (unexpected
characters, unterminated strings) are reported to an error handler and
scanning continues past the offending input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.scanner'
func tracer() tracing.Trace {
	return tracing.Select("golox.scanner")
}

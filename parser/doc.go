/*
Package parser implements a recursive-descent parser for Lox.

There is one production per precedence level, lowest to highest:

    assignment → or → and → equality → comparison → term → factor → unary → call → primary

A syntax error aborts the current declaration only. The parser reports the
error, discards tokens up to the next statement boundary and resumes, so
several independent errors are found in one pass.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.parser'
func tracer() tracing.Trace {
	return tracing.Select("golox.parser")
}

/*
Package resolver implements the static resolution pass of Lox.

The resolver walks the syntax tree once, before execution. For every
reference to a local variable it computes the number of scopes between the
reference and the declaration and records it with a Binder (usually the
interpreter). References it cannot find in any enclosing scope are left
unresolved and are looked up in the globals at run time.

The resolver also reports static errors: duplicate declarations in a scope,
reading a variable in its own initializer, and misplaced 'return', 'this'
and 'super'. Resolution continues after an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resolver

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.resolver'
func tracer() tracing.Trace {
	return tracing.Select("golox.resolver")
}

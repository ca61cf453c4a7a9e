/*
Package golox is a tree-walking interpreter for Lox, a small dynamically
typed scripting language with closures, classes and single inheritance.

Source text flows through a pipeline of packages:

■ scanner: Package scanner splits source text into tokens.

■ parser: Package parser builds an abstract syntax tree (see package ast)
from a token sequence, recovering from syntax errors at statement boundaries.

■ resolver: Package resolver computes, for every local variable reference,
the number of lexical scopes between reference and declaration.

■ interpreter: Package interpreter evaluates the tree, driven by the resolver's
binding distances, and implements functions, classes and instances.

■ runtime: Package runtime provides symbol tables, static scopes and the
chain of runtime environments.

■ lox: Package lox ties the stages together.

The base package contains data types which are used throughout all the other
packages: tokens and the error type shared by all stages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package golox

/*
Package ast defines the abstract syntax tree of Lox.

Expressions and statements are closed families of node types: every node
implements either Expr or Stmt, and no type outside this package can.
Passes over the tree (resolution, evaluation, printing) switch over
the node types.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

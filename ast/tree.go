package ast

// Line is an entry of an indented tree listing.
type Line struct {
	Level int
	Text  string
}

// Leveled flattens a statement list into an indented listing, one node
// per line, suitable for tree displays.
func Leveled(stmts []Stmt) []Line {
	var ll []Line
	for _, s := range stmts {
		ll = leveledStmt(s, ll, 0)
	}
	return ll
}

func leveledStmt(stmt Stmt, ll []Line, level int) []Line {
	switch s := stmt.(type) {
	case *Expression:
		ll = append(ll, Line{level, "expression"})
		ll = leveledExpr(s.Expression, ll, level+1)
	case *Print:
		ll = append(ll, Line{level, "print"})
		ll = leveledExpr(s.Expression, ll, level+1)
	case *Var:
		ll = append(ll, Line{level, "var " + s.Name.Lexeme})
		if s.Initializer != nil {
			ll = leveledExpr(s.Initializer, ll, level+1)
		}
	case *Block:
		ll = append(ll, Line{level, "block"})
		for _, st := range s.Statements {
			ll = leveledStmt(st, ll, level+1)
		}
	case *If:
		ll = append(ll, Line{level, "if"})
		ll = leveledExpr(s.Condition, ll, level+1)
		ll = leveledStmt(s.ThenBranch, ll, level+1)
		if s.ElseBranch != nil {
			ll = append(ll, Line{level, "else"})
			ll = leveledStmt(s.ElseBranch, ll, level+1)
		}
	case *While:
		ll = append(ll, Line{level, "while"})
		ll = leveledExpr(s.Condition, ll, level+1)
		ll = leveledStmt(s.Body, ll, level+1)
	case *Function:
		ll = append(ll, Line{level, "fun " + s.Name.Lexeme + "(" + paramList(s) + ")"})
		for _, st := range s.Body {
			ll = leveledStmt(st, ll, level+1)
		}
	case *Return:
		ll = append(ll, Line{level, "return"})
		ll = leveledExpr(s.Value, ll, level+1)
	case *Class:
		text := "class " + s.Name.Lexeme
		if s.Superclass != nil {
			text += " < " + s.Superclass.Name.Lexeme
		}
		ll = append(ll, Line{level, text})
		for _, m := range s.Methods {
			ll = leveledStmt(m, ll, level+1)
		}
	}
	return ll
}

func leveledExpr(expr Expr, ll []Line, level int) []Line {
	switch e := expr.(type) {
	case *Literal:
		ll = append(ll, Line{level, LiteralString(e.Value)})
	case *Grouping:
		ll = append(ll, Line{level, "group"})
		ll = leveledExpr(e.Expression, ll, level+1)
	case *Unary:
		ll = append(ll, Line{level, e.Operator.Lexeme})
		ll = leveledExpr(e.Right, ll, level+1)
	case *Binary:
		ll = append(ll, Line{level, e.Operator.Lexeme})
		ll = leveledExpr(e.Left, ll, level+1)
		ll = leveledExpr(e.Right, ll, level+1)
	case *Logical:
		ll = append(ll, Line{level, e.Operator.Lexeme})
		ll = leveledExpr(e.Left, ll, level+1)
		ll = leveledExpr(e.Right, ll, level+1)
	case *Variable:
		ll = append(ll, Line{level, e.Name.Lexeme})
	case *Assign:
		ll = append(ll, Line{level, e.Name.Lexeme + " ="})
		ll = leveledExpr(e.Value, ll, level+1)
	case *Call:
		ll = append(ll, Line{level, "call"})
		ll = leveledExpr(e.Callee, ll, level+1)
		for _, arg := range e.Arguments {
			ll = leveledExpr(arg, ll, level+1)
		}
	case *Get:
		ll = append(ll, Line{level, "." + e.Name.Lexeme})
		ll = leveledExpr(e.Object, ll, level+1)
	case *Set:
		ll = append(ll, Line{level, "." + e.Name.Lexeme + " ="})
		ll = leveledExpr(e.Object, ll, level+1)
		ll = leveledExpr(e.Value, ll, level+1)
	case *This:
		ll = append(ll, Line{level, "this"})
	case *Super:
		ll = append(ll, Line{level, "super." + e.Method.Lexeme})
	}
	return ll
}

package parser

import (
	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
)

// MaxArgs is the maximum number of parameters of a function and of
// arguments of a call.
const MaxArgs = 255

// Parser is a recursive-descent parser over a token sequence.
type Parser struct {
	tokens  []golox.Token
	current int
	Error   func(error)
	errors  golox.Errors
}

// New creates a parser for a token sequence as produced by the scanner.
func New(tokens []golox.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != golox.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens, golox.Token{Kind: golox.EOF, Line: line})
	}
	return &Parser{tokens: tokens, Error: logError}
}

// SetErrorHandler sets an error handler for the parser.
func (p *Parser) SetErrorHandler(h func(error)) {
	if h == nil {
		p.Error = logError
		return
	}
	p.Error = h
}

// Parse parses a program. It returns the statements it could parse and, if
// any syntax errors were reported, a golox.Errors list.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	tracer().Infof("parsed %d statements, %d errors", len(stmts), len(p.errors))
	return stmts, p.errors.Err()
}

// Parse is a shortcut to parse a token sequence, reporting syntax errors
// to h (which may be nil).
func Parse(tokens []golox.Token, h func(error)) ([]ast.Stmt, error) {
	p := New(tokens)
	p.SetErrorHandler(h)
	return p.Parse()
}

// --- Declarations ----------------------------------------------------------

// declaration returns nil after a syntax error, having synchronized
// to the next statement boundary.
func (p *Parser) declaration() ast.Stmt {
	stmt, err := p.declarationOrError()
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) declarationOrError() (ast.Stmt, error) {
	switch {
	case p.match(golox.Class):
		return p.classDeclaration()
	case p.match(golox.Fun):
		fn, err := p.function("function")
		if err != nil {
			return nil, err
		}
		return fn, nil
	case p.match(golox.Var):
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(golox.Identifier, "Expect class name.")
	if err != nil {
		return nil, err
	}
	class := &ast.Class{Name: name}
	if p.match(golox.Less) {
		if _, err = p.consume(golox.Identifier, "Expect superclass name."); err != nil {
			return nil, err
		}
		class.Superclass = &ast.Variable{Name: p.previous()}
	}
	if _, err = p.consume(golox.LeftBrace, "Expect '{' before class body."); err != nil {
		return nil, err
	}
	for !p.check(golox.RightBrace) && !p.isAtEnd() {
		method, err := p.function("method")
		if err != nil {
			return nil, err
		}
		class.Methods = append(class.Methods, method)
	}
	if _, err = p.consume(golox.RightBrace, "Expect '}' after class body."); err != nil {
		return nil, err
	}
	return class, nil
}

// function parses a function declaration after 'fun', or a method. kind is
// used in error messages.
func (p *Parser) function(kind string) (*ast.Function, error) {
	name, err := p.consume(golox.Identifier, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(golox.LeftParen, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}
	fn := &ast.Function{Name: name}
	if !p.check(golox.RightParen) {
		for {
			if len(fn.Params) >= MaxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(golox.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, param)
			if !p.match(golox.Comma) {
				break
			}
		}
	}
	if _, err = p.consume(golox.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err = p.consume(golox.LeftBrace, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}
	if fn.Body, err = p.block(); err != nil {
		return nil, err
	}
	tracer().Debugf("%s %s/%d", kind, name.Lexeme, len(fn.Params))
	return fn, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(golox.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	decl := &ast.Var{Name: name}
	if p.match(golox.Equal) {
		if decl.Initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(golox.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return decl, nil
}

// --- Statements ------------------------------------------------------------

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(golox.For):
		return p.forStatement()
	case p.match(golox.If):
		return p.ifStatement()
	case p.match(golox.Print):
		return p.printStatement()
	case p.match(golox.Return):
		return p.returnStatement()
	case p.match(golox.While):
		return p.whileStatement()
	case p.match(golox.LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Statements: stmts}, nil
	}
	return p.expressionStatement()
}

// forStatement desugars
//
//    for (init; cond; incr) body
//
// into
//
//    { init; while (cond) { body; incr; } }
//
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(golox.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}
	var initializer ast.Stmt
	var err error
	switch {
	case p.match(golox.Semicolon):
	case p.match(golox.Var):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}
	var condition, increment ast.Expr
	if !p.check(golox.Semicolon) {
		if condition, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(golox.Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}
	if !p.check(golox.RightParen) {
		if increment, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(golox.RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.While{Condition: condition, Body: body}
	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}
	return body, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(golox.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(golox.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	stmt := &ast.If{Condition: condition}
	if stmt.ThenBranch, err = p.statement(); err != nil {
		return nil, err
	}
	if p.match(golox.Else) {
		if stmt.ElseBranch, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(golox.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{Expression: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	stmt := &ast.Return{Keyword: p.previous()}
	var err error
	if p.check(golox.Semicolon) {
		stmt.Value = &ast.Literal{Value: nil}
	} else if stmt.Value, err = p.expression(); err != nil {
		return nil, err
	} else {
		stmt.HasValue = true
	}
	if _, err = p.consume(golox.Semicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(golox.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(golox.RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: condition, Body: body}, nil
}

// block parses the statements after '{'. Declarations inside the block
// recover from syntax errors on their own.
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(golox.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.consume(golox.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(golox.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.Expression{Expression: expr}, nil
}

// --- Error recovery --------------------------------------------------------

// synchronize discards tokens until it is probably at a statement boundary.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == golox.Semicolon {
			return
		}
		switch p.peek().Kind {
		case golox.Class, golox.Fun, golox.Var, golox.For, golox.If,
			golox.While, golox.Print, golox.Return:
			return
		}
		p.advance()
	}
}

func (p *Parser) errorAt(tok golox.Token, msg string) error {
	err := golox.ErrorAt(golox.ParseError, tok, msg)
	p.errors = append(p.errors, err)
	p.Error(err)
	return err
}

func logError(e error) {
	tracer().Errorf("syntax error: " + e.Error())
}

// --- Token stream ----------------------------------------------------------

func (p *Parser) match(kinds ...golox.TokType) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind golox.TokType, msg string) (golox.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return golox.Token{}, p.errorAt(p.peek(), msg)
}

func (p *Parser) check(kind golox.TokType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() golox.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == golox.EOF
}

func (p *Parser) peek() golox.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() golox.Token {
	return p.tokens[p.current-1]
}

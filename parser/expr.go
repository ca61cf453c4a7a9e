package parser

import (
	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
)

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment is right-associative. The left-hand side is parsed as an
// ordinary expression and converted into a target afterwards.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(golox.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}, nil
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
		}
		return nil, p.errorAt(equals, "Invalid assignment target.")
	}
	return expr, nil
}

// operatorLevel parses a left-associative level of binary operators.
func (p *Parser) operatorLevel(next func() (ast.Expr, error),
	build func(ast.Expr, golox.Token, ast.Expr) ast.Expr,
	operators ...golox.TokType) (ast.Expr, error) {
	//
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = build(expr, op, right)
	}
	return expr, nil
}

func binary(left ast.Expr, op golox.Token, right ast.Expr) ast.Expr {
	return &ast.Binary{Left: left, Operator: op, Right: right}
}

func logical(left ast.Expr, op golox.Token, right ast.Expr) ast.Expr {
	return &ast.Logical{Left: left, Operator: op, Right: right}
}

func (p *Parser) or() (ast.Expr, error) {
	return p.operatorLevel(p.and, logical, golox.Or)
}

func (p *Parser) and() (ast.Expr, error) {
	return p.operatorLevel(p.equality, logical, golox.And)
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.operatorLevel(p.comparison, binary, golox.BangEqual, golox.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.operatorLevel(p.term, binary,
		golox.Greater, golox.GreaterEqual, golox.Less, golox.LessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.operatorLevel(p.factor, binary, golox.Minus, golox.Plus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.operatorLevel(p.unary, binary, golox.Slash, golox.Star)
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(golox.Bang, golox.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		if p.match(golox.LeftParen) {
			if expr, err = p.finishCall(expr); err != nil {
				return nil, err
			}
		} else if p.match(golox.Dot) {
			name, err := p.consume(golox.Identifier, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		} else {
			break
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(golox.RightParen) {
		for {
			if len(args) >= MaxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(golox.Comma) {
				break
			}
		}
	}
	paren, err := p.consume(golox.RightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(golox.False):
		return &ast.Literal{Value: false}, nil
	case p.match(golox.True):
		return &ast.Literal{Value: true}, nil
	case p.match(golox.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.match(golox.Number, golox.String):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(golox.Super):
		keyword := p.previous()
		if _, err := p.consume(golox.Dot, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(golox.Identifier, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(golox.This):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(golox.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(golox.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err = p.consume(golox.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	}
	return nil, p.errorAt(p.peek(), "Expect expression.")
}

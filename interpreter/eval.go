package interpreter

import (
	"fmt"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
)

func (intp *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return intp.evaluate(e.Expression)
	case *ast.Unary:
		return intp.evalUnary(e)
	case *ast.Binary:
		return intp.evalBinary(e)
	case *ast.Logical:
		left, err := intp.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Kind == golox.Or {
			if IsTruthy(left) {
				return left, nil
			}
		} else if !IsTruthy(left) {
			return left, nil
		}
		return intp.evaluate(e.Right)
	case *ast.Variable:
		return intp.lookUpVariable(e.Name)
	case *ast.Assign:
		value, err := intp.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := intp.locals[e.Name.ID]; ok {
			if intp.env.AssignAt(dist, e.Name.Lexeme, value) {
				return value, nil
			}
		} else if intp.globals.Assign(e.Name.Lexeme, value) {
			return value, nil
		}
		return nil, undefinedVariable(e.Name)
	case *ast.Call:
		return intp.evalCall(e)
	case *ast.Get:
		object, err := intp.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := object.(*Instance)
		if !ok {
			return nil, runtimeError(e.Name, "Only instances have properties.")
		}
		return inst.Get(e.Name)
	case *ast.Set:
		object, err := intp.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := object.(*Instance)
		if !ok {
			return nil, runtimeError(e.Name, "Only instances have fields.")
		}
		value, err := intp.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name, value)
		return value, nil
	case *ast.This:
		return intp.lookUpVariable(e.Keyword)
	case *ast.Super:
		return intp.evalSuper(e)
	}
	return nil, golox.NewError(golox.RuntimeError, 0, fmt.Sprintf("cannot evaluate expression of type %T", expr))
}

func (intp *Interpreter) lookUpVariable(name golox.Token) (Value, error) {
	var v Value
	var found bool
	if dist, ok := intp.locals[name.ID]; ok {
		v, found = intp.env.GetAt(dist, name.Lexeme)
	} else {
		v, found = intp.globals.Get(name.Lexeme)
	}
	if !found {
		return nil, undefinedVariable(name)
	}
	return v, nil
}

func undefinedVariable(name golox.Token) error {
	return runtimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

func (intp *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := intp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case golox.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case golox.Bang:
		return !IsTruthy(right), nil
	}
	return nil, runtimeError(e.Operator, "Unknown unary operator.")
}

func (intp *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := intp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := intp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case golox.EqualEqual:
		return IsEqual(left, right), nil
	case golox.BangEqual:
		return !IsEqual(left, right), nil
	case golox.Plus:
		switch l := left.(type) {
		case float64:
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		case string:
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, runtimeError(e.Operator, "Operands must be numbers or strings.")
	}
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, runtimeError(e.Operator, "Operands must be numbers.")
	}
	switch e.Operator.Kind {
	case golox.Minus:
		return l - r, nil
	case golox.Star:
		return l * r, nil
	case golox.Slash:
		return l / r, nil
	case golox.Greater:
		return l > r, nil
	case golox.GreaterEqual:
		return l >= r, nil
	case golox.Less:
		return l < r, nil
	case golox.LessEqual:
		return l <= r, nil
	}
	return nil, runtimeError(e.Operator, "Unknown binary operator.")
}

func (intp *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := intp.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]Value, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		v, err := intp.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeError(e.Paren,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	return intp.call(fn, e.Paren, args)
}

// evalSuper looks up a method starting at the superclass bound where the
// method containing 'super' was defined, and binds it to 'this'.
func (intp *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	dist, ok := intp.locals[e.Keyword.ID]
	if !ok {
		return nil, runtimeError(e.Keyword, "Can't use 'super' outside of a class.")
	}
	v, _ := intp.env.GetAt(dist, "super")
	superclass, ok := v.(*Class)
	if !ok {
		return nil, runtimeError(e.Keyword, "Superclass must be a class.")
	}
	v, _ = intp.env.GetAt(dist-1, "this")
	object, ok := v.(*Instance)
	if !ok {
		return nil, runtimeError(e.Keyword, "Can't use 'super' outside of a class.")
	}
	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, runtimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(object), nil
}

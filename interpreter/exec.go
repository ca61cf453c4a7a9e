package interpreter

import (
	"fmt"

	"github.com/npillmayer/golox"
	"github.com/npillmayer/golox/ast"
	"github.com/npillmayer/golox/runtime"
)

// signal is the outcome of executing a statement. A returning signal
// unwinds statement execution up to the enclosing function call.
type signal struct {
	returning bool
	value     Value
}

var proceed = signal{}

func (intp *Interpreter) execute(stmt ast.Stmt) (signal, error) {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := intp.evaluate(s.Expression)
		return proceed, err
	case *ast.Print:
		v, err := intp.evaluate(s.Expression)
		if err != nil {
			return proceed, err
		}
		_, err = fmt.Fprintln(intp.out, Stringify(v))
		return proceed, err
	case *ast.Var:
		var value Value
		if s.Initializer != nil {
			v, err := intp.evaluate(s.Initializer)
			if err != nil {
				return proceed, err
			}
			value = v
		}
		intp.env.Define(s.Name.Lexeme, value)
		return proceed, nil
	case *ast.Block:
		return intp.executeBlock(s.Statements, runtime.NewEnvironment("block", intp.env))
	case *ast.If:
		cond, err := intp.evaluate(s.Condition)
		if err != nil {
			return proceed, err
		}
		if IsTruthy(cond) {
			return intp.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			return intp.execute(s.ElseBranch)
		}
		return proceed, nil
	case *ast.While:
		for {
			cond, err := intp.evaluate(s.Condition)
			if err != nil {
				return proceed, err
			}
			if !IsTruthy(cond) {
				return proceed, nil
			}
			if sig, err := intp.execute(s.Body); err != nil || sig.returning {
				return sig, err
			}
		}
	case *ast.Function:
		fn := NewFunction(s, intp.env, false)
		intp.env.Define(s.Name.Lexeme, fn)
		return proceed, nil
	case *ast.Return:
		v, err := intp.evaluate(s.Value)
		if err != nil {
			return proceed, err
		}
		return signal{returning: true, value: v}, nil
	case *ast.Class:
		return proceed, intp.executeClass(s)
	}
	return proceed, golox.NewError(golox.RuntimeError, 0, fmt.Sprintf("cannot execute statement of type %T", stmt))
}

// executeBlock executes statements in env and restores the current
// environment afterwards, whatever the outcome.
func (intp *Interpreter) executeBlock(stmts []ast.Stmt, env *runtime.Environment) (signal, error) {
	previous := intp.env
	intp.env = env
	defer func() {
		intp.env = previous
	}()
	for _, stmt := range stmts {
		if sig, err := intp.execute(stmt); err != nil || sig.returning {
			return sig, err
		}
	}
	return proceed, nil
}

func (intp *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := intp.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return runtimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}
	intp.env.Define(s.Name.Lexeme, nil)
	if superclass != nil {
		intp.env = runtime.NewEnvironment("super", intp.env)
		intp.env.Define("super", superclass)
	}
	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, intp.env, m.Name.Lexeme == "init")
	}
	class := NewClass(s.Name.Lexeme, superclass, methods)
	if superclass != nil {
		intp.env = intp.env.Parent
	}
	intp.env.AssignAt(0, s.Name.Lexeme, class)
	tracer().Debugf("defined class %s", class.Name)
	return nil
}

package interpreter

import (
	"github.com/npillmayer/golox"
)

// Class is a Lox class. Classes are never modified after creation.
type Class struct {
	Name       string
	Superclass *Class
	methods    map[string]*Function
}

// NewClass creates a class.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, methods: methods}
}

// FindMethod looks up a method, walking up the superclass chain.
func (c *Class) FindMethod(name string) *Function {
	for cl := c; cl != nil; cl = cl.Superclass {
		if m, ok := cl.methods[name]; ok {
			return m
		}
	}
	return nil
}

func (c *Class) String() string {
	return c.Name
}

// Arity is the arity of the initializer, or 0.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call creates a new instance and runs the initializer on it.
func (c *Class) Call(intp *Interpreter, args []Value) (Value, error) {
	inst := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(inst).Call(intp, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// --- Instances -------------------------------------------------------------

// Instance is an instance of a Lox class.
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance creates an instance without fields.
func NewInstance(c *Class) *Instance {
	return &Instance{class: c, fields: make(map[string]Value)}
}

// Class returns the class of an instance.
func (inst *Instance) Class() *Class {
	return inst.class
}

// Get reads a property. Fields shadow methods.
func (inst *Instance) Get(name golox.Token) (Value, error) {
	if v, ok := inst.fields[name.Lexeme]; ok {
		return v, nil
	}
	if m := inst.class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(inst), nil
	}
	return nil, runtimeError(name, "Undefined property '"+name.Lexeme+"'.")
}

// Set writes a field.
func (inst *Instance) Set(name golox.Token, value Value) {
	inst.fields[name.Lexeme] = value
}

func (inst *Instance) String() string {
	return inst.Class().Name + " instance"
}

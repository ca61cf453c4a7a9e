package runtime

import (
	"fmt"
)

// Environment is a piece of memory for the variables of a scope at run time.
// Environments link to their enclosing environment. They are shared by
// reference: every closure created in an environment keeps it alive.
type Environment struct {
	Name   string
	Parent *Environment
	symtab *SymbolTable
}

// NewEnvironment creates a new environment enclosed by parent, which is
// nil for the globals.
func NewEnvironment(nm string, parent *Environment) *Environment {
	return &Environment{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
}

func (env *Environment) String() string {
	return fmt.Sprintf("<env %s #%d>", env.Name, env.symtab.Size())
}

// IsRoot is a predicate: Is this the global environment?
func (env *Environment) IsRoot() bool {
	return env.Parent == nil
}

// Define binds a name in this environment, replacing an existing binding.
func (env *Environment) Define(name string, value interface{}) {
	tag, _ := env.symtab.DefineTag(name)
	tag.Value = value
	tag.Ready = true
}

// Get looks up a name, walking outwards through the chain of environments.
func (env *Environment) Get(name string) (interface{}, bool) {
	for e := env; e != nil; e = e.Parent {
		if tag := e.symtab.ResolveTag(name); tag != nil {
			return tag.Value, true
		}
	}
	return nil, false
}

// Assign sets an existing binding, walking outwards through the chain of
// environments. It returns false if the name is not bound.
func (env *Environment) Assign(name string, value interface{}) bool {
	for e := env; e != nil; e = e.Parent {
		if tag := e.symtab.ResolveTag(name); tag != nil {
			tag.Value = value
			return true
		}
	}
	return false
}

// Ancestor returns the environment distance links up the chain, or nil.
func (env *Environment) Ancestor(distance int) *Environment {
	e := env
	for i := 0; i < distance && e != nil; i++ {
		e = e.Parent
	}
	return e
}

// GetAt looks up a name in exactly the environment distance links up the chain.
func (env *Environment) GetAt(distance int, name string) (interface{}, bool) {
	e := env.Ancestor(distance)
	if e == nil {
		return nil, false
	}
	tag := e.symtab.ResolveTag(name)
	if tag == nil {
		return nil, false
	}
	return tag.Value, true
}

// AssignAt sets a binding in exactly the environment distance links up the chain.
func (env *Environment) AssignAt(distance int, name string, value interface{}) bool {
	e := env.Ancestor(distance)
	if e == nil {
		return false
	}
	tag := e.symtab.ResolveTag(name)
	if tag == nil {
		return false
	}
	tag.Value = value
	return true
}

// Names lists the names bound in this environment (not its ancestors), sorted.
func (env *Environment) Names() []string {
	return env.symtab.Names()
}

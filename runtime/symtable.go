package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Symbol tables for variables. Symbol tables are attached to scopes during
// static analysis and to environments at run time.
//

// --- Tags -------------------------------------------------------

// Tag is the symbol type stored in symbol tables. A tag is a name together
// with either a run time value or, during static analysis, an initialization
// flag.
//
type Tag struct {
	name  string
	Ready bool        // static analysis: declaration is complete
	Value interface{} // run time value
}

// NewTag creates a new tag.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s' ready=%v>", s.name, s.Ready)
}

// Name returns the name a tag is bound to.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable maps names to tags.
type SymbolTable struct {
	Table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: make(map[string]*Tag)}
}

// ResolveTag returns the tag for tagname, or nil.
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// DefineTag creates a tag for tagname, replacing an existing one. The
// replaced tag, if any, is returned as the second result.
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	old := t.Table[tagname]
	tag := NewTag(tagname)
	t.Table[tagname] = tag
	return tag, old
}

// Size is the number of tags in t.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each calls f for every tag, in no particular order.
func (t *SymbolTable) Each(f func(string, *Tag)) {
	for name, tag := range t.Table {
		f(name, tag)
	}
}

// Names returns the names of all tags in the table, sorted.
func (t *SymbolTable) Names() []string {
	set := treeset.NewWithStringComparator()
	t.Each(func(name string, _ *Tag) {
		set.Add(name)
	})
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

// === Scopes ================================================================

// Scope is a lexical scope seen by static analysis. It links to the scope
// enclosing it.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates an empty scope within parent.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{Name: nm, Parent: parent, symtab: NewSymbolTable()}
}

func (sc *Scope) String() string {
	return fmt.Sprintf("<scope %s #%d>", sc.Name, sc.symtab.Size())
}

// Tags returns the symbol table of a scope.
func (sc *Scope) Tags() *SymbolTable {
	return sc.symtab
}

// DefineTag declares a name in sc, see SymbolTable.DefineTag.
func (sc *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return sc.symtab.DefineTag(tagname)
}

// ResolveTag finds a tag, searching from sc outwards. Returns the tag (or nil)
// and the number of parent links between sc and the scope the tag was found in.
//
func (sc *Scope) ResolveTag(tagname string) (*Tag, int) {
	for dist := 0; sc != nil; dist++ {
		if tag := sc.symtab.ResolveTag(tagname); tag != nil {
			return tag, dist
		}
		sc = sc.Parent
	}
	return nil, -1
}

// ---------------------------------------------------------------------------

// ScopeTree is used as a stack during static analysis. A scope is pushed
// for every block, function body and class body, and popped at its end.
//
type ScopeTree struct {
	ScopeBase *Scope // outermost scope
	ScopeTOS  *Scope // innermost scope
}

// Empty is true if no scope is on the stack.
func (st *ScopeTree) Empty() bool {
	return st.ScopeTOS == nil
}

// Current returns the innermost scope. It panics on an empty stack.
func (st *ScopeTree) Current() *Scope {
	if st.Empty() {
		panic("no current scope: scope stack is empty")
	}
	return st.ScopeTOS
}

// PushNewScope enters a new innermost scope.
func (st *ScopeTree) PushNewScope(nm string) *Scope {
	inner := NewScope(nm, st.ScopeTOS)
	if st.Empty() {
		st.ScopeBase = inner
	}
	st.ScopeTOS = inner
	T().P("scope", nm).Debugf("enter scope")
	return inner
}

// PopScope leaves the innermost scope and returns it.
func (st *ScopeTree) PopScope() *Scope {
	if st.Empty() {
		panic("cannot leave scope: scope stack is empty")
	}
	inner := st.ScopeTOS
	T().P("scope", inner.Name).Debugf("leave scope")
	st.ScopeTOS = inner.Parent
	if st.ScopeTOS == nil {
		st.ScopeBase = nil
	}
	return inner
}

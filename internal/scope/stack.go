// Package scope tracks the visitor's position while walking one file:
// the nested constant path, the method currently being defined, the
// active visibility directive, whether the current context is a
// singleton-class body, and the stack of local-variable environments.
package scope

import (
	"github.com/riseshia/rbtypegraph/internal/registry"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

// Locals maps a local-variable name to the vertex of its most recent
// write. Re-assignment replaces the entry with a new vertex; reads
// already bound to the old vertex are unaffected.
type Locals map[string]*vertex.TypeVertex

// Stack is the visitor's single mutable cursor through lexical context.
// Build one with New, which starts at top level, :public visibility, no
// enclosing method, not inside a singleton class. The zero value has no
// base visibility, singleton or locals level and panics when queried.
type Stack struct {
	constants  []string
	methods    []*registry.Method
	visibility []registry.Visibility
	singleton  []bool
	locals     []Locals
}

// New returns a Stack positioned at the top level with one (empty)
// local environment already pushed, ready for a file's statements.
func New() *Stack {
	return &Stack{
		visibility: []registry.Visibility{registry.Public},
		singleton:  []bool{false},
		locals:     []Locals{make(Locals)},
	}
}

// PushConstant enters a class/module body. qualifiedName is the
// already fully-qualified name the caller resolved for it (a reopened
// `class A::B` does not depend on lexical nesting in Ruby, so the
// visitor computes the full name before pushing rather than this stack
// concatenating bare segments).
func (s *Stack) PushConstant(qualifiedName string) {
	s.constants = append(s.constants, qualifiedName)
}

// PopConstant leaves the innermost class/module body.
func (s *Stack) PopConstant() {
	if len(s.constants) == 0 {
		return
	}
	s.constants = s.constants[:len(s.constants)-1]
}

// CurrentSelfTypeName is the fully qualified name of the enclosing
// constant, or "" at top level. This is the receiver key used for
// MethodRegistry lookups.
func (s *Stack) CurrentSelfTypeName() string {
	if len(s.constants) == 0 {
		return ""
	}
	return s.constants[len(s.constants)-1]
}

// PushMethod enters a method body.
func (s *Stack) PushMethod(m *registry.Method) {
	s.methods = append(s.methods, m)
}

// PopMethod leaves the current method body.
func (s *Stack) PopMethod() {
	if len(s.methods) == 0 {
		return
	}
	s.methods = s.methods[:len(s.methods)-1]
}

// CurrentMethod is the method currently being defined, or nil at the
// top level or inside a class/module body outside any def.
func (s *Stack) CurrentMethod() *registry.Method {
	if len(s.methods) == 0 {
		return nil
	}
	return s.methods[len(s.methods)-1]
}

// PushVisibility enters a new visibility context, e.g. the body of a
// `private` directive's effect on subsequently defined methods.
func (s *Stack) PushVisibility(v registry.Visibility) {
	s.visibility = append(s.visibility, v)
}

// PopVisibility restores the previous visibility context.
func (s *Stack) PopVisibility() {
	if len(s.visibility) <= 1 {
		return
	}
	s.visibility = s.visibility[:len(s.visibility)-1]
}

// CurrentVisibility is the visibility newly defined methods acquire.
func (s *Stack) CurrentVisibility() registry.Visibility {
	return s.visibility[len(s.visibility)-1]
}

// SetVisibility replaces the current visibility context in place,
// matching the `private`/`protected`/`public` bare-directive form that
// changes visibility for the rest of the enclosing body rather than
// opening a new nested scope.
func (s *Stack) SetVisibility(v registry.Visibility) {
	s.visibility[len(s.visibility)-1] = v
}

// PushSingleton enters a `class << self` body, or a singleton-method
// def (`def self.foo`).
func (s *Stack) PushSingleton(v bool) {
	s.singleton = append(s.singleton, v)
}

// PopSingleton leaves a singleton context.
func (s *Stack) PopSingleton() {
	if len(s.singleton) <= 1 {
		return
	}
	s.singleton = s.singleton[:len(s.singleton)-1]
}

// InSingleton reports whether the current context is a singleton-class
// body or singleton-method def.
func (s *Stack) InSingleton() bool {
	return s.singleton[len(s.singleton)-1]
}

// PushLocals opens a fresh local-variable environment, e.g. for a
// method body: locals from the enclosing scope are not visible inside.
func (s *Stack) PushLocals() {
	s.locals = append(s.locals, make(Locals))
}

// PopLocals discards the innermost local-variable environment.
func (s *Stack) PopLocals() {
	if len(s.locals) <= 1 {
		return
	}
	s.locals = s.locals[:len(s.locals)-1]
}

// BindLocal records tv as the most recent write to name in the
// innermost environment.
func (s *Stack) BindLocal(name string, tv *vertex.TypeVertex) {
	s.locals[len(s.locals)-1][name] = tv
}

// LookupLocal returns the most recent write to name in the innermost
// environment.
func (s *Stack) LookupLocal(name string) (*vertex.TypeVertex, bool) {
	tv, ok := s.locals[len(s.locals)-1][name]
	return tv, ok
}

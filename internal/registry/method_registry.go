package registry

import (
	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/rbtype"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

// Visibility mirrors Ruby's three method-visibility levels.
type Visibility int

const (
	Public Visibility = iota
	Private
	Protected
)

// MethodArg is one named, ordered argument vertex of a Method.
type MethodArg struct {
	Name   string
	Vertex *vertex.TypeVertex
}

// Method is identified by (receiver qualified name, name, singleton?).
// A Method with no declaration Paths is dangling and awaits deletion
// by the host.
type Method struct {
	ReceiverName string
	Name         string
	Singleton    bool
	Visibility   Visibility
	Paths        []string
	Node         ast.Node

	Args      []MethodArg
	ReturnTVs []*vertex.TypeVertex

	ArgDeclaredTypes   map[string]rbtype.Type
	DeclaredReturnType rbtype.Type
}

// IsDangling reports whether every declaration site of this method has
// been removed.
func (m *Method) IsDangling() bool {
	return len(m.Paths) == 0
}

// InferArgType returns the declared type if present, else the union of
// inferred types of the named argument vertex's dependencies when
// non-empty (this is how optional parameters acquire their default's
// type), else Any.
func (m *Method) InferArgType(name string) rbtype.Type {
	if t, ok := m.ArgDeclaredTypes[name]; ok {
		return t
	}
	for _, a := range m.Args {
		if a.Name != name {
			continue
		}
		if a.Vertex == nil || len(a.Vertex.Dependencies) == 0 {
			return rbtype.Any{}
		}
		infers := make([]rbtype.Type, len(a.Vertex.Dependencies))
		for i, d := range a.Vertex.Dependencies {
			infers[i] = d.Infer()
		}
		return rbtype.NewUnion(infers)
	}
	return rbtype.Any{}
}

// InferReturnType returns the declared return type if present. Absent
// that, a method whose body yields exactly one return-value vertex
// (no explicit `return` competing with an implicit final value) infers
// straight from that vertex, widened; a body ending in an if/else counts
// as one vertex and infers the If vertex's union. Anything with more
// than one candidate return value needs the external solver's
// flow-sensitive merge and falls back to Any.
func (m *Method) InferReturnType() rbtype.Type {
	if m.DeclaredReturnType != nil {
		return m.DeclaredReturnType
	}
	if len(m.ReturnTVs) == 1 {
		return rbtype.Widen(m.ReturnTVs[0].Infer())
	}
	return rbtype.Any{}
}

type methodKey struct {
	receiver  string
	name      string
	singleton bool
}

// MethodRegistry maps (receiver, name, singleton?) to a Method.
type MethodRegistry struct {
	byKey map[methodKey]*Method
	order []methodKey
}

// NewMethodRegistry returns an empty registry.
func NewMethodRegistry() *MethodRegistry {
	return &MethodRegistry{byKey: make(map[methodKey]*Method)}
}

// Add registers a method declaration. If a method with the same
// (receiverName, name, singleton) key already exists, its paths are
// augmented and the existing Method is returned unchanged otherwise;
// a brand-new declaration creates a fresh Method.
func (r *MethodRegistry) Add(receiverName, name string, node ast.Node, path string, singleton bool, visibility Visibility) *Method {
	key := methodKey{receiver: receiverName, name: name, singleton: singleton}
	if m, ok := r.byKey[key]; ok {
		if path != "" {
			m.Paths = append(m.Paths, path)
		}
		return m
	}
	m := &Method{
		ReceiverName:     receiverName,
		Name:             name,
		Singleton:        singleton,
		Visibility:       visibility,
		Node:             node,
		ArgDeclaredTypes: make(map[string]rbtype.Type),
	}
	if path != "" {
		m.Paths = append(m.Paths, path)
	}
	r.byKey[key] = m
	r.order = append(r.order, key)
	return m
}

// Find looks up a method by its full identity, including visibility.
func (r *MethodRegistry) Find(receiverName, name string, visibility Visibility, singleton bool) (*Method, bool) {
	m, ok := r.byKey[methodKey{receiver: receiverName, name: name, singleton: singleton}]
	if !ok || m.Visibility != visibility {
		return nil, false
	}
	return m, true
}

// FindAny looks up a method by (receiver, name, singleton) regardless
// of visibility; used internally by the visitor for directives like
// `private :name` that need to mutate a method's visibility after the
// fact, and by call resolution when a receiver resolves to a known
// singleton.
func (r *MethodRegistry) FindAny(receiverName, name string, singleton bool) (*Method, bool) {
	m, ok := r.byKey[methodKey{receiver: receiverName, name: name, singleton: singleton}]
	return m, ok
}

// All returns every registered method in first-registration order.
func (r *MethodRegistry) All() []*Method {
	out := make([]*Method, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out
}

// Clear empties the registry.
func (r *MethodRegistry) Clear() {
	r.byKey = make(map[methodKey]*Method)
	r.order = nil
}

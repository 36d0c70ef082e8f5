// Package registry holds the three registries a walk populates: the
// type-vertex registry, the constant registry, and the method
// registry, plus the node registry that lets the visitor re-enter an
// already-visited AST node.
package registry

import "github.com/riseshia/rbtypegraph/internal/vertex"

// TypeVertexRegistry is the insertion-ordered collection of every
// vertex produced while walking one file. Insertion order is a public
// observable: tests assert positional destructuring of All().
type TypeVertexRegistry struct {
	vertices []*vertex.TypeVertex
	nextID   int
}

// NewTypeVertexRegistry returns an empty registry.
func NewTypeVertexRegistry() *TypeVertexRegistry {
	return &TypeVertexRegistry{}
}

// Add allocates a fresh vertex with empty edge sets, assigns it a
// monotonically increasing id, and appends it to the insertion-ordered
// list.
func (r *TypeVertexRegistry) Add(name string, kind vertex.Kind, scope string, payload vertex.Payload) *vertex.TypeVertex {
	v := &vertex.TypeVertex{
		ID:      r.nextID,
		Name:    name,
		Kind:    kind,
		Scope:   scope,
		Payload: payload,
	}
	r.nextID++
	r.vertices = append(r.vertices, v)
	return v
}

// All returns every vertex created so far, in insertion order. The
// returned slice is a copy so callers cannot mutate registry state
// through it.
func (r *TypeVertexRegistry) All() []*vertex.TypeVertex {
	out := make([]*vertex.TypeVertex, len(r.vertices))
	copy(out, r.vertices)
	return out
}

// Clear empties the registry and resets id allocation, as required
// between walks of different files.
func (r *TypeVertexRegistry) Clear() {
	r.vertices = nil
	r.nextID = 0
}

// AddDependency wires parent -> child and the reverse edge, matching
// vertex.AddDependency. It exists on the registry (rather than only as
// a free function) so visitor code can call it through the same
// object it calls Add on.
func (r *TypeVertexRegistry) AddDependency(parent, child *vertex.TypeVertex) {
	vertex.AddDependency(parent, child)
}

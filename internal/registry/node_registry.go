package registry

import (
	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

// NodeRegistry binds AST nodes to the vertex that represents them, keyed
// by the node's own pointer identity. The visitor binds each node it
// builds a vertex for; it never looks a node up during a walk, so a
// node walked twice gets a second vertex and the later binding wins.
type NodeRegistry struct {
	byNode map[ast.Node]*vertex.TypeVertex
}

// NewNodeRegistry returns an empty registry.
func NewNodeRegistry() *NodeRegistry {
	return &NodeRegistry{byNode: make(map[ast.Node]*vertex.TypeVertex)}
}

// Bind associates node with tv. Rebinding an already-bound node
// overwrites the previous association.
func (r *NodeRegistry) Bind(node ast.Node, tv *vertex.TypeVertex) {
	r.byNode[node] = tv
}

// Lookup returns the vertex bound to node, if any.
func (r *NodeRegistry) Lookup(node ast.Node) (*vertex.TypeVertex, bool) {
	tv, ok := r.byNode[node]
	return tv, ok
}

// Clear empties the registry.
func (r *NodeRegistry) Clear() {
	r.byNode = make(map[ast.Node]*vertex.TypeVertex)
}

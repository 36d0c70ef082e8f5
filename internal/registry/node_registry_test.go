package registry

import (
	"testing"

	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

func TestNodeRegistryBindAndLookup(t *testing.T) {
	r := NewNodeRegistry()
	node := &ast.IntegerNode{Value: 1}
	tv := &vertex.TypeVertex{Kind: vertex.KindIntegerLit}
	r.Bind(node, tv)
	got, ok := r.Lookup(node)
	if !ok || got != tv {
		t.Fatalf("Lookup() = %v, %v, want %v, true", got, ok, tv)
	}
}

func TestNodeRegistryLookupMissesUnboundNode(t *testing.T) {
	r := NewNodeRegistry()
	if _, ok := r.Lookup(&ast.IntegerNode{Value: 1}); ok {
		t.Error("Lookup(unbound node) = true, want false")
	}
}

func TestNodeRegistryRebindOverwritesPreviousVertex(t *testing.T) {
	r := NewNodeRegistry()
	node := &ast.IntegerNode{Value: 1}
	first := &vertex.TypeVertex{Kind: vertex.KindIntegerLit}
	second := &vertex.TypeVertex{Kind: vertex.KindStringLit}
	r.Bind(node, first)
	r.Bind(node, second)
	got, _ := r.Lookup(node)
	if got != second {
		t.Errorf("Lookup() after rebind = %v, want %v", got, second)
	}
}

func TestNodeRegistryClearEmptiesRegistry(t *testing.T) {
	r := NewNodeRegistry()
	node := &ast.IntegerNode{Value: 1}
	r.Bind(node, &vertex.TypeVertex{Kind: vertex.KindIntegerLit})
	r.Clear()
	if _, ok := r.Lookup(node); ok {
		t.Error("Lookup() after Clear() should miss")
	}
}

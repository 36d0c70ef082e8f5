package registry

import (
	"testing"

	"github.com/riseshia/rbtypegraph/internal/vertex"
)

func TestTypeVertexRegistryAddAssignsMonotonicIDs(t *testing.T) {
	r := NewTypeVertexRegistry()
	a := r.Add("a", vertex.KindIntegerLit, "", vertex.Payload{})
	b := r.Add("b", vertex.KindStringLit, "", vertex.Payload{})
	if a.ID != 0 || b.ID != 1 {
		t.Fatalf("ids = %d, %d, want 0, 1", a.ID, b.ID)
	}
}

func TestTypeVertexRegistryAllPreservesInsertionOrder(t *testing.T) {
	r := NewTypeVertexRegistry()
	r.Add("a", vertex.KindIntegerLit, "", vertex.Payload{})
	r.Add("b", vertex.KindStringLit, "", vertex.Payload{})
	all := r.All()
	if len(all) != 2 || all[0].Name != "a" || all[1].Name != "b" {
		t.Fatalf("All() = %v, want [a b] in order", all)
	}
}

func TestTypeVertexRegistryAllReturnsACopy(t *testing.T) {
	r := NewTypeVertexRegistry()
	r.Add("a", vertex.KindIntegerLit, "", vertex.Payload{})
	all := r.All()
	all[0] = nil
	if r.All()[0] == nil {
		t.Fatal("mutating the slice returned by All() mutated the registry")
	}
}

func TestTypeVertexRegistryClearResetsIDAllocation(t *testing.T) {
	r := NewTypeVertexRegistry()
	r.Add("a", vertex.KindIntegerLit, "", vertex.Payload{})
	r.Clear()
	if len(r.All()) != 0 {
		t.Fatalf("All() after Clear() = %v, want empty", r.All())
	}
	fresh := r.Add("b", vertex.KindStringLit, "", vertex.Payload{})
	if fresh.ID != 0 {
		t.Errorf("ID after Clear() = %d, want 0", fresh.ID)
	}
}

func TestTypeVertexRegistryAddDependencyWiresBothDirections(t *testing.T) {
	r := NewTypeVertexRegistry()
	parent := r.Add("p", vertex.KindArray, "", vertex.Payload{})
	child := r.Add("c", vertex.KindIntegerLit, "", vertex.Payload{})
	r.AddDependency(parent, child)
	if len(parent.Dependencies) != 1 || parent.Dependencies[0] != child {
		t.Errorf("parent.Dependencies = %v, want [child]", parent.Dependencies)
	}
	if len(child.Dependents) != 1 || child.Dependents[0] != parent {
		t.Errorf("child.Dependents = %v, want [parent]", child.Dependents)
	}
}

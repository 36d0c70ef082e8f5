package registry

import "testing"

func TestConstRegistryFindOrAddCreatesOnFirstCall(t *testing.T) {
	r := NewConstRegistry()
	c := r.FindOrAdd("A::B", ConstClass, "A", "a.rb")
	if c.QualifiedName != "A::B" || c.Kind != ConstClass || c.Parent != "A" {
		t.Fatalf("FindOrAdd result = %+v, want A::B/Class/A", c)
	}
	if len(c.Paths) != 1 || c.Paths[0] != "a.rb" {
		t.Errorf("Paths = %v, want [a.rb]", c.Paths)
	}
}

func TestConstRegistryFindOrAddReopensExistingConstant(t *testing.T) {
	r := NewConstRegistry()
	first := r.FindOrAdd("A", ConstClass, "", "a.rb")
	second := r.FindOrAdd("A", ConstClass, "", "b.rb")
	if first != second {
		t.Fatal("reopening an existing constant should return the same *Constant")
	}
	if len(second.Paths) != 2 {
		t.Fatalf("Paths = %v, want two declaration sites", second.Paths)
	}
}

func TestConstRegistryFindMissesUnknownName(t *testing.T) {
	r := NewConstRegistry()
	if _, ok := r.Find("Nope"); ok {
		t.Error("Find(unknown) = true, want false")
	}
}

func TestConstRegistryAllPreservesFirstRegistrationOrder(t *testing.T) {
	r := NewConstRegistry()
	r.FindOrAdd("B", ConstModule, "", "b.rb")
	r.FindOrAdd("A", ConstClass, "", "a.rb")
	r.FindOrAdd("B", ConstModule, "", "b2.rb")
	all := r.All()
	if len(all) != 2 || all[0].QualifiedName != "B" || all[1].QualifiedName != "A" {
		t.Fatalf("All() = %v, want [B A]", all)
	}
}

func TestConstRegistryClearEmptiesRegistry(t *testing.T) {
	r := NewConstRegistry()
	r.FindOrAdd("A", ConstClass, "", "a.rb")
	r.Clear()
	if len(r.All()) != 0 {
		t.Fatalf("All() after Clear() = %v, want empty", r.All())
	}
}

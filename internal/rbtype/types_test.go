package rbtype

import "testing"

func TestNewUnionDedupsAndFlattens(t *testing.T) {
	nested := Union{Types: []Type{IntegerLiteral{Value: 1}, Nil{}}}
	got := NewUnion([]Type{nested, IntegerLiteral{Value: 1}, Nil{}, StringLiteral{Value: "s"}})
	union, ok := got.(Union)
	if !ok {
		t.Fatalf("NewUnion result is %T, want Union", got)
	}
	if len(union.Types) != 3 {
		t.Fatalf("NewUnion dedup = %d members, want 3: %v", len(union.Types), union.Types)
	}
}

func TestNewUnionSingleMemberCollapses(t *testing.T) {
	got := NewUnion([]Type{IntegerLiteral{Value: 1}, IntegerLiteral{Value: 1}})
	if _, ok := got.(Union); ok {
		t.Fatalf("NewUnion of one distinct member should not stay a Union, got %v", got)
	}
}

func TestUnionStringPreservesFirstOccurrenceOrder(t *testing.T) {
	u := Union{Types: []Type{IntegerLiteral{Value: 1}, IntegerLiteral{Value: 2}, Nil{}}}
	if got := u.String(); got != "1 | 2 | nil" {
		t.Errorf("Union.String() = %q, want %q", got, "1 | 2 | nil")
	}
}

func TestEqualComparesByKindTag(t *testing.T) {
	if !Equal(Instance{Name: "A"}, Instance{Name: "A"}) {
		t.Error("Equal(Instance{A}, Instance{A}) = false, want true")
	}
	if Equal(Instance{Name: "A"}, Instance{Name: "B"}) {
		t.Error("Equal(Instance{A}, Instance{B}) = true, want false")
	}
	if !Equal(nil, nil) {
		t.Error("Equal(nil, nil) = false, want true")
	}
}

func TestHashShapeStringRendersSymbolAndStringKeys(t *testing.T) {
	h := HashShape{Entries: []HashEntry{
		{KeyKind: HashKeySymbol, KeyName: "foo", Value: Integer{}},
		{KeyKind: HashKeyString, KeyName: "bar", Value: String{}},
	}}
	want := `{ foo: Integer, "bar" => String }`
	if got := h.String(); got != want {
		t.Errorf("HashShape.String() = %q, want %q", got, want)
	}
}

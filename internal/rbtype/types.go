// Package rbtype is the closed algebra of inferred types this front
// end can name. It intentionally has no unification, no kinds, and no
// type variables: the downstream solver that turns a vertex graph into
// final answers (beyond the trivial literal cases below) is an
// external collaborator.
package rbtype

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the interface every member of the algebra implements. There
// is no Apply/FreeTypeVariables: nothing here is ever unified or
// substituted, only rendered.
type Type interface {
	String() string
	kindTag() string // internal discriminator, used for union dedup/equality
}

// Any is the "solver declined" sentinel.
type Any struct{}

func (Any) String() string { return "any" }
func (Any) kindTag() string { return "any" }

// Nil is the type of the literal nil.
type Nil struct{}

func (Nil) String() string  { return "nil" }
func (Nil) kindTag() string { return "nil" }

// Bool is a literal boolean type: true or false are distinct types
// until widened by a union with the other.
type Bool struct{ Value bool }

func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b Bool) kindTag() string { return "bool:" + strconv.FormatBool(b.Value) }

// IntegerLiteral is a single-value integer literal type, e.g. the type
// of the literal expression `1`.
type IntegerLiteral struct{ Value int64 }

func (i IntegerLiteral) String() string  { return strconv.FormatInt(i.Value, 10) }
func (i IntegerLiteral) kindTag() string { return "int:" + strconv.FormatInt(i.Value, 10) }

// Integer is the widened base type of all integer literals.
type Integer struct{}

func (Integer) String() string  { return "Integer" }
func (Integer) kindTag() string { return "Integer" }

// StringLiteral is a single-value string literal type, e.g. "foo".
type StringLiteral struct{ Value string }

func (s StringLiteral) String() string  { return strconv.Quote(s.Value) }
func (s StringLiteral) kindTag() string { return "str:" + s.Value }

// String is the widened base type of all string literals.
type String struct{}

func (String) String() string  { return "String" }
func (String) kindTag() string { return "String" }

// SymbolLiteral is a symbol literal type, e.g. :hoge. Symbols are
// always rendered and tracked as literals; this algebra defines no
// widened base symbol type.
type SymbolLiteral struct{ Value string }

func (s SymbolLiteral) String() string  { return ":" + s.Value }
func (s SymbolLiteral) kindTag() string { return "sym:" + s.Value }

// ArrayOf is a homogeneous array type, e.g. [Integer].
type ArrayOf struct{ Elem Type }

func (a ArrayOf) String() string  { return "[" + a.Elem.String() + "]" }
func (a ArrayOf) kindTag() string { return "array:" + a.Elem.kindTag() }

// HashKeyKind mirrors ast.HashKeyKind without importing the ast
// package (rbtype must stay a leaf so every other package can depend
// on it).
type HashKeyKind int

const (
	HashKeySymbol HashKeyKind = iota
	HashKeyString
)

// HashEntry is one key/value pair of a HashShape, in source order.
type HashEntry struct {
	KeyKind HashKeyKind
	KeyName string
	Value   Type
}

// HashShape is a record-like hash type with entries in source order,
// e.g. { foo: Integer, "bar" => Integer }.
type HashShape struct{ Entries []HashEntry }

func (h HashShape) String() string {
	if len(h.Entries) == 0 {
		return "{}"
	}
	parts := make([]string, len(h.Entries))
	for i, e := range h.Entries {
		if e.KeyKind == HashKeySymbol {
			parts[i] = fmt.Sprintf("%s: %s", e.KeyName, e.Value.String())
		} else {
			parts[i] = fmt.Sprintf("%s => %s", strconv.Quote(e.KeyName), e.Value.String())
		}
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (h HashShape) kindTag() string {
	parts := make([]string, len(h.Entries))
	for i, e := range h.Entries {
		parts[i] = fmt.Sprintf("%d:%s:%s", e.KeyKind, e.KeyName, e.Value.kindTag())
	}
	return "hash:" + strings.Join(parts, ",")
}

// Singleton is the type of a class/module object itself, e.g. the bare
// reference `A` when A names a known constant.
type Singleton struct{ Name string } // qualified name, e.g. "C::D"

func (s Singleton) String() string  { return "singleton(" + s.Name + ")" }
func (s Singleton) kindTag() string { return "singleton:" + s.Name }

// Instance is the type of an instance of a known class, e.g. the
// return type of `A.new`.
type Instance struct{ Name string }

func (i Instance) String() string  { return i.Name }
func (i Instance) kindTag() string { return "instance:" + i.Name }

// Union is a set of alternative types, rendered "a | b | c". Members
// are kept in first-occurrence order, not sorted, so a rendering like
// `1 | 2 | nil` preserves source order.
type Union struct{ Types []Type }

func (u Union) String() string {
	parts := make([]string, len(u.Types))
	for i, t := range u.Types {
		parts[i] = t.String()
	}
	return strings.Join(parts, " | ")
}

func (u Union) kindTag() string {
	parts := make([]string, len(u.Types))
	for i, t := range u.Types {
		parts[i] = t.kindTag()
	}
	return "union:" + strings.Join(parts, ",")
}

// NewUnion builds a Union (or the bare type, if only one distinct
// member survives deduplication) from a set of contributing types.
// Flattens nested unions and deduplicates by kindTag, keeping the
// first occurrence of each distinct member.
func NewUnion(types []Type) Type {
	flat := make([]Type, 0, len(types))
	for _, t := range types {
		if t == nil {
			continue
		}
		if u, ok := t.(Union); ok {
			flat = append(flat, u.Types...)
		} else {
			flat = append(flat, t)
		}
	}

	seen := make(map[string]bool, len(flat))
	unique := make([]Type, 0, len(flat))
	for _, t := range flat {
		k := t.kindTag()
		if !seen[k] {
			seen[k] = true
			unique = append(unique, t)
		}
	}

	switch len(unique) {
	case 0:
		return Any{}
	case 1:
		return unique[0]
	default:
		return Union{Types: unique}
	}
}

// Equal reports whether two types have the same kindTag, the same key
// NewUnion deduplicates by. Two types that merely render alike (e.g.
// Instance{Name: "Integer"} and Integer) are not equal.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.kindTag() == b.kindTag()
}

package vertex

import (
	"github.com/riseshia/rbtypegraph/internal/rbtype"
	"github.com/riseshia/rbtypegraph/internal/token"
)

// HashKeyMeta carries one hash entry's key shape alongside the
// interleaved key/value vertices a Hash vertex depends on.
type HashKeyMeta struct {
	KeyKind rbtype.HashKeyKind
	KeyName string
}

// Payload bundles every kind's immutable creation-time data: literal
// value, constant path, method name, parameter index, hash-entry key
// list, and so on. Only the fields relevant to a vertex's Kind are
// populated; the rest are zero values. One bag rather than one struct
// type per kind, since the kind tag already disambiguates which fields
// apply.
type Payload struct {
	IntValue    int64  // IntegerLit
	StrValue    string // StringLit/SymbolLit text; Lvar/Ivar/LvarRead/IvarRead name; ConstRead qualified path; Call method name
	BoolValue   bool   // True/False literal value
	HasReceiver bool   // Call: whether Dependencies[0] is the receiver

	ArgIndex int     // Arg
	ArgKind  ArgKind // Arg

	HashKeys []HashKeyMeta // Hash, parallel to the value half of each interleaved dependency pair

	ConstResolved bool        // ConstRead: true once the qualified path names a known constant
	ConstToken    token.Token // ConstRead: source position, for a later unresolved-constant diagnostic

	// ResolvedReturnType is baked in at creation time for the cases
	// this layer resolves itself instead of deferring to the external
	// solver: an `X.new` call on a resolved constant X, a class-method
	// call through a resolved singleton receiver, and a `self` reference
	// (represented as a ConstRead vertex), whose type the walker always
	// knows outright. nil for every other Call/ConstRead.
	ResolvedReturnType rbtype.Type
}

// TypeVertex is one node of the dependency graph: one expression or
// binding, with inbound Dependencies and outbound Dependents edges
// maintained symmetrically.
type TypeVertex struct {
	ID           int
	Name         string
	Kind         Kind
	Scope        string
	Dependencies []*TypeVertex
	Dependents   []*TypeVertex
	Payload      Payload

	// MethodObjs holds the methods for which this vertex is an
	// argument vertex. Declared as `any` (rather than a concrete
	// *registry.Method) so this leaf package never imports registry;
	// the visitor's VisitDefNode appends the Method here when it builds
	// the method's Arg vertex.
	MethodObjs []any
}

// AddDependency wires parent -> child and maintains the reverse edge.
// Idempotent: re-adding an existing (parent, child) edge is a no-op, so
// a local-variable read that revisits the same write vertex more than
// once never creates parallel edges.
func AddDependency(parent, child *TypeVertex) {
	for _, d := range parent.Dependencies {
		if d == child {
			return
		}
	}
	parent.Dependencies = append(parent.Dependencies, child)
	child.Dependents = append(child.Dependents, parent)
}

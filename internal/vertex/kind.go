// Package vertex implements the type-vertex graph: one node per
// expression or binding the walker encounters, carrying just enough
// kind-specific payload for a downstream solver to compute a type from
// the node's kind and the inferred types of its dependencies.
package vertex

// Kind is the closed enumeration of vertex kinds this package knows
// how to infer a type for.
type Kind int

const (
	KindIntegerLit Kind = iota
	KindStringLit
	KindSymbolLit
	KindTrue
	KindFalse
	KindNil
	KindLvar        // a local-variable write
	KindLvarRead
	KindIvar        // an instance-variable write
	KindIvarRead
	KindCall
	KindIf
	KindArray
	KindHash
	KindConstRead
	KindStringInterp
	KindReturn
	KindArg
	KindMultiWrite
)

func (k Kind) String() string {
	switch k {
	case KindIntegerLit:
		return "IntegerLit"
	case KindStringLit:
		return "StringLit"
	case KindSymbolLit:
		return "SymbolLit"
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindNil:
		return "Nil"
	case KindLvar:
		return "Lvar"
	case KindLvarRead:
		return "LvarRead"
	case KindIvar:
		return "Ivar"
	case KindIvarRead:
		return "IvarRead"
	case KindCall:
		return "Call"
	case KindIf:
		return "If"
	case KindArray:
		return "Array"
	case KindHash:
		return "Hash"
	case KindConstRead:
		return "ConstRead"
	case KindStringInterp:
		return "StringInterp"
	case KindReturn:
		return "Return"
	case KindArg:
		return "Arg"
	case KindMultiWrite:
		return "MultiWrite"
	default:
		return "Unknown"
	}
}

// ArgKind enumerates the parameter shapes an Arg vertex's payload can
// carry, matching ast.ParamKind one-for-one (kept as a distinct type so
// vertex never has to import ast).
type ArgKind int

const (
	ArgRequired ArgKind = iota
	ArgOptional
	ArgKeywordRequired
	ArgKeywordOptional
	ArgRest
	ArgBlock
)

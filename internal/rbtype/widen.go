package rbtype

// Widen promotes a literal type to its base type (IntegerLiteral ->
// Integer, StringLiteral -> String); every other type, including
// symbol and boolean literals, passes through unchanged since this
// algebra defines no widened base for them.
func Widen(t Type) Type {
	switch t.(type) {
	case IntegerLiteral:
		return Integer{}
	case StringLiteral:
		return String{}
	default:
		return t
	}
}

// WidenUnion builds the union of the widened bases of deps: every
// dependency is widened regardless of count, so a lone integer or
// string literal still promotes to its base (e.g. `a = 1` infers
// Integer, not 1). Symbol and boolean literals pass through Widen
// unchanged, so a lone symbol/bool contributor still infers as that
// literal.
func WidenUnion(deps []Type) Type {
	if len(deps) == 0 {
		return Any{}
	}

	widened := make([]Type, len(deps))
	for i, d := range deps {
		widened[i] = Widen(d)
	}
	return NewUnion(widened)
}

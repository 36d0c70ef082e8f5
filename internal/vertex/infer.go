package vertex

import "github.com/riseshia/rbtypegraph/internal/rbtype"

// Infer computes this vertex's type from its kind, payload, and the
// inferred types of its immediate dependencies. It never
// looks past one edge: a richer, flow-sensitive answer is the external
// solver's job.
func (tv *TypeVertex) Infer() rbtype.Type {
	switch tv.Kind {
	case KindIntegerLit:
		return rbtype.IntegerLiteral{Value: tv.Payload.IntValue}
	case KindStringLit:
		return rbtype.StringLiteral{Value: tv.Payload.StrValue}
	case KindSymbolLit:
		return rbtype.SymbolLiteral{Value: tv.Payload.StrValue}
	case KindTrue:
		return rbtype.Bool{Value: true}
	case KindFalse:
		return rbtype.Bool{Value: false}
	case KindNil:
		return rbtype.Nil{}

	case KindLvar, KindIvar:
		return rbtype.WidenUnion(tv.depInfers())

	case KindLvarRead:
		if len(tv.Dependencies) == 0 {
			return rbtype.Any{}
		}
		return tv.Dependencies[0].Infer()

	case KindIvarRead:
		if len(tv.Dependencies) == 0 {
			return rbtype.Any{}
		}
		return rbtype.NewUnion(tv.depInfers())

	case KindCall:
		if tv.Payload.ResolvedReturnType != nil {
			return tv.Payload.ResolvedReturnType
		}
		return rbtype.Any{}

	case KindIf:
		return rbtype.NewUnion(tv.depInfers())

	case KindArray:
		return rbtype.ArrayOf{Elem: rbtype.WidenUnion(tv.depInfers())}

	case KindHash:
		entries := make([]rbtype.HashEntry, 0, len(tv.Payload.HashKeys))
		valueIdx := 0
		for _, key := range tv.Payload.HashKeys {
			// Dependencies interleave key, value, key, value, ...; the
			// value half of pair i sits at index 2*i+1.
			value := tv.Dependencies[valueIdx+1]
			entries = append(entries, rbtype.HashEntry{
				KeyKind: key.KeyKind,
				KeyName: key.KeyName,
				Value:   rbtype.Widen(value.Infer()),
			})
			valueIdx += 2
		}
		return rbtype.HashShape{Entries: entries}

	case KindConstRead:
		// ResolvedReturnType carries `self`'s type (Instance or Singleton
		// depending on context): self is a constant-like reference whose
		// type the walker already knows at creation time, same mechanism
		// as the singleton-call return-type bake-in above.
		if tv.Payload.ResolvedReturnType != nil {
			return tv.Payload.ResolvedReturnType
		}
		if tv.Payload.ConstResolved {
			return rbtype.Singleton{Name: tv.Payload.StrValue}
		}
		return rbtype.StringLiteral{Value: tv.Payload.StrValue}

	case KindStringInterp:
		return rbtype.String{}

	case KindReturn:
		if len(tv.Dependencies) == 0 {
			return rbtype.Nil{}
		}
		return tv.Dependencies[0].Infer()

	case KindArg:
		if len(tv.Dependencies) == 0 {
			return rbtype.Any{}
		}
		return rbtype.NewUnion(tv.depInfers())

	case KindMultiWrite:
		return rbtype.Any{}

	default:
		return rbtype.Any{}
	}
}

func (tv *TypeVertex) depInfers() []rbtype.Type {
	out := make([]rbtype.Type, len(tv.Dependencies))
	for i, d := range tv.Dependencies {
		out[i] = d.Infer()
	}
	return out
}

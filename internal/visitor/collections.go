package visitor

import (
	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/rbtype"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

// VisitArrayNode depends directly on each element's vertex, in order,
// with no interleaving: MultiWriteNode relies on this to pick out
// positional elements by index.
func (w *Walker) VisitArrayNode(n *ast.ArrayNode) {
	tv := w.Vertices.Add("Prism::ArrayNode", vertex.KindArray, w.scope.CurrentSelfTypeName(), vertex.Payload{})
	for _, elem := range n.Elements {
		if elemTV := w.visitExpr(elem); elemTV != nil {
			w.Vertices.AddDependency(tv, elemTV)
		}
	}
	w.Nodes.Bind(n, tv)
	w.result = tv
}

// VisitHashNode depends on an interleaved key/value pair per entry
// (key vertex first, then value vertex), matching the Infer() walk in
// vertex.Infer which reads Dependencies[2*i+1] as the value half of
// entry i. The key side is still visited (and gets its own vertex and
// dependency edge) even though HashEntry.KeyName/KeyKind already carry
// the rendering-relevant key shape in the payload, since a computed
// symbol/string key can itself reference locals worth tracking.
func (w *Walker) VisitHashNode(n *ast.HashNode) {
	keys := make([]vertex.HashKeyMeta, 0, len(n.Entries))
	for _, e := range n.Entries {
		keys = append(keys, vertex.HashKeyMeta{KeyKind: rbtype.HashKeyKind(e.KeyKind), KeyName: e.KeyName})
	}
	tv := w.Vertices.Add("hash", vertex.KindHash, w.scope.CurrentSelfTypeName(), vertex.Payload{HashKeys: keys})
	for _, e := range n.Entries {
		keyTV := w.visitExpr(e.Key)
		if keyTV == nil {
			// Shorthand key (`foo: 1`) with no separate key expression
			// node: synthesize the literal the key shape already implies,
			// so Dependencies always interleaves key, value pairs
			// regardless of what the parser populated.
			if e.KeyKind == ast.HashKeySymbol {
				keyTV = w.Vertices.Add(":"+e.KeyName, vertex.KindSymbolLit, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: e.KeyName})
			} else {
				keyTV = w.Vertices.Add(e.KeyName, vertex.KindStringLit, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: e.KeyName})
			}
		}
		w.Vertices.AddDependency(tv, keyTV)
		valueTV := w.visitExpr(e.Value)
		if valueTV == nil {
			valueTV = w.Vertices.Add("nil", vertex.KindNil, w.scope.CurrentSelfTypeName(), vertex.Payload{})
		}
		w.Vertices.AddDependency(tv, valueTV)
	}
	w.Nodes.Bind(n, tv)
	w.result = tv
}

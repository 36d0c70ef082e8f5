package visitor

import (
	"strconv"

	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

func (w *Walker) VisitIntegerNode(n *ast.IntegerNode) {
	tv := w.Vertices.Add(strconv.FormatInt(n.Value, 10), vertex.KindIntegerLit, w.scope.CurrentSelfTypeName(), vertex.Payload{IntValue: n.Value})
	w.Nodes.Bind(n, tv)
	w.result = tv
}

func (w *Walker) VisitStringNode(n *ast.StringNode) {
	tv := w.Vertices.Add(n.Value, vertex.KindStringLit, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: n.Value})
	w.Nodes.Bind(n, tv)
	w.result = tv
}

func (w *Walker) VisitSymbolNode(n *ast.SymbolNode) {
	tv := w.Vertices.Add(":"+n.Value, vertex.KindSymbolLit, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: n.Value})
	w.Nodes.Bind(n, tv)
	w.result = tv
}

func (w *Walker) VisitTrueNode(n *ast.TrueNode) {
	tv := w.Vertices.Add("true", vertex.KindTrue, w.scope.CurrentSelfTypeName(), vertex.Payload{BoolValue: true})
	w.Nodes.Bind(n, tv)
	w.result = tv
}

func (w *Walker) VisitFalseNode(n *ast.FalseNode) {
	tv := w.Vertices.Add("false", vertex.KindFalse, w.scope.CurrentSelfTypeName(), vertex.Payload{BoolValue: false})
	w.Nodes.Bind(n, tv)
	w.result = tv
}

func (w *Walker) VisitNilNode(n *ast.NilNode) {
	tv := w.Vertices.Add("nil", vertex.KindNil, w.scope.CurrentSelfTypeName(), vertex.Payload{})
	w.Nodes.Bind(n, tv)
	w.result = tv
}

// VisitInterpolatedStringNode walks every embedded part for its
// dependency edges (a static StringNode fragment contributes nothing
// new, an embedded expression might reference locals/ivars that matter
// to a caller inspecting the graph) even though the vertex's own
// inferred type is always String regardless of what's interpolated.
func (w *Walker) VisitInterpolatedStringNode(n *ast.InterpolatedStringNode) {
	tv := w.Vertices.Add("string_interp", vertex.KindStringInterp, w.scope.CurrentSelfTypeName(), vertex.Payload{})
	for _, part := range n.Parts {
		if partTV := w.visitExpr(part); partTV != nil {
			w.Vertices.AddDependency(tv, partTV)
		}
	}
	w.Nodes.Bind(n, tv)
	w.result = tv
}

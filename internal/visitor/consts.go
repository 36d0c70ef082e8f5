package visitor

import (
	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

func (w *Walker) VisitConstantReadNode(n *ast.ConstantReadNode) {
	qualified, resolved := w.resolveConstRef(n)
	tv := w.Vertices.Add(qualified, vertex.KindConstRead, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: qualified, ConstResolved: resolved, ConstToken: n.Token})
	w.Nodes.Bind(n, tv)
	w.result = tv
}

func (w *Walker) VisitConstantPathNode(n *ast.ConstantPathNode) {
	qualified, resolved := w.resolveConstRef(n)
	tv := w.Vertices.Add(qualified, vertex.KindConstRead, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: qualified, ConstResolved: resolved, ConstToken: n.Token})
	w.Nodes.Bind(n, tv)
	w.result = tv
}

package visitor

import (
	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/config"
	"github.com/riseshia/rbtypegraph/internal/rbtype"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

// receiverConstName resolves a call receiver to a known constant's
// qualified name, when the receiver is a constant reference or a
// `self` that is itself standing in for one (inside a singleton
// context). Anything else (a local variable, an ivar, a nested call)
// is not resolvable without the external solver.
func (w *Walker) receiverConstName(n ast.Node) (string, bool) {
	switch n.(type) {
	case *ast.ConstantReadNode, *ast.ConstantPathNode:
		return w.resolveConstRef(n)
	case *ast.SelfNode:
		if w.scope.InSingleton() {
			return w.scope.CurrentSelfTypeName(), true
		}
		return "", false
	default:
		return "", false
	}
}

// VisitCallNode builds a Call vertex depending on the receiver (if
// any) followed by every argument, in order. Most calls resolve to Any
// pending the external solver; the two cases this layer resolves
// itself are `X.new` for
// a known class X, and a call through a resolved singleton receiver
// that matches a registered singleton method. The Call vertex is
// registered before the receiver and arguments are walked, same
// container-first ordering VisitArrayNode/VisitHashNode/VisitIfNode
// already use, since receiverConstName resolves off the AST and never
// needs the receiver's own vertex to exist first.
func (w *Walker) VisitCallNode(n *ast.CallNode) {
	var resolvedReturn rbtype.Type
	if n.Receiver != nil {
		if qualified, resolved := w.receiverConstName(n.Receiver); resolved {
			switch {
			case n.Name == config.NewMethodName:
				resolvedReturn = rbtype.Instance{Name: qualified}
			default:
				if m, ok := w.Methods.FindAny(qualified, n.Name, true); ok {
					resolvedReturn = m.InferReturnType()
				}
			}
		}
	}

	payload := vertex.Payload{StrValue: n.Name, HasReceiver: n.Receiver != nil, ResolvedReturnType: resolvedReturn}
	tv := w.Vertices.Add(n.Name, vertex.KindCall, w.scope.CurrentSelfTypeName(), payload)

	if n.Receiver != nil {
		if receiverTV := w.visitExpr(n.Receiver); receiverTV != nil {
			w.Vertices.AddDependency(tv, receiverTV)
		}
	}
	for _, a := range n.Arguments {
		if atv := w.visitExpr(a); atv != nil {
			w.Vertices.AddDependency(tv, atv)
		}
	}

	w.Nodes.Bind(n, tv)
	w.result = tv
}

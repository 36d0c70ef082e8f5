package visitor

import (
	"fmt"

	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/diagnostics"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

// VisitLocalVariableWriteNode creates a fresh Lvar vertex per
// assignment: re-assignment never mutates an existing vertex, so a read
// bound to an earlier write keeps seeing that write's type. The Lvar
// vertex is registered before its value is walked, same as the
// container-first ordering VisitIfNode/VisitArrayNode/VisitHashNode
// already use, so `a = 1` registers `[a, 1]` rather than `[1, a]`.
func (w *Walker) VisitLocalVariableWriteNode(n *ast.LocalVariableWriteNode) {
	tv := w.Vertices.Add(n.Name, vertex.KindLvar, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: n.Name})
	valueTV := w.visitExpr(n.Value)
	if valueTV != nil {
		w.Vertices.AddDependency(tv, valueTV)
	}
	w.scope.BindLocal(n.Name, tv)
	w.Nodes.Bind(n, tv)
	w.result = tv
}

// VisitLocalVariableReadNode depends on the most recent write visible
// in the current local environment, or carries no dependency at all
// for a read with no prior binding in this walk (e.g. a block
// parameter the walker does not yet track).
func (w *Walker) VisitLocalVariableReadNode(n *ast.LocalVariableReadNode) {
	tv := w.Vertices.Add(n.Name, vertex.KindLvarRead, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: n.Name})
	if writeTV, ok := w.scope.LookupLocal(n.Name); ok {
		w.Vertices.AddDependency(tv, writeTV)
	}
	w.Nodes.Bind(n, tv)
	w.result = tv
}

// VisitLocalVariableTargetNode only ever appears as one target of a
// MultiWriteNode; VisitMultiWriteNode does the actual vertex
// construction for each target so it can wire the right positional
// dependency, so this is a thin passthrough kept for Visitor
// completeness.
func (w *Walker) VisitLocalVariableTargetNode(n *ast.LocalVariableTargetNode) {
	tv := w.Vertices.Add(n.Name, vertex.KindLvar, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: n.Name})
	w.scope.BindLocal(n.Name, tv)
	w.Nodes.Bind(n, tv)
	w.result = tv
}

// VisitMultiWriteNode handles `a, b = 1, 2` style assignment. When the
// right-hand side is a literal array with exactly as many elements as
// targets, each target binds to its positional element's own vertex
// (so `a, b = 1, "x"` gives a Integer, b String); otherwise every
// target is bound to a bare Lvar vertex with no dependency, which
// infers Any.
func (w *Walker) VisitMultiWriteNode(n *ast.MultiWriteNode) {
	valueTV := w.visitExpr(n.Value)
	tv := w.Vertices.Add("multi_write", vertex.KindMultiWrite, w.scope.CurrentSelfTypeName(), vertex.Payload{})
	if valueTV != nil {
		w.Vertices.AddDependency(tv, valueTV)
	}

	arr, isArray := n.Value.(*ast.ArrayNode)
	if isArray && len(arr.Elements) == len(n.Targets) && valueTV != nil {
		for i, target := range n.Targets {
			elemTV := valueTV.Dependencies[i]
			targetTV := w.Vertices.Add(target.Name, vertex.KindLvar, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: target.Name})
			w.Vertices.AddDependency(targetTV, elemTV)
			w.scope.BindLocal(target.Name, targetTV)
			w.Nodes.Bind(target, targetTV)
		}
	} else {
		if isArray {
			w.addError(diagnostics.NewError(diagnostics.ErrW003, n.Token,
				fmt.Sprintf("multiple assignment expects %d values, got %d", len(n.Targets), len(arr.Elements))))
		}
		for _, target := range n.Targets {
			targetTV := w.Vertices.Add(target.Name, vertex.KindLvar, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: target.Name})
			w.scope.BindLocal(target.Name, targetTV)
			w.Nodes.Bind(target, targetTV)
		}
	}

	w.Nodes.Bind(n, tv)
	w.result = tv
}

// ivarKey scopes an instance variable to its enclosing type: every
// `@x` write and read anywhere in the same class shares one vertex,
// unlike locals where each write gets its own.
func (w *Walker) ivarKey(name string) string {
	return w.scope.CurrentSelfTypeName() + "#" + name
}

func (w *Walker) sharedIvar(name string) *vertex.TypeVertex {
	key := w.ivarKey(name)
	if tv, ok := w.ivars[key]; ok {
		return tv
	}
	tv := w.Vertices.Add(name, vertex.KindIvar, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: name})
	w.ivars[key] = tv
	return tv
}

func (w *Walker) VisitInstanceVariableWriteNode(n *ast.InstanceVariableWriteNode) {
	valueTV := w.visitExpr(n.Value)
	ivarTV := w.sharedIvar(n.Name)
	if valueTV != nil {
		w.Vertices.AddDependency(ivarTV, valueTV)
	}
	w.Nodes.Bind(n, ivarTV)
	w.result = ivarTV
}

func (w *Walker) VisitInstanceVariableReadNode(n *ast.InstanceVariableReadNode) {
	ivarTV := w.sharedIvar(n.Name)
	tv := w.Vertices.Add(n.Name, vertex.KindIvarRead, w.scope.CurrentSelfTypeName(), vertex.Payload{StrValue: n.Name})
	w.Vertices.AddDependency(tv, ivarTV)
	w.Nodes.Bind(n, tv)
	w.result = tv
}

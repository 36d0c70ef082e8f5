package visitor

import (
	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

// VisitIfNode depends on the final-statement vertex of each branch
// (the value the branch would produce, Ruby's if/else being an
// expression), not on the predicate: the predicate is still walked so
// its own vertices join the graph in source order, but it plays no
// part in the If vertex's "union of branches" inferred type. A branch
// with no statements contributes nothing to the If vertex's
// dependencies; a missing else branch contributes a Nil vertex, so
// `if cond; end` with no else infers as nil.
func (w *Walker) VisitIfNode(n *ast.IfNode) {
	tv := w.Vertices.Add("if", vertex.KindIf, w.scope.CurrentSelfTypeName(), vertex.Payload{})

	w.visitExpr(n.Predicate)

	if branchTV := w.lastStatementVertex(n.Statements); branchTV != nil {
		w.Vertices.AddDependency(tv, branchTV)
	}

	if n.Subsequent != nil {
		if elseBranchTV := w.visitExpr(n.Subsequent); elseBranchTV != nil {
			w.Vertices.AddDependency(tv, elseBranchTV)
		}
	} else {
		nilTV := w.Vertices.Add("nil", vertex.KindNil, w.scope.CurrentSelfTypeName(), vertex.Payload{})
		w.Vertices.AddDependency(tv, nilTV)
	}

	w.Nodes.Bind(n, tv)
	w.result = tv
}

// VisitElseNode's result is the branch's final-statement vertex, which
// VisitIfNode adds as the If vertex's second dependency.
func (w *Walker) VisitElseNode(n *ast.ElseNode) {
	w.result = w.lastStatementVertex(n.Statements)
}

func (w *Walker) lastStatementVertex(stmts []ast.Statement) *vertex.TypeVertex {
	var last *vertex.TypeVertex
	for _, stmt := range stmts {
		last = w.visitExpr(stmt)
	}
	return last
}

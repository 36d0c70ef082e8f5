package visitor

import (
	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/registry"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

func paramArgKind(k ast.ParamKind) vertex.ArgKind {
	switch k {
	case ast.ParamRequired:
		return vertex.ArgRequired
	case ast.ParamOptional:
		return vertex.ArgOptional
	case ast.ParamKeywordRequired:
		return vertex.ArgKeywordRequired
	case ast.ParamKeywordOptional:
		return vertex.ArgKeywordOptional
	case ast.ParamRest:
		return vertex.ArgRest
	case ast.ParamBlock:
		return vertex.ArgBlock
	default:
		return vertex.ArgRequired
	}
}

// VisitDefNode registers (or re-registers, on a reopened definition)
// the Method, builds one Arg vertex per parameter in declaration
// order, walks the body in a fresh local environment, and records
// every value the method can return: each explicit `return`
// (collected as VisitReturnNode runs) plus the final statement's value
// when the body does not already end in a `return`.
func (w *Walker) VisitDefNode(n *ast.DefNode) {
	receiverName := w.scope.CurrentSelfTypeName()
	singleton := n.Receiver != nil || w.scope.InSingleton()
	visibility := w.scope.CurrentVisibility()

	m := w.Methods.Add(receiverName, n.Name, n, w.path, singleton, visibility)

	w.scope.PushMethod(m)
	w.scope.PushSingleton(singleton)
	w.scope.PushLocals()

	m.Args = nil
	for i, p := range n.Parameters {
		var defaultTV *vertex.TypeVertex
		if p.Default != nil {
			defaultTV = w.visitExpr(p.Default)
		}
		argTV := w.Vertices.Add(p.Name, vertex.KindArg, receiverName, vertex.Payload{StrValue: p.Name, ArgIndex: i, ArgKind: paramArgKind(p.Kind)})
		if defaultTV != nil {
			w.Vertices.AddDependency(argTV, defaultTV)
		}
		argTV.MethodObjs = append(argTV.MethodObjs, m)
		w.scope.BindLocal(p.Name, argTV)
		m.Args = append(m.Args, registry.MethodArg{Name: p.Name, Vertex: argTV})
	}

	m.ReturnTVs = nil
	last := w.lastStatementVertex(n.Body)
	if !lastStatementIsReturn(n.Body) && last != nil {
		m.ReturnTVs = append(m.ReturnTVs, last)
	}

	w.scope.PopLocals()
	w.scope.PopSingleton()
	w.scope.PopMethod()
	w.result = nil
}

func lastStatementIsReturn(body []ast.Statement) bool {
	if len(body) == 0 {
		return false
	}
	_, ok := body[len(body)-1].(*ast.ReturnNode)
	return ok
}

// VisitReturnNode appends its value's vertex (wrapped in a Return
// vertex so a bare `return` with no value still has somewhere to carry
// Nil) to the enclosing method's return_tvs, in source order.
func (w *Walker) VisitReturnNode(n *ast.ReturnNode) {
	var valueTV *vertex.TypeVertex
	if n.Value != nil {
		valueTV = w.visitExpr(n.Value)
	} else {
		valueTV = w.Vertices.Add("nil", vertex.KindNil, w.scope.CurrentSelfTypeName(), vertex.Payload{})
	}

	tv := w.Vertices.Add("return", vertex.KindReturn, w.scope.CurrentSelfTypeName(), vertex.Payload{})
	w.Vertices.AddDependency(tv, valueTV)

	if m := w.scope.CurrentMethod(); m != nil {
		m.ReturnTVs = append(m.ReturnTVs, tv)
	}

	w.Nodes.Bind(n, tv)
	w.result = tv
}

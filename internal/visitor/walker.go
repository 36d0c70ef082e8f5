// Package visitor implements the ast.Visitor that walks one file's
// AST and populates the three registries plus the dependency graph.
// It is the heart of the front end: every Visit* method below both
// builds zero-or-more TypeVertex nodes and returns "the" vertex
// representing its node's value via the walker's result slot, since
// Accept has no return value of its own.
package visitor

import (
	"fmt"
	"sort"

	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/config"
	"github.com/riseshia/rbtypegraph/internal/diagnostics"
	"github.com/riseshia/rbtypegraph/internal/hooks"
	"github.com/riseshia/rbtypegraph/internal/rbtype"
	"github.com/riseshia/rbtypegraph/internal/registry"
	"github.com/riseshia/rbtypegraph/internal/scope"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

// Walker holds everything one call to Walk needs: the three registries,
// the node registry, the scope stack, and the per-file ivar cache.
// A fresh Walker is built per file; registries are owned by the host
// (package host) and passed in so a project-wide walk can share them
// across files.
type Walker struct {
	Vertices *registry.TypeVertexRegistry
	Consts   *registry.ConstRegistry
	Methods  *registry.MethodRegistry
	Nodes    *registry.NodeRegistry

	path  string
	scope *scope.Stack
	ivars map[string]*vertex.TypeVertex
	hooks []hooks.Hook

	result   *vertex.TypeVertex
	errorSet map[string]*diagnostics.DiagnosticError
}

// New builds a Walker over the given registries for the file at path,
// recognizing only the built-in attr_reader/attr_writer/attr_accessor
// hooks. Use NewWithHooks to extend the table with project-specific
// macros loaded from a .rbtypegraph.yml file.
func New(vertices *registry.TypeVertexRegistry, consts *registry.ConstRegistry, methods *registry.MethodRegistry, nodes *registry.NodeRegistry, path string) *Walker {
	return NewWithHooks(vertices, consts, methods, nodes, path, hooks.Table)
}

// NewWithHooks builds a Walker that dispatches class-body calls
// through table instead of the built-in hooks.Table.
func NewWithHooks(vertices *registry.TypeVertexRegistry, consts *registry.ConstRegistry, methods *registry.MethodRegistry, nodes *registry.NodeRegistry, path string, table []hooks.Hook) *Walker {
	return &Walker{
		Vertices: vertices,
		Consts:   consts,
		Methods:  methods,
		Nodes:    nodes,
		path:     path,
		scope:    scope.New(),
		ivars:    make(map[string]*vertex.TypeVertex),
		hooks:    table,
	}
}

// Walk runs the walker over a program's top-level statements and
// returns every diagnostic raised, sorted by position.
func (w *Walker) Walk(prog *ast.ProgramNode) []*diagnostics.DiagnosticError {
	for _, stmt := range prog.Statements {
		w.visitExpr(stmt)
	}
	return w.errors()
}

// visitExpr dispatches through Accept and returns the vertex the
// visited node deposited in w.result. ast.Node.Accept has no return
// value of its own (total dispatch via the Visitor interface, not a
// function returning a value), so the walker threads the result back
// through this single field instead of a return channel.
func (w *Walker) visitExpr(n ast.Node) *vertex.TypeVertex {
	if n == nil {
		return nil
	}
	n.Accept(w)
	return w.result
}

func (w *Walker) addError(err *diagnostics.DiagnosticError) {
	if w.errorSet == nil {
		w.errorSet = make(map[string]*diagnostics.DiagnosticError)
	}
	pos := err.Token.Position()
	key := fmt.Sprintf("%d:%d:%s", pos.Line, pos.Column, err.Code)
	w.errorSet[key] = err
}

func (w *Walker) errors() []*diagnostics.DiagnosticError {
	out := make([]*diagnostics.DiagnosticError, 0, len(w.errorSet))
	for _, e := range w.errorSet {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Token.Position(), out[j].Token.Position()
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		if pi.Column != pj.Column {
			return pi.Column < pj.Column
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// rawConstPath resolves a ConstantPath expression (ConstantReadNode or
// ConstantPathNode) to its fully-qualified `::`-joined name with no lexical
// scope prefixing; used for the name a ClassNode/ModuleNode declares,
// which in Ruby never depends on where the `class`/`module` keyword is
// written (`class A::B` always names A::B).
func rawConstPath(n ast.Node) string {
	switch t := n.(type) {
	case *ast.ConstantReadNode:
		return t.Name
	case *ast.ConstantPathNode:
		return rawConstPath(t.Parent) + "::" + t.Name
	default:
		return ""
	}
}

// resolveConstRef resolves a constant *reference* (as opposed to a
// declaration): it first tries the name qualified under the current
// lexical scope, then falls back to a bare top-level lookup, mirroring
// Ruby's lexical constant search without attempting the ancestor-chain
// portion of that search (out of scope here, no class hierarchy is
// tracked). Returns the candidate qualified name and whether it
// resolved to an already-registered constant.
func (w *Walker) resolveConstRef(n ast.Node) (string, bool) {
	switch t := n.(type) {
	case *ast.ConstantReadNode:
		if t.Absolute {
			_, ok := w.Consts.Find(t.Name)
			return t.Name, ok
		}
		if cur := w.scope.CurrentSelfTypeName(); cur != "" {
			candidate := cur + "::" + t.Name
			if _, ok := w.Consts.Find(candidate); ok {
				return candidate, true
			}
		}
		_, ok := w.Consts.Find(t.Name)
		return t.Name, ok
	case *ast.ConstantPathNode:
		parent, _ := w.resolveConstRef(t.Parent)
		full := parent + "::" + t.Name
		_, ok := w.Consts.Find(full)
		return full, ok
	default:
		return "", false
	}
}

func (w *Walker) VisitProgramNode(n *ast.ProgramNode) {
	for _, stmt := range n.Statements {
		w.visitExpr(stmt)
	}
	w.result = nil
}

func (w *Walker) VisitClassNode(n *ast.ClassNode) {
	qualified := rawConstPath(n.ConstantPath)
	parent := w.scope.CurrentSelfTypeName()
	w.Consts.FindOrAdd(qualified, registry.ConstClass, parent, w.path)

	if n.SuperClass != nil {
		w.visitExpr(n.SuperClass)
	}

	w.scope.PushConstant(qualified)
	w.scope.PushVisibility(registry.Public)
	for _, stmt := range n.Body {
		w.visitBodyStmt(stmt)
	}
	w.scope.PopVisibility()
	w.scope.PopConstant()
	w.result = nil
}

func (w *Walker) VisitModuleNode(n *ast.ModuleNode) {
	qualified := rawConstPath(n.ConstantPath)
	parent := w.scope.CurrentSelfTypeName()
	w.Consts.FindOrAdd(qualified, registry.ConstModule, parent, w.path)

	w.scope.PushConstant(qualified)
	w.scope.PushVisibility(registry.Public)
	for _, stmt := range n.Body {
		w.visitBodyStmt(stmt)
	}
	w.scope.PopVisibility()
	w.scope.PopConstant()
	w.result = nil
}

func (w *Walker) VisitSingletonClassNode(n *ast.SingletonClassNode) {
	w.scope.PushSingleton(true)
	for _, stmt := range n.Body {
		w.visitBodyStmt(stmt)
	}
	w.scope.PopSingleton()
	w.result = nil
}

// visitBodyStmt is the entry point for a statement that sits directly
// in a class/module/singleton-class body, where the call-hook
// dispatcher and bare visibility directives (`private`, `public`,
// `protected`) apply. Everything else falls through to ordinary
// expression visiting.
func (w *Walker) visitBodyStmt(stmt ast.Statement) {
	if call, ok := stmt.(*ast.CallNode); ok {
		ctx := &hooks.Context{
			Methods:      w.Methods,
			ReceiverName: w.scope.CurrentSelfTypeName(),
			Path:         w.path,
		}
		if hooks.Dispatch(call, ctx, w.hooks) {
			w.result = nil
			return
		}
		if w.tryVisibilityDirective(call) {
			w.result = nil
			return
		}
		if isBareAttrMacroName(call.Name) && call.Receiver == nil {
			w.addError(diagnostics.NewError(diagnostics.ErrW001, call.Token, call.Name+" with no symbol arguments"))
		}
	}
	w.visitExpr(stmt)
}

// isBareAttrMacroName reports whether name is one of the built-in
// attr_* macros, so a call to one with no symbol arguments (and so
// unmatched by hooks.Dispatch) is still flagged rather than silently
// falling through as an ordinary Call vertex.
func isBareAttrMacroName(name string) bool {
	switch name {
	case config.AttrReaderName, config.AttrWriterName, config.AttrAccessorName:
		return true
	default:
		return false
	}
}

func (w *Walker) tryVisibilityDirective(call *ast.CallNode) bool {
	if call.Receiver != nil {
		return false
	}
	var vis registry.Visibility
	switch call.Name {
	case config.PrivateDirectiveName:
		vis = registry.Private
	case config.ProtectedDirectiveName:
		vis = registry.Protected
	case config.PublicDirectiveName:
		vis = registry.Public
	default:
		return false
	}

	if len(call.Arguments) == 0 {
		w.scope.SetVisibility(vis)
		return true
	}

	receiver := w.scope.CurrentSelfTypeName()
	handled := false
	for _, arg := range call.Arguments {
		sym, ok := arg.(*ast.SymbolNode)
		if !ok {
			continue
		}
		if m, ok := w.Methods.FindAny(receiver, sym.Value, false); ok {
			m.Visibility = vis
			handled = true
		}
	}
	return handled
}

func (w *Walker) VisitSelfNode(n *ast.SelfNode) {
	name := w.scope.CurrentSelfTypeName()
	var selfType rbtype.Type
	if w.scope.InSingleton() {
		selfType = rbtype.Singleton{Name: name}
	} else {
		selfType = rbtype.Instance{Name: name}
	}
	payload := vertex.Payload{StrValue: "self", ConstResolved: true, ResolvedReturnType: selfType}
	tv := w.Vertices.Add("self", vertex.KindConstRead, name, payload)
	w.Nodes.Bind(n, tv)
	w.result = tv
}

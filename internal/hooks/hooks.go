// Package hooks intercepts class-body calls shaped like
// attr_reader/attr_writer/attr_accessor before the visitor would
// otherwise turn them into an ordinary Call vertex, and synthesizes the
// Method registrations they declare instead. The dispatch table is
// data, not a type switch, so adding a new metaprogramming hook never
// touches the visitor's call-handling code.
package hooks

import (
	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/config"
	"github.com/riseshia/rbtypegraph/internal/registry"
)

// Hook pairs a matcher against a CallNode with the handler that
// synthesizes methods from it.
type Hook struct {
	Name    string
	Matches func(call *ast.CallNode) bool
	Handle  func(call *ast.CallNode, ctx *Context)
}

// Context carries everything a handler needs: where in the constant
// tree to bind the synthesized methods, and the registry to bind them
// into. Path is the declaration-site path recorded on each synthesized
// Method.
type Context struct {
	Methods      *registry.MethodRegistry
	ReceiverName string
	Path         string
}

// Table is tried in order; the first matching Hook handles the call and
// dispatch stops. Exported so a host embedding this package can append
// project-specific hooks.
var Table = []Hook{
	{Name: config.AttrReaderName, Matches: isBareCall(config.AttrReaderName), Handle: handleAttrReader},
	{Name: config.AttrWriterName, Matches: isBareCall(config.AttrWriterName), Handle: handleAttrWriter},
	{Name: config.AttrAccessorName, Matches: isBareCall(config.AttrAccessorName), Handle: handleAttrAccessor},
}

// Dispatch tries every hook in table against call and runs the first
// match's handler. It reports whether a hook handled the call; the
// visitor should skip its normal Call-vertex construction when true.
func Dispatch(call *ast.CallNode, ctx *Context, table []Hook) bool {
	for _, h := range table {
		if h.Matches(call) {
			h.Handle(call, ctx)
			return true
		}
	}
	return false
}

// BuildTable returns Table extended with one Hook per entry in cfg,
// letting a project's .rbtypegraph.yml declare its own attr_*-shaped
// macros (e.g. a `property :x` that should behave like attr_accessor)
// without recompiling.
func BuildTable(cfg *config.ProjectConfig) []Hook {
	table := make([]Hook, len(Table), len(Table)+len(cfg.Hooks))
	copy(table, Table)
	for _, hc := range cfg.Hooks {
		var handle func(*ast.CallNode, *Context)
		switch hc.Kind {
		case "reader":
			handle = handleAttrReader
		case "writer":
			handle = handleAttrWriter
		case "accessor":
			handle = handleAttrAccessor
		default:
			continue
		}
		table = append(table, Hook{Name: hc.Name, Matches: isBareCall(hc.Name), Handle: handle})
	}
	return table
}

func isBareCall(name string) func(*ast.CallNode) bool {
	return func(call *ast.CallNode) bool {
		return call.Receiver == nil && call.Name == name && len(symbolArgs(call)) > 0
	}
}

// symbolArgs returns the names of every SymbolNode argument, ignoring
// (rather than rejecting) any non-symbol argument. String arguments
// are ignored too: `attr_reader "x"` declares no method here.
func symbolArgs(call *ast.CallNode) []string {
	var names []string
	for _, arg := range call.Arguments {
		if sym, ok := arg.(*ast.SymbolNode); ok {
			names = append(names, sym.Value)
		}
	}
	return names
}

func handleAttrReader(call *ast.CallNode, ctx *Context) {
	for _, name := range symbolArgs(call) {
		ctx.Methods.Add(ctx.ReceiverName, name, call, ctx.Path, false, registry.Public)
	}
}

func handleAttrWriter(call *ast.CallNode, ctx *Context) {
	for _, name := range symbolArgs(call) {
		m := ctx.Methods.Add(ctx.ReceiverName, name+"=", call, ctx.Path, false, registry.Public)
		if len(m.Args) == 0 {
			m.Args = append(m.Args, registry.MethodArg{Name: "value"})
		}
	}
}

func handleAttrAccessor(call *ast.CallNode, ctx *Context) {
	handleAttrReader(call, ctx)
	handleAttrWriter(call, ctx)
}

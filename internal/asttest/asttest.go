// Package asttest hand-builds AST fragments node-by-node, standing in
// for the Prism-style parser this module never implements. Every
// fixture here is a *ast.ProgramNode a test or the manual-inspection
// CLI can feed straight to a walker.
package asttest

import (
	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/config"
)

// Importing this package means no real parser is in play: every
// fixture it hands out is hand-built rather than parsed from source.
func init() {
	config.IsTestMode = true
}

func int_(v int64) ast.Expression    { return &ast.IntegerNode{Value: v} }
func str_(v string) ast.Expression   { return &ast.StringNode{Value: v} }
func sym_(v string) ast.Expression   { return &ast.SymbolNode{Value: v} }
func true_() ast.Expression          { return &ast.TrueNode{} }
func false_() ast.Expression         { return &ast.FalseNode{} }
func nil_() ast.Expression           { return &ast.NilNode{} }
func self_() ast.Expression          { return &ast.SelfNode{} }
func lvarRead(name string) ast.Expression {
	return &ast.LocalVariableReadNode{Name: name}
}
func lvarWrite(name string, value ast.Expression) ast.Statement {
	return &ast.LocalVariableWriteNode{Name: name, Value: value}
}
func ivarRead(name string) ast.Expression {
	return &ast.InstanceVariableReadNode{Name: name}
}
func ivarWrite(name string, value ast.Expression) ast.Statement {
	return &ast.InstanceVariableWriteNode{Name: name, Value: value}
}
func constRead(name string) ast.Expression { return &ast.ConstantReadNode{Name: name} }
func call(receiver ast.Expression, name string, args ...ast.Expression) ast.Expression {
	return &ast.CallNode{Receiver: receiver, Name: name, Arguments: args}
}
func array(elems ...ast.Expression) ast.Expression {
	return &ast.ArrayNode{Elements: elems}
}
func symEntry(key string, value ast.Expression) *ast.HashEntry {
	return &ast.HashEntry{KeyKind: ast.HashKeySymbol, KeyName: key, Value: value}
}
func required(name string) *ast.Parameter {
	return &ast.Parameter{Name: name, Kind: ast.ParamRequired}
}
func optional(name string, def ast.Expression) *ast.Parameter {
	return &ast.Parameter{Name: name, Kind: ast.ParamOptional, Default: def}
}
func def(name string, params []*ast.Parameter, body ...ast.Statement) ast.Statement {
	return &ast.DefNode{Name: name, Parameters: params, Body: body}
}
func singletonDef(name string, params []*ast.Parameter, body ...ast.Statement) ast.Statement {
	return &ast.DefNode{Name: name, Receiver: &ast.SelfNode{}, Parameters: params, Body: body}
}
func class(name string, super ast.Expression, body ...ast.Statement) ast.Statement {
	return &ast.ClassNode{ConstantPath: &ast.ConstantReadNode{Name: name}, SuperClass: super, Body: body}
}
func program(stmts ...ast.Statement) *ast.ProgramNode {
	return &ast.ProgramNode{Statements: stmts}
}

// Fixtures maps a descriptive name to a ready-to-walk program, used by
// both package tests and the cmd/rbtypegraph manual-inspection CLI.
var Fixtures = map[string]*ast.ProgramNode{
	"attr_accessor":         attrAccessorFixture(),
	"ivar_widening":         ivarWideningFixture(),
	"singleton_new_call":    singletonNewCallFixture(),
	"if_else_branches":      ifElseBranchesFixture(),
	"multi_write_array":     multiWriteArrayFixture(),
	"hash_shorthand_keys":   hashShorthandKeysFixture(),
	"optional_param_widen":  optionalParamWidenFixture(),
	"visibility_directives": visibilityDirectivesFixture(),
	"bare_attr_reader":      bareAttrReaderFixture(),
	"const_ref_before_decl": constRefBeforeDeclFixture(),
	"const_decl_after_ref":  constDeclAfterRefFixture(),
	"lvar_single_write":     lvarSingleWriteFixture(),
	"lvar_reassign":         lvarReassignFixture(),
	"lvar_call_operand":     lvarCallOperandFixture(),
}

// Names returns every fixture name, for CLI usage/listing.
func Names() []string {
	names := make([]string, 0, len(Fixtures))
	for n := range Fixtures {
		names = append(names, n)
	}
	return names
}

// attrAccessorFixture: class Point; attr_accessor :x, :y; end
func attrAccessorFixture() *ast.ProgramNode {
	return program(
		class("Point", nil,
			call(nil, "attr_accessor", sym_("x"), sym_("y")),
		),
	)
}

// ivarWideningFixture: a class whose @value ivar is written once with
// an integer literal and once with a string literal in two different
// methods, so its shared vertex widens to Integer | String.
func ivarWideningFixture() *ast.ProgramNode {
	return program(
		class("Box", nil,
			def("set_int", []*ast.Parameter{}, ivarWrite("value", int_(1))),
			def("set_str", []*ast.Parameter{}, ivarWrite("value", str_("s"))),
			def("value", []*ast.Parameter{}, ivarRead("value")),
		),
	)
}

// singletonNewCallFixture: class A; def self.hello; 1; end; end
// b = A.new
// c = A.hello
func singletonNewCallFixture() *ast.ProgramNode {
	return program(
		class("A", nil,
			singletonDef("hello", []*ast.Parameter{}, int_(1)),
		),
		lvarWrite("b", call(constRead("A"), "new")),
		lvarWrite("c", call(constRead("A"), "hello")),
	)
}

// ifElseBranchesFixture: if true then 1 else "s" end
func ifElseBranchesFixture() *ast.ProgramNode {
	return program(
		&ast.IfNode{
			Predicate:  true_(),
			Statements: []ast.Statement{int_(1)},
			Subsequent: &ast.ElseNode{Statements: []ast.Statement{str_("s")}},
		},
	)
}

// multiWriteArrayFixture: a, b = 1, "s"
func multiWriteArrayFixture() *ast.ProgramNode {
	return program(
		&ast.MultiWriteNode{
			Targets: []*ast.LocalVariableTargetNode{{Name: "a"}, {Name: "b"}},
			Value:   array(int_(1), str_("s")),
		},
	)
}

// hashShorthandKeysFixture: { foo: 1, bar: "s" }
func hashShorthandKeysFixture() *ast.ProgramNode {
	return program(
		&ast.HashNode{Entries: []*ast.HashEntry{
			symEntry("foo", int_(1)),
			symEntry("bar", str_("s")),
		}},
	)
}

// optionalParamWidenFixture: def greet(name = "world"); name; end
func optionalParamWidenFixture() *ast.ProgramNode {
	return program(
		def("greet", []*ast.Parameter{optional("name", str_("world"))}, lvarRead("name")),
	)
}

// visibilityDirectivesFixture: class C; def pub; end; private; def priv; end; end
func visibilityDirectivesFixture() *ast.ProgramNode {
	return program(
		class("C", nil,
			def("pub", []*ast.Parameter{}),
			call(nil, "private"),
			def("priv", []*ast.Parameter{}),
		),
	)
}

// bareAttrReaderFixture: class D; attr_reader; end
// attr_reader with no arguments at all matches no hook (isBareCall
// requires at least one symbol argument), so this exercises the
// fallback diagnostic rather than a synthesized method.
func bareAttrReaderFixture() *ast.ProgramNode {
	return program(
		class("D", nil,
			call(nil, "attr_reader"),
		),
	)
}

// constRefBeforeDeclFixture: a = Later, referencing a constant this
// file never declares. Paired with constDeclAfterRefFixture below to
// exercise a reference resolving once a later-walked file declares it.
func constRefBeforeDeclFixture() *ast.ProgramNode {
	return program(
		lvarWrite("a", constRead("Later")),
	)
}

// constDeclAfterRefFixture: class Later; end
func constDeclAfterRefFixture() *ast.ProgramNode {
	return program(
		class("Later", nil),
	)
}

// lvarSingleWriteFixture: def hello; a = 1; end
func lvarSingleWriteFixture() *ast.ProgramNode {
	return program(
		def("hello", []*ast.Parameter{}, lvarWrite("a", int_(1))),
	)
}

// lvarReassignFixture: def hello; a = 1; a = 2; end
func lvarReassignFixture() *ast.ProgramNode {
	return program(
		def("hello", []*ast.Parameter{},
			lvarWrite("a", int_(1)),
			lvarWrite("a", int_(2)),
		),
	)
}

// lvarCallOperandFixture: def hello; a = 1; a = a + 2; end
func lvarCallOperandFixture() *ast.ProgramNode {
	return program(
		def("hello", []*ast.Parameter{},
			lvarWrite("a", int_(1)),
			lvarWrite("a", call(lvarRead("a"), "+", int_(2))),
		),
	)
}

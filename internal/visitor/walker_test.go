package visitor_test

import (
	"testing"

	"github.com/riseshia/rbtypegraph/internal/asttest"
	"github.com/riseshia/rbtypegraph/internal/diagnostics"
	"github.com/riseshia/rbtypegraph/internal/host"
	"github.com/riseshia/rbtypegraph/internal/registry"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

func walkFixture(t *testing.T, name string) *host.Result {
	t.Helper()
	prog, ok := asttest.Fixtures[name]
	if !ok {
		t.Fatalf("no such fixture %q", name)
	}
	return host.Walk(name, prog)
}

func TestAttrAccessorRegistersReaderAndWriterMethods(t *testing.T) {
	result := walkFixture(t, "attr_accessor")
	if _, ok := result.Methods.FindAny("Point", "x", false); !ok {
		t.Error("attr_accessor :x should register a reader")
	}
	if _, ok := result.Methods.FindAny("Point", "x=", false); !ok {
		t.Error("attr_accessor :x should register a writer")
	}
	if _, ok := result.Methods.FindAny("Point", "y", false); !ok {
		t.Error("attr_accessor :y should register a reader")
	}
}

func TestIvarWideningUnifiesAcrossMethods(t *testing.T) {
	result := walkFixture(t, "ivar_widening")
	var ivarRead *vertex.TypeVertex
	for _, v := range result.Vertices.All() {
		if v.Kind == vertex.KindIvarRead && v.Name == "value" {
			ivarRead = v
		}
	}
	if ivarRead == nil {
		t.Fatal("no IvarRead vertex named value found")
	}
	if got := ivarRead.Infer().String(); got != "Integer | String" {
		t.Errorf("Infer(@value read) = %s, want Integer | String", got)
	}
}

func TestSingletonNewAndSingletonMethodCallsResolveReturnType(t *testing.T) {
	result := walkFixture(t, "singleton_new_call")
	byName := make(map[string]*vertex.TypeVertex)
	for _, v := range result.Vertices.All() {
		if v.Kind == vertex.KindLvar {
			byName[v.Name] = v
		}
	}
	b, ok := byName["b"]
	if !ok {
		t.Fatal("no Lvar vertex named b")
	}
	if got := b.Infer().String(); got != "A" {
		t.Errorf("Infer(b = A.new) = %s, want A", got)
	}
	c, ok := byName["c"]
	if !ok {
		t.Fatal("no Lvar vertex named c")
	}
	// A.hello resolves through a known singleton receiver; hello has no
	// explicit declared return type, but its body is a single value (`1`)
	// with no competing `return`, so InferReturnType reads it straight
	// off that one vertex.
	if got := c.Infer().String(); got != "Integer" {
		t.Errorf("Infer(c = A.hello) = %s, want Integer", got)
	}
}

// vertexSig renders a vertex as "Kind(name)" for order-comparison
// assertions, matching spec.md §8's vertex-list notation.
func vertexSig(v *vertex.TypeVertex) string {
	return v.Kind.String() + "(" + v.Name + ")"
}

func vertexSigs(vs []*vertex.TypeVertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = vertexSig(v)
	}
	return out
}

// TestLvarSingleWriteRegistersInSourceOrder pins spec.md §8 scenario 1:
// `def hello; a = 1; end` registers `[a, 1]`, the Lvar vertex before
// its RHS, with a depending on 1.
func TestLvarSingleWriteRegistersInSourceOrder(t *testing.T) {
	result := walkFixture(t, "lvar_single_write")
	vs := result.Vertices.All()
	got := vertexSigs(vs)
	want := []string{"Lvar(a)", "IntegerLit(1)"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("vertex order = %v, want %v", got, want)
	}
	if len(vs[0].Dependencies) != 1 || vs[0].Dependencies[0] != vs[1] {
		t.Errorf("a.Dependencies = %v, want [1]", vs[0].Dependencies)
	}
}

// TestLvarReassignRegistersEachWriteInOrder pins spec.md §8 scenario 2:
// `def hello; a = 1; a = 2; end` registers `[a0, 1, a1, 2]`, a fresh
// Lvar vertex per assignment rather than mutating one in place.
func TestLvarReassignRegistersEachWriteInOrder(t *testing.T) {
	result := walkFixture(t, "lvar_reassign")
	vs := result.Vertices.All()
	got := vertexSigs(vs)
	want := []string{"Lvar(a)", "IntegerLit(1)", "Lvar(a)", "IntegerLit(2)"}
	for i, w := range want {
		if i >= len(got) || got[i] != w {
			t.Fatalf("vertex order = %v, want %v", got, want)
		}
	}
	if vs[0] == vs[2] {
		t.Error("reassignment should allocate a fresh Lvar vertex, not mutate the first one")
	}
	if len(vs[0].Dependencies) != 1 || vs[0].Dependencies[0] != vs[1] {
		t.Errorf("a0.Dependencies = %v, want [1]", vs[0].Dependencies)
	}
	if len(vs[2].Dependencies) != 1 || vs[2].Dependencies[0] != vs[3] {
		t.Errorf("a1.Dependencies = %v, want [2]", vs[2].Dependencies)
	}
}

// TestLvarCallOperandRegistersContainerBeforeOperands pins spec.md §8
// scenario 3: `def hello; a = 1; a = a + 2; end` registers
// `[a0, 1, a1, plus, a2, 2]` — both the reassigned Lvar and the Call
// vertex are allocated before the expressions that feed them.
func TestLvarCallOperandRegistersContainerBeforeOperands(t *testing.T) {
	result := walkFixture(t, "lvar_call_operand")
	vs := result.Vertices.All()
	got := vertexSigs(vs)
	want := []string{"Lvar(a)", "IntegerLit(1)", "Lvar(a)", "Call(+)", "LvarRead(a)", "IntegerLit(2)"}
	if len(got) != len(want) {
		t.Fatalf("vertex order = %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("vertex order = %v, want %v", got, want)
		}
	}
	a0, one, a1, plus, a2, two := vs[0], vs[1], vs[2], vs[3], vs[4], vs[5]
	if len(a1.Dependencies) != 1 || a1.Dependencies[0] != plus {
		t.Errorf("a1.Dependencies = %v, want [plus]", a1.Dependencies)
	}
	if len(plus.Dependencies) != 2 || plus.Dependencies[0] != a2 || plus.Dependencies[1] != two {
		t.Errorf("plus.Dependencies = %v, want [a2, 2]", plus.Dependencies)
	}
	if len(a2.Dependencies) != 1 || a2.Dependencies[0] != a0 {
		t.Errorf("a2.Dependencies = %v, want [a0]", a2.Dependencies)
	}
	if len(a0.Dependencies) != 1 || a0.Dependencies[0] != one {
		t.Errorf("a0.Dependencies = %v, want [1]", a0.Dependencies)
	}
}

func TestIfElseBranchesUnionTheirValues(t *testing.T) {
	result := walkFixture(t, "if_else_branches")
	var ifTV *vertex.TypeVertex
	for _, v := range result.Vertices.All() {
		if v.Kind == vertex.KindIf {
			ifTV = v
		}
	}
	if ifTV == nil {
		t.Fatal("no If vertex found")
	}
	if got := ifTV.Infer().String(); got != "1 | \"s\"" {
		t.Errorf("Infer(if/else) = %s, want 1 | \"s\"", got)
	}
}

func TestMultiWriteArrayBindsEachTargetToItsPositionalElement(t *testing.T) {
	result := walkFixture(t, "multi_write_array")
	byName := make(map[string]*vertex.TypeVertex)
	for _, v := range result.Vertices.All() {
		if v.Kind == vertex.KindLvar {
			byName[v.Name] = v
		}
	}
	// Lvar always widens its dependency (a = 1 infers Integer, not the
	// literal 1), regardless of how many contributors it has.
	if got := byName["a"].Infer().String(); got != "Integer" {
		t.Errorf("Infer(a) = %s, want Integer", got)
	}
	if got := byName["b"].Infer().String(); got != "String" {
		t.Errorf("Infer(b) = %s, want String", got)
	}
}

func TestHashShorthandKeysProduceSymbolEntries(t *testing.T) {
	result := walkFixture(t, "hash_shorthand_keys")
	var hashTV *vertex.TypeVertex
	for _, v := range result.Vertices.All() {
		if v.Kind == vertex.KindHash {
			hashTV = v
		}
	}
	if hashTV == nil {
		t.Fatal("no Hash vertex found")
	}
	want := `{ foo: Integer, bar: String }`
	if got := hashTV.Infer().String(); got != want {
		t.Errorf("Infer(hash) = %s, want %s", got, want)
	}
}

func TestOptionalParamDefaultSeedsArgType(t *testing.T) {
	result := walkFixture(t, "optional_param_widen")
	m, ok := result.Methods.FindAny("", "greet", false)
	if !ok {
		t.Fatal("no method named greet registered")
	}
	if got := m.InferArgType("name").String(); got != `"world"` {
		t.Errorf("InferArgType(name) = %s, want \"world\"", got)
	}
}

func TestVisibilityDirectiveMutatesLaterMethods(t *testing.T) {
	result := walkFixture(t, "visibility_directives")
	pub, ok := result.Methods.FindAny("C", "pub", false)
	if !ok {
		t.Fatal("no method named pub registered")
	}
	if pub.Visibility != registry.Public {
		t.Errorf("pub.Visibility = %v, want Public", pub.Visibility)
	}
	priv, ok := result.Methods.FindAny("C", "priv", false)
	if !ok {
		t.Fatal("no method named priv registered")
	}
	if priv.Visibility != registry.Private {
		t.Errorf("priv.Visibility = %v, want Private", priv.Visibility)
	}
}

func TestWalkReturnsNoDiagnosticsForWellFormedFixtures(t *testing.T) {
	for _, name := range asttest.Names() {
		if name == "bare_attr_reader" {
			continue
		}
		result := walkFixture(t, name)
		if len(result.Diagnostics) != 0 {
			t.Errorf("fixture %q raised diagnostics: %v", name, result.Diagnostics)
		}
	}
}

func TestBareAttrReaderRaisesW001(t *testing.T) {
	result := walkFixture(t, "bare_attr_reader")
	if len(result.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v, want exactly one W001", result.Diagnostics)
	}
	if got := result.Diagnostics[0].Code; got != diagnostics.ErrW001 {
		t.Errorf("Diagnostics[0].Code = %s, want W001", got)
	}
	if _, ok := result.Methods.FindAny("D", "attr_reader", false); ok {
		t.Error("a bare attr_reader call should not synthesize a method")
	}
}

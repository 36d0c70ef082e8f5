// Package host is the entry point an embedding program (a CLI, an
// editor integration, a build step) drives: it owns the registry
// bundle for a project, hands each file to a Parser, and walks the
// result. The concrete Parser is an external collaborator; this
// package only defines the interface it expects.
package host

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/riseshia/rbtypegraph/internal/ast"
	"github.com/riseshia/rbtypegraph/internal/config"
	"github.com/riseshia/rbtypegraph/internal/diagnostics"
	"github.com/riseshia/rbtypegraph/internal/hooks"
	"github.com/riseshia/rbtypegraph/internal/registry"
	"github.com/riseshia/rbtypegraph/internal/utils"
	"github.com/riseshia/rbtypegraph/internal/vertex"
	"github.com/riseshia/rbtypegraph/internal/visitor"
)

// ParseResult is what a Parser hands back for one file: its AST root
// plus any diagnostics raised during parsing itself (syntax errors),
// which the host merges with walk-time diagnostics into one report.
type ParseResult interface {
	Program() *ast.ProgramNode
	Diagnostics() []*diagnostics.DiagnosticError
}

// Parser turns source bytes into a ParseResult. Implemented outside
// this module (a Prism-style parser for the target language).
type Parser interface {
	Parse(path string, source []byte) (ParseResult, error)
}

// Registries bundles the three public registries plus the node
// registry the visitor needs, so a multi-file project walk can share
// one set of them across files (constants and methods declared in one
// file are visible while walking the next).
type Registries struct {
	Vertices *registry.TypeVertexRegistry
	Consts   *registry.ConstRegistry
	Methods  *registry.MethodRegistry
	Nodes    *registry.NodeRegistry
}

// NewRegistries returns an empty bundle.
func NewRegistries() *Registries {
	return &Registries{
		Vertices: registry.NewTypeVertexRegistry(),
		Consts:   registry.NewConstRegistry(),
		Methods:  registry.NewMethodRegistry(),
		Nodes:    registry.NewNodeRegistry(),
	}
}

// Clear empties every registry in the bundle, as required between
// walks of unrelated projects.
func (r *Registries) Clear() {
	r.Vertices.Clear()
	r.Consts.Clear()
	r.Methods.Clear()
	r.Nodes.Clear()
}

// Host drives parsing and walking for a project sharing one
// Registries bundle.
type Host struct {
	Parser     Parser
	Registries *Registries
	hooks      []hooks.Hook
}

// New builds a Host with a fresh, empty registry bundle and the
// built-in attr_* hook table.
func New(parser Parser) *Host {
	return &Host{Parser: parser, Registries: NewRegistries(), hooks: hooks.Table}
}

// NewFromProjectDir builds a Host the same way as New, but first loads
// dir's .rbtypegraph.yml (if any) and extends the hook table with any
// project-specific macros it declares.
func NewFromProjectDir(parser Parser, dir string) (*Host, error) {
	cfg, err := config.LoadProjectConfig(filepath.Join(dir, config.ProjectConfigFileName))
	if err != nil {
		return nil, err
	}
	return &Host{Parser: parser, Registries: NewRegistries(), hooks: hooks.BuildTable(cfg)}, nil
}

// ModuleNameFor derives the module name a declaration at path should
// be attributed to, stripping any recognized source extension. Paths
// with no recognized source extension (not `.rb`/`.rbs`) are returned
// as their base name unchanged, same as ExtractModuleName's own no-op
// fallback, but checked explicitly here so a caller walking a mixed
// directory tree can tell the two cases apart if it needs to.
func ModuleNameFor(path string) string {
	if !config.HasSourceExt(path) {
		return filepath.Base(path)
	}
	return utils.ExtractModuleName(path)
}

// WalkResult is the outcome of walking a single file: the run's unique
// id (useful for correlating log lines and cache entries across a
// long-lived host process) and every diagnostic raised by parsing or
// walking.
type WalkResult struct {
	RunID       uuid.UUID
	Diagnostics []*diagnostics.DiagnosticError
}

// Walk parses and walks one file's source into the host's shared
// registry bundle.
func (h *Host) Walk(path string, source []byte) (WalkResult, error) {
	runID := uuid.New()

	parsed, err := h.Parser.Parse(path, source)
	if err != nil {
		return WalkResult{RunID: runID}, err
	}

	var diags []*diagnostics.DiagnosticError
	diags = append(diags, parsed.Diagnostics()...)

	w := visitor.NewWithHooks(h.Registries.Vertices, h.Registries.Consts, h.Registries.Methods, h.Registries.Nodes, path, h.hooks)
	diags = append(diags, w.Walk(parsed.Program())...)

	return WalkResult{RunID: runID, Diagnostics: diags}, nil
}

// Result bundles a single, self-contained walk's registries with its
// run id and diagnostics: unlike Host, each call to Walk below starts
// from empty registries rather than sharing them across files.
type Result struct {
	*Registries
	RunID       uuid.UUID
	Diagnostics []*diagnostics.DiagnosticError
}

// Walk runs an already-parsed program through a fresh registry bundle
// and returns it, for callers with no reason to share registries
// across files (tests, and the manual-inspection CLI driving
// hand-built asttest fixtures).
func Walk(path string, prog *ast.ProgramNode) *Result {
	regs := NewRegistries()
	w := visitor.New(regs.Vertices, regs.Consts, regs.Methods, regs.Nodes, path)
	diags := w.Walk(prog)
	return &Result{Registries: regs, RunID: uuid.New(), Diagnostics: diags}
}

// UnresolvedConstRefs re-checks every ConstRead vertex against the
// current state of the const registry and reports the ones that still
// don't name a known class or module. This runs after every file in a
// project has been walked, not per-file: a reference can point at a
// constant declared in a file walked later, so per-file walking cannot
// tell a genuinely unresolved path from one that simply hasn't been
// seen yet.
func (h *Host) UnresolvedConstRefs() []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError
	for _, v := range h.Registries.Vertices.All() {
		if v.Kind != vertex.KindConstRead {
			continue
		}
		if _, ok := h.Registries.Consts.Find(v.Payload.StrValue); ok {
			continue
		}
		diags = append(diags, diagnostics.NewError(diagnostics.ErrW002, v.Payload.ConstToken, v.Payload.StrValue+" never resolved to a known class or module"))
	}
	return diags
}

// DanglingMethods returns every method with no surviving declaration
// site, for a host to decide whether to drop them from the registry
// (e.g. after a file was deleted from disk and re-walked as empty).
func (h *Host) DanglingMethods() []*registry.Method {
	var dangling []*registry.Method
	for _, m := range h.Registries.Methods.All() {
		if m.IsDangling() {
			dangling = append(dangling, m)
		}
	}
	return dangling
}

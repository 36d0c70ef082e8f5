// Package ast defines the AST node and visitor contract the type-vertex
// walker consumes. The concrete parser (a Prism-style parser for the
// target Ruby-like language) is an external collaborator and is not
// implemented here; node kind names mirror Prism's own vocabulary
// (ArrayNode, CallNode, DefNode, ...) since vertex names like
// "Prism::ArrayNode" are part of the external contract.
package ast

import "github.com/riseshia/rbtypegraph/internal/token"

// Node is the base interface for every AST node the visitor can accept.
type Node interface {
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node appearing in a body (class/module/method/top
// level). The target language makes no syntactic distinction between
// statements and expressions (everything is an expression), so
// Statement is simply an alias kept for readability at call sites that
// only ever see bodies.
type Statement = Node

// Expression is a Node that produces a value.
type Expression = Node

// ProgramNode is the root of one file's AST.
type ProgramNode struct {
	Token      token.Token
	Statements []Statement
}

func (n *ProgramNode) GetToken() token.Token { return n.Token }
func (n *ProgramNode) Accept(v Visitor)      { v.VisitProgramNode(n) }

// ClassNode represents `class Name ... end` (optionally `class Name <
// Super ... end`). ConstantPath is the class's own name expression
// (ConstantReadNode or ConstantPathNode); SuperClass is nil when no
// superclass is given.
type ClassNode struct {
	Token        token.Token
	ConstantPath Node
	SuperClass   Expression
	Body         []Statement
}

func (n *ClassNode) GetToken() token.Token { return n.Token }
func (n *ClassNode) Accept(v Visitor)      { v.VisitClassNode(n) }

// ModuleNode represents `module Name ... end`.
type ModuleNode struct {
	Token        token.Token
	ConstantPath Node
	Body         []Statement
}

func (n *ModuleNode) GetToken() token.Token { return n.Token }
func (n *ModuleNode) Accept(v Visitor)      { v.VisitModuleNode(n) }

// SingletonClassNode represents `class << self ... end`.
type SingletonClassNode struct {
	Token token.Token
	Body  []Statement
}

func (n *SingletonClassNode) GetToken() token.Token { return n.Token }
func (n *SingletonClassNode) Accept(v Visitor)      { v.VisitSingletonClassNode(n) }

// ParamKind enumerates the parameter shapes a method definition can
// declare.
type ParamKind int

const (
	ParamRequired ParamKind = iota
	ParamOptional
	ParamKeywordRequired
	ParamKeywordOptional
	ParamRest
	ParamBlock
)

// Parameter is one entry in a DefNode's parameter list.
type Parameter struct {
	Token   token.Token
	Name    string
	Kind    ParamKind
	Default Expression // only for ParamOptional / ParamKeywordOptional
}

// DefNode represents a method definition. Receiver is non-nil only for
// `def self.name` (singleton method) definitions; its value is the
// SelfNode.
type DefNode struct {
	Token      token.Token
	Name       string
	Receiver   Node
	Parameters []*Parameter
	Body       []Statement
}

func (n *DefNode) GetToken() token.Token { return n.Token }
func (n *DefNode) Accept(v Visitor)      { v.VisitDefNode(n) }

// SelfNode represents the bare `self` keyword.
type SelfNode struct {
	Token token.Token
}

func (n *SelfNode) GetToken() token.Token { return n.Token }
func (n *SelfNode) Accept(v Visitor)      { v.VisitSelfNode(n) }

// ReturnNode represents `return` / `return expr`.
type ReturnNode struct {
	Token token.Token
	Value Expression // nil when bare `return`
}

func (n *ReturnNode) GetToken() token.Token { return n.Token }
func (n *ReturnNode) Accept(v Visitor)      { v.VisitReturnNode(n) }

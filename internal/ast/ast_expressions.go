package ast

import "github.com/riseshia/rbtypegraph/internal/token"

// IntegerNode represents an integer literal, e.g. 1.
type IntegerNode struct {
	Token token.Token
	Value int64
}

func (n *IntegerNode) GetToken() token.Token { return n.Token }
func (n *IntegerNode) Accept(v Visitor)      { v.VisitIntegerNode(n) }

// StringNode represents a plain string literal, e.g. "foo".
type StringNode struct {
	Token token.Token
	Value string
}

func (n *StringNode) GetToken() token.Token { return n.Token }
func (n *StringNode) Accept(v Visitor)      { v.VisitStringNode(n) }

// SymbolNode represents a symbol literal, e.g. :hoge.
type SymbolNode struct {
	Token token.Token
	Value string
}

func (n *SymbolNode) GetToken() token.Token { return n.Token }
func (n *SymbolNode) Accept(v Visitor)      { v.VisitSymbolNode(n) }

// TrueNode / FalseNode / NilNode represent the three keyword literals.
type TrueNode struct{ Token token.Token }
type FalseNode struct{ Token token.Token }
type NilNode struct{ Token token.Token }

func (n *TrueNode) GetToken() token.Token  { return n.Token }
func (n *TrueNode) Accept(v Visitor)       { v.VisitTrueNode(n) }
func (n *FalseNode) GetToken() token.Token { return n.Token }
func (n *FalseNode) Accept(v Visitor)      { v.VisitFalseNode(n) }
func (n *NilNode) GetToken() token.Token   { return n.Token }
func (n *NilNode) Accept(v Visitor)        { v.VisitNilNode(n) }

// InterpolatedStringNode represents a string with embedded expressions,
// e.g. "foo#{bar}". Parts is the concatenation of static fragments
// (StringNode) and embedded expressions, in source order.
type InterpolatedStringNode struct {
	Token token.Token
	Parts []Expression
}

func (n *InterpolatedStringNode) GetToken() token.Token { return n.Token }
func (n *InterpolatedStringNode) Accept(v Visitor)      { v.VisitInterpolatedStringNode(n) }

// ArrayNode represents an array literal, e.g. [1, 2, 3].
type ArrayNode struct {
	Token    token.Token
	Elements []Expression
}

func (n *ArrayNode) GetToken() token.Token { return n.Token }
func (n *ArrayNode) Accept(v Visitor)      { v.VisitArrayNode(n) }

// HashKeyKind distinguishes a hash entry's key shape for rendering
// (`foo:` shorthand vs `"bar" =>`).
type HashKeyKind int

const (
	HashKeySymbol HashKeyKind = iota
	HashKeyString
)

// HashEntry is one key/value pair of a HashNode, in source order.
type HashEntry struct {
	KeyKind HashKeyKind
	KeyName string // symbol name or string contents
	Key     Expression
	Value   Expression
}

// HashNode represents a hash literal, e.g. { foo: 1, "bar" => 2 }.
type HashNode struct {
	Token   token.Token
	Entries []*HashEntry
}

func (n *HashNode) GetToken() token.Token { return n.Token }
func (n *HashNode) Accept(v Visitor)      { v.VisitHashNode(n) }

// LocalVariableWriteNode represents a local-variable assignment,
// e.g. a = 1.
type LocalVariableWriteNode struct {
	Token token.Token
	Name  string
	Value Expression
}

func (n *LocalVariableWriteNode) GetToken() token.Token { return n.Token }
func (n *LocalVariableWriteNode) Accept(v Visitor)      { v.VisitLocalVariableWriteNode(n) }

// LocalVariableReadNode represents reading a local variable, e.g. a.
type LocalVariableReadNode struct {
	Token token.Token
	Name  string
}

func (n *LocalVariableReadNode) GetToken() token.Token { return n.Token }
func (n *LocalVariableReadNode) Accept(v Visitor)      { v.VisitLocalVariableReadNode(n) }

// LocalVariableTargetNode is one target of a MultiWriteNode, e.g. the
// `a` or `b` in `a, b = 1, 2`.
type LocalVariableTargetNode struct {
	Token token.Token
	Name  string
}

func (n *LocalVariableTargetNode) GetToken() token.Token { return n.Token }
func (n *LocalVariableTargetNode) Accept(v Visitor)      { v.VisitLocalVariableTargetNode(n) }

// MultiWriteNode represents multiple assignment, e.g. a, b = 1, 2.
type MultiWriteNode struct {
	Token   token.Token
	Targets []*LocalVariableTargetNode
	Value   Expression // an ArrayNode for a multi-valued RHS, or any single expression
}

func (n *MultiWriteNode) GetToken() token.Token { return n.Token }
func (n *MultiWriteNode) Accept(v Visitor)      { v.VisitMultiWriteNode(n) }

// InstanceVariableWriteNode represents @name = value.
type InstanceVariableWriteNode struct {
	Token token.Token
	Name  string
	Value Expression
}

func (n *InstanceVariableWriteNode) GetToken() token.Token { return n.Token }
func (n *InstanceVariableWriteNode) Accept(v Visitor)      { v.VisitInstanceVariableWriteNode(n) }

// InstanceVariableReadNode represents reading @name.
type InstanceVariableReadNode struct {
	Token token.Token
	Name  string
}

func (n *InstanceVariableReadNode) GetToken() token.Token { return n.Token }
func (n *InstanceVariableReadNode) Accept(v Visitor)      { v.VisitInstanceVariableReadNode(n) }

// ConstantReadNode represents a bare constant reference, e.g. A or
// ::A (Absolute indicates the leading ::).
type ConstantReadNode struct {
	Token    token.Token
	Name     string
	Absolute bool
}

func (n *ConstantReadNode) GetToken() token.Token { return n.Token }
func (n *ConstantReadNode) Accept(v Visitor)      { v.VisitConstantReadNode(n) }

// ConstantPathNode represents a qualified constant path, e.g. A::B.
// Parent is the left-hand side (ConstantReadNode or ConstantPathNode).
type ConstantPathNode struct {
	Token  token.Token
	Parent Node
	Name   string
}

func (n *ConstantPathNode) GetToken() token.Token { return n.Token }
func (n *ConstantPathNode) Accept(v Visitor)      { v.VisitConstantPathNode(n) }

// CallNode represents a method call, e.g. a + 1, foo.bar(1), attr_reader :x.
// Receiver is nil for an implicit-self call (e.g. a top-level `puts x`
// or a bare class-scope `attr_reader`).
type CallNode struct {
	Token     token.Token
	Receiver  Expression
	Name      string
	Arguments []Expression
}

func (n *CallNode) GetToken() token.Token { return n.Token }
func (n *CallNode) Accept(v Visitor)      { v.VisitCallNode(n) }

// IfNode represents an if/else expression. Subsequent is an *ElseNode
// or nil (no else branch).
type IfNode struct {
	Token      token.Token
	Predicate  Expression
	Statements []Statement
	Subsequent *ElseNode
}

func (n *IfNode) GetToken() token.Token { return n.Token }
func (n *IfNode) Accept(v Visitor)      { v.VisitIfNode(n) }

// ElseNode is the else branch of an IfNode.
type ElseNode struct {
	Token      token.Token
	Statements []Statement
}

func (n *ElseNode) GetToken() token.Token { return n.Token }
func (n *ElseNode) Accept(v Visitor)      { v.VisitElseNode(n) }

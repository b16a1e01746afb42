// Package ast defines the syntax tree produced by the FibLang parser.
//
// The tree mirrors the grammar rule-for-rule, except that a rule whose
// optional suffix is absent contributes no node of its own: a ternary
// with no `?:` is just its condition, a condition with no `<` is just
// its operand, and so on. Nodes are read-only after parsing.
package ast

type NodeType string

const (
	NodeStatements    NodeType = "Statements"
	NodeDefinition    NodeType = "Definition"
	NodeTernary       NodeType = "Ternary"
	NodeCondition     NodeType = "Condition"
	NodeInfix         NodeType = "Infix"
	NodeCall          NodeType = "Call"
	NodeForLoop       NodeType = "ForLoop"
	NodeIdentifier    NodeType = "Identifier"
	NodeNumberLiteral NodeType = "NumberLiteral"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

// Statements is the program root: zero or more definitions or
// expressions evaluated in order.
type Statements struct {
	Body []Node
}

func (*Statements) NodeType() NodeType { return NodeStatements }
func (*Statements) isNode()            {}

// Definition binds Name to a one-parameter function whose body is Body.
type Definition struct {
	Name  string
	Param string
	Body  Node
}

func (*Definition) NodeType() NodeType { return NodeDefinition }
func (*Definition) isNode()            {}

// Ternary is `cond ? then : else`. Both branches are always present;
// a bare condition never produces a Ternary node.
type Ternary struct {
	Cond Node
	Then Node
	Else Node
}

func (*Ternary) NodeType() NodeType { return NodeTernary }
func (*Ternary) isNode()            {}

// Condition is `left < right`, the language's only relational form.
type Condition struct {
	Left  Node
	Right Node
}

func (*Condition) NodeType() NodeType { return NodeCondition }
func (*Condition) isNode()            {}

// InfixTerm is one `op operand` step of an additive chain.
type InfixTerm struct {
	Op      string // "+" or "-"
	Operand Node
}

// Infix is a left-associative additive chain with at least one term
// after First.
type Infix struct {
	First Node
	Rest  []InfixTerm
}

func (*Infix) NodeType() NodeType { return NodeInfix }
func (*Infix) isNode()            {}

// Call applies Callee to a single Argument. A primary without a call
// suffix never produces a Call node.
type Call struct {
	Callee   Node
	Argument Node
}

func (*Call) NodeType() NodeType { return NodeCall }
func (*Call) isNode()            {}

// ForLoop binds Var to each integer in the inclusive range [From, To]
// and evaluates Body once per value.
type ForLoop struct {
	Var  string
	From Node
	To   Node
	Body Node
}

func (*ForLoop) NodeType() NodeType { return NodeForLoop }
func (*ForLoop) isNode()            {}

type Identifier struct {
	Name string
}

func (*Identifier) NodeType() NodeType { return NodeIdentifier }
func (*Identifier) isNode()            {}

// NumberLiteral keeps the matched digit run as text; conversion to an
// integer happens at evaluation time so that out-of-range literals
// surface as evaluation failures.
type NumberLiteral struct {
	Text string
}

func (*NumberLiteral) NodeType() NodeType { return NodeNumberLiteral }
func (*NumberLiteral) isNode()            {}

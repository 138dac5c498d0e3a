package ast

import "github.com/t14raptor/jsparse/token"

type (
	Expressions []Expr

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	// ArrayLiteral elements are nil where the literal has a hole.
	ArrayLiteral struct {
		Span
		Value Expressions
	}

	// AssignExpression covers '=' and the compound assignments. Operator is
	// token.Assign for '=' and the binary operator otherwise, so a += b
	// has Operator token.Plus.
	AssignExpression struct {
		Span
		Operator token.Token
		Left     Expr
		Right    Expr
	}

	BinaryExpression struct {
		Span
		Operator token.Token
		Left     Expr
		Right    Expr
	}

	CallExpression struct {
		Span
		Callee       Expr
		ArgumentList Expressions
	}

	ConditionalExpression struct {
		Span
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	DotExpression struct {
		Span
		Left       Expr
		Identifier *Identifier
	}

	// GroupExpression is a parenthesized expression.
	GroupExpression struct {
		Span
		Expression Expr
	}

	IndexExpression struct {
		Span
		Left  Expr
		Index Expr
	}

	// NewExpression is new Callee or new Callee(ArgumentList). ArgumentList
	// is nil when no arguments were given, including for new Callee().
	NewExpression struct {
		Span
		Callee       Expr
		ArgumentList Expressions
	}

	ObjectLiteral struct {
		Span
		Value []Property
	}

	SequenceExpression struct {
		Span
		Sequence Expressions
	}

	// UnaryExpression covers delete, void, typeof, '!', '~', and the unary
	// '+' and '-' (token.UnaryPlus and token.UnaryMinus).
	UnaryExpression struct {
		Span
		Operator token.Token
		Operand  Expr
	}

	UpdateExpression struct {
		Span
		Operator token.Token // token.Increment or token.Decrement
		Operand  Expr
		Postfix  bool
	}
)

func (e Expressions) nodes() []Node {
	nodes := make([]Node, 0, len(e))
	for _, expr := range e {
		nodes = appendNode(nodes, expr)
	}
	return nodes
}

func (n *ArrayLiteral) Children() []Node { return n.Value.nodes() }

func (n *AssignExpression) Children() []Node { return []Node{n.Left, n.Right} }

func (n *BinaryExpression) Children() []Node { return []Node{n.Left, n.Right} }

func (n *CallExpression) Children() []Node {
	return append([]Node{n.Callee}, n.ArgumentList.nodes()...)
}

func (n *ConditionalExpression) Children() []Node {
	return []Node{n.Test, n.Consequent, n.Alternate}
}

func (n *DotExpression) Children() []Node { return []Node{n.Left, n.Identifier} }

func (n *GroupExpression) Children() []Node { return []Node{n.Expression} }

func (n *IndexExpression) Children() []Node { return []Node{n.Left, n.Index} }

func (n *NewExpression) Children() []Node {
	return append([]Node{n.Callee}, n.ArgumentList.nodes()...)
}

func (n *ObjectLiteral) Children() []Node {
	nodes := make([]Node, 0, len(n.Value))
	for _, p := range n.Value {
		nodes = append(nodes, p)
	}
	return nodes
}

func (n *SequenceExpression) Children() []Node { return n.Sequence.nodes() }

func (n *UnaryExpression) Children() []Node { return []Node{n.Operand} }

func (n *UpdateExpression) Children() []Node { return []Node{n.Operand} }

func (*ArrayLiteral) _expr()          {}
func (*AssignExpression) _expr()      {}
func (*BinaryExpression) _expr()      {}
func (*CallExpression) _expr()        {}
func (*ConditionalExpression) _expr() {}
func (*DotExpression) _expr()         {}
func (*GroupExpression) _expr()       {}
func (*IndexExpression) _expr()       {}
func (*NewExpression) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}

package ast

import "github.com/t14raptor/jsparse/token"

type (
	Statements []Stmt

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	BlockStatement struct {
		Span
		List Statements
	}

	// BranchStatement is a break or a continue.
	BranchStatement struct {
		Span
		Token token.Token // token.Break or token.Continue
		Label *Identifier

		// Target is the loop, switch, or labelled statement the branch
		// leaves or continues. For a labelled branch it is the statement
		// the label names, with any nested labels stripped.
		Target Stmt
	}

	CaseStatement struct {
		Span
		Test       Expr // nil for default
		Consequent Statements
	}

	CatchStatement struct {
		Span
		Parameter *Identifier
		Guard     Expr
		Body      *BlockStatement
	}

	DebuggerStatement struct {
		Span
	}

	DoWhileStatement struct {
		Span
		Body Stmt
		Test Expr
	}

	EmptyStatement struct {
		Span
	}

	ExpressionStatement struct {
		Span
		Expression Expr
	}

	ForStatement struct {
		Span
		// Initializer is an Expr, a *VariableDeclaration, or nil.
		Initializer Node
		Test        Expr
		Update      Expr
		Body        Stmt
	}

	ForInStatement struct {
		Span
		// Iterator is the assigned-to expression, or the single declarator
		// of Declaration.
		Iterator    Node
		Declaration *VariableDeclaration
		Object      Expr
		Body        Stmt
	}

	// FunctionDeclaration wraps a function in statement position.
	FunctionDeclaration struct {
		Span
		Function *FunctionLiteral
	}

	IfStatement struct {
		Span
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}

	LabelledStatement struct {
		Span
		Label     *Identifier
		Statement Stmt
	}

	ReturnStatement struct {
		Span
		Argument Expr
	}

	SwitchStatement struct {
		Span
		Discriminant Expr
		Default      int // index of the default case in Body, or -1
		Body         []*CaseStatement
	}

	ThrowStatement struct {
		Span
		Argument Expr
	}

	TryStatement struct {
		Span
		Body    *BlockStatement
		Catches []*CatchStatement
		Finally *BlockStatement
	}

	VariableDeclaration struct {
		Span
		Token token.Token // token.Var or token.Const
		List  []*VariableDeclarator
	}

	WhileStatement struct {
		Span
		Test Expr
		Body Stmt
	}

	WithStatement struct {
		Span
		Object Expr
		Body   Stmt
	}
)

func (s Statements) nodes() []Node {
	nodes := make([]Node, 0, len(s))
	for _, stmt := range s {
		nodes = appendNode(nodes, stmt)
	}
	return nodes
}

func (n *BlockStatement) Children() []Node { return n.List.nodes() }

func (n *BranchStatement) Children() []Node { return appendNode(nil, n.Label) }

func (n *CaseStatement) Children() []Node {
	return append(appendNode(nil, n.Test), n.Consequent.nodes()...)
}

func (n *CatchStatement) Children() []Node {
	return appendNode(appendNode(appendNode(nil, n.Parameter), n.Guard), n.Body)
}

func (n *DebuggerStatement) Children() []Node { return nil }

func (n *DoWhileStatement) Children() []Node { return []Node{n.Body, n.Test} }

func (n *EmptyStatement) Children() []Node { return nil }

func (n *ExpressionStatement) Children() []Node { return []Node{n.Expression} }

func (n *ForStatement) Children() []Node {
	nodes := appendNode(nil, n.Initializer)
	nodes = appendNode(nodes, n.Test)
	nodes = appendNode(nodes, n.Update)
	return append(nodes, n.Body)
}

func (n *ForInStatement) Children() []Node {
	var nodes []Node
	if n.Declaration != nil {
		nodes = append(nodes, n.Declaration)
	} else {
		nodes = appendNode(nodes, n.Iterator)
	}
	return append(nodes, n.Object, n.Body)
}

func (n *FunctionDeclaration) Children() []Node { return []Node{n.Function} }

func (n *IfStatement) Children() []Node {
	return appendNode([]Node{n.Test, n.Consequent}, n.Alternate)
}

func (n *LabelledStatement) Children() []Node { return []Node{n.Label, n.Statement} }

func (n *ReturnStatement) Children() []Node { return appendNode(nil, n.Argument) }

func (n *SwitchStatement) Children() []Node {
	nodes := []Node{n.Discriminant}
	for _, c := range n.Body {
		nodes = append(nodes, c)
	}
	return nodes
}

func (n *ThrowStatement) Children() []Node { return appendNode(nil, n.Argument) }

func (n *TryStatement) Children() []Node {
	nodes := []Node{n.Body}
	for _, c := range n.Catches {
		nodes = append(nodes, c)
	}
	return appendNode(nodes, n.Finally)
}

func (n *VariableDeclaration) Children() []Node {
	nodes := make([]Node, 0, len(n.List))
	for _, d := range n.List {
		nodes = append(nodes, d)
	}
	return nodes
}

func (n *WhileStatement) Children() []Node { return []Node{n.Test, n.Body} }

func (n *WithStatement) Children() []Node { return []Node{n.Object, n.Body} }

func (*BlockStatement) _stmt()      {}
func (*BranchStatement) _stmt()     {}
func (*DebuggerStatement) _stmt()   {}
func (*DoWhileStatement) _stmt()    {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*FunctionDeclaration) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*LabelledStatement) _stmt()   {}
func (*ReturnStatement) _stmt()     {}
func (*SwitchStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*VariableDeclaration) _stmt() {}
func (*WhileStatement) _stmt()      {}
func (*WithStatement) _stmt()       {}

package ast

type VariableDeclarator struct {
	Span
	Name        *Identifier
	Initializer Expr
	ReadOnly    bool // declared with const
}

func (n *VariableDeclarator) Children() []Node {
	return appendNode([]Node{n.Name}, n.Initializer)
}

package ast

type Identifier struct {
	Span
	Name string
}

func (*Identifier) Children() []Node { return nil }

func (*Identifier) _expr() {}

package ast

type (
	BooleanLiteral struct {
		Span
		Value bool
	}

	NullLiteral struct {
		Span
	}

	NumberLiteral struct {
		Span
		Value   float64
		Literal string
	}

	RegExpLiteral struct {
		Span
		Literal string
		Pattern string
		Flags   string
	}

	StringLiteral struct {
		Span
		Value   string
		Literal string // with quotes and escapes as written
	}

	ThisExpression struct {
		Span
	}
)

func (*BooleanLiteral) Children() []Node { return nil }
func (*NullLiteral) Children() []Node    { return nil }
func (*NumberLiteral) Children() []Node  { return nil }
func (*RegExpLiteral) Children() []Node  { return nil }
func (*StringLiteral) Children() []Node  { return nil }
func (*ThisExpression) Children() []Node { return nil }

func (*BooleanLiteral) _expr() {}
func (*NullLiteral) _expr()    {}
func (*NumberLiteral) _expr()  {}
func (*RegExpLiteral) _expr()  {}
func (*StringLiteral) _expr()  {}
func (*ThisExpression) _expr() {}

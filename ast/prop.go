package ast

type (
	// Property is an entry of an object literal: a *PropertyInit or an
	// accessor *FunctionLiteral.
	Property interface {
		Node
		_property()
	}

	// PropertyInit is a key: value entry. Key is an *Identifier, a
	// *NumberLiteral, or a *StringLiteral.
	PropertyInit struct {
		Span
		Key   Expr
		Value Expr
	}
)

// KeyName returns the property name the key spells.
func (n *PropertyInit) KeyName() string {
	switch k := n.Key.(type) {
	case *Identifier:
		return k.Name
	case *StringLiteral:
		return k.Value
	case *NumberLiteral:
		return k.Literal
	}
	return ""
}

func (n *PropertyInit) Children() []Node { return []Node{n.Key, n.Value} }

func (*PropertyInit) _property() {}

package ast

// FunctionKind tells plain functions from object literal accessors.
type FunctionKind int

const (
	FunctionKindNormal FunctionKind = iota
	FunctionKindGetter
	FunctionKindSetter
)

// FunctionForm records where a function appeared.
type FunctionForm int

const (
	// FormDeclared is a function statement directly in a script or
	// function body.
	FormDeclared FunctionForm = iota
	// FormExpressed is a function in expression position.
	FormExpressed
	// FormStatement is a function statement nested inside another
	// statement, such as a block or an if.
	FormStatement
)

func (f FunctionForm) String() string {
	switch f {
	case FormDeclared:
		return "declared"
	case FormExpressed:
		return "expressed"
	case FormStatement:
		return "statement"
	}
	return "unknown"
}

type FunctionLiteral struct {
	Span
	Kind          FunctionKind
	Form          FunctionForm
	Name          *Identifier
	ParameterList []*Identifier
	Body          *Program
}

func (n *FunctionLiteral) Children() []Node {
	nodes := appendNode(nil, n.Name)
	for _, p := range n.ParameterList {
		nodes = append(nodes, p)
	}
	return append(nodes, n.Body)
}

func (*FunctionLiteral) _expr()     {}
func (*FunctionLiteral) _property() {}

// Package ast declares the syntax tree produced by the parser.
//
// Every node records the half-open byte range [Idx0, Idx1) of the source it
// was parsed from and the line it starts on. A node's range always covers
// the ranges of its children.
package ast

// Idx is a byte offset into the parsed source.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
	// Line returns the 1-based line the node starts on.
	Line() int
	// Children returns the direct child nodes in source order. Elided array
	// elements are skipped.
	Children() []Node
}

// Span is embedded in every node and tracks its source range.
type Span struct {
	From, To Idx
	Row      int
}

func NewSpan(from, to Idx, line int) Span {
	return Span{From: from, To: to, Row: line}
}

func (s *Span) Idx0() Idx { return s.From }
func (s *Span) Idx1() Idx { return s.To }
func (s *Span) Line() int { return s.Row }

// Attach widens the span to cover each non-nil child. A child starting
// earlier also moves the start line.
func (s *Span) Attach(children ...Node) {
	for _, c := range children {
		if isNil(c) {
			continue
		}
		if c.Idx0() < s.From {
			s.From = c.Idx0()
			s.Row = c.Line()
		}
		if c.Idx1() > s.To {
			s.To = c.Idx1()
		}
	}
}

// Extend widens the span to end no earlier than to, e.g. over a closing
// bracket or a postfix operator.
func (s *Span) Extend(to Idx) {
	if to > s.To {
		s.To = to
	}
}

// Program is the root of a parsed script and the body of every function.
type Program struct {
	Span
	Body Statements

	// FunDecls and VarDecls collect the function declarations and the
	// variable declarators that appear directly in this body, in source
	// order. Nested function bodies keep their own lists.
	FunDecls []*FunctionLiteral
	VarDecls []*VariableDeclarator
}

func (n *Program) Children() []Node { return n.Body.nodes() }

// isNil reports whether c is nil or a typed nil pointer. Optional child
// fields hold typed nil pointers when absent.
func isNil(c Node) bool {
	switch n := c.(type) {
	case nil:
		return true
	case *Identifier:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *FunctionLiteral:
		return n == nil
	case *Program:
		return n == nil
	case *VariableDeclaration:
		return n == nil
	case *VariableDeclarator:
		return n == nil
	case *CatchStatement:
		return n == nil
	case *CaseStatement:
		return n == nil
	}
	return false
}

func appendNode(nodes []Node, c Node) []Node {
	if isNil(c) {
		return nodes
	}
	return append(nodes, c)
}

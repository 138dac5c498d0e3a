package scanner

import (
	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/token"
)

type Token struct {
	Kind token.Token

	// Value is the identifier name, the decoded string contents, or the
	// source text for every other kind.
	Value  string
	Number float64

	Pattern, Flags string // regular expression literals

	// AssignOp is the binary operator of a compound assignment, or
	// token.Undetermined for a plain '='.
	AssignOp token.Token

	NewlineBefore bool

	Idx0, Idx1 ast.Idx
	Line       int
}

// Raw returns the source text of the token.
func (t Token) Raw(s *Scanner) string {
	return s.src.Slice(t.Idx0, t.Idx1)
}

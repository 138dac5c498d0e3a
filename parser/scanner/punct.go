package scanner

import (
	"github.com/t14raptor/jsparse/token"
)

func (s *Scanner) scanPunctuator(tok *Token) bool {
	in := s.src.Rest()
	kind, size := token.LookupOperator(in)
	if size == 0 {
		return false
	}

	switch {
	case kind.Compoundable() && size < len(in) && in[size] == '=':
		tok.Kind, tok.AssignOp = token.Assign, kind
		size++
	case s.ScanOperand && kind == token.Plus:
		tok.Kind = token.UnaryPlus
	case s.ScanOperand && kind == token.Minus:
		tok.Kind = token.UnaryMinus
	default:
		tok.Kind = kind
	}
	tok.Value = in[:size]
	s.src.Advance(size)
	return true
}

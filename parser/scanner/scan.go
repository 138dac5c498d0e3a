package scanner

import (
	"github.com/t14raptor/jsparse/token"
)

// scan reads the next token from the input into tok. The classification
// order matters: numbers before identifiers, strings before regular
// expressions, and regular expressions before the division operator.
func (s *Scanner) scan(tok *Token) {
	newline := s.skipSpaceAndComments()
	*tok = Token{
		NewlineBefore: newline,
		Idx0:          s.src.Offset(),
		Line:          s.line,
	}

	switch {
	case s.src.EOF():
		tok.Kind = token.Eof
	case s.scanNumber(tok):
	case s.scanIdentifier(tok):
	case s.scanString(tok):
	case s.ScanOperand && s.scanRegExp(tok):
	case s.scanPunctuator(tok):
	default:
		s.errorf("Illegal token")
	}
	tok.Idx1 = s.src.Offset()
}

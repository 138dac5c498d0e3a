package scanner

import (
	"github.com/t14raptor/jsparse/token"
)

// scanRegExp reads /body/flags. The body may hold escapes and character
// classes, in which a '/' does not end the literal.
func (s *Scanner) scanRegExp(tok *Token) bool {
	if b, ok := s.src.PeekByte(); !ok || b != '/' {
		return false
	}
	start := s.src.Offset()
	s.src.Advance(1)

	inClass := false
	for {
		chr, size := s.src.PeekRune()
		if size == 0 || isLineTerminator(chr) {
			s.errorf("Unterminated regular expression literal")
		}
		s.src.Advance(size)
		if chr == '\\' {
			next, nextSize := s.src.PeekRune()
			if nextSize == 0 || isLineTerminator(next) {
				s.errorf("Unterminated regular expression literal")
			}
			s.src.Advance(nextSize)
			continue
		}
		if inClass {
			if chr == ']' {
				inClass = false
			}
			continue
		}
		if chr == '[' {
			inClass = true
		} else if chr == '/' {
			break
		}
	}
	bodyEnd := s.src.Offset() - 1

	for {
		b, ok := s.src.PeekByte()
		if !ok || (b != 'g' && b != 'i' && b != 'm' && b != 'y') {
			break
		}
		s.src.Advance(1)
	}

	tok.Kind = token.RegExp
	tok.Pattern = s.src.Slice(start+1, bodyEnd)
	tok.Flags = s.src.Slice(bodyEnd+1, s.src.Offset())
	tok.Value = s.src.FromPositionToCurrent(start)
	return true
}

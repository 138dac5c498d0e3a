package scanner

import "unicode"

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isLineWhiteSpace(chr rune) bool {
	switch chr {
	case '\u0009', '\u000b', '\u000c', '\u0020', '\u00a0', '\ufeff':
		return true
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return false
	case '\u0085':
		return false
	}
	return chr > 0x7f && unicode.IsSpace(chr)
}

// consumeLineTerminator advances past one line break, treating "\r\n" as a
// single break, and bumps the line count.
func (s *Scanner) consumeLineTerminator() {
	if s.src.NextRune() == '\r' {
		s.src.AdvanceIfByteEquals('\n')
	}
	s.line++
}

// skipSpaceAndComments skips everything up to the next token and reports
// whether a line break was crossed.
func (s *Scanner) skipSpaceAndComments() (newline bool) {
	for {
		chr, size := s.src.PeekRune()
		switch {
		case size == 0:
			return
		case isLineTerminator(chr):
			s.consumeLineTerminator()
			newline = true
		case isLineWhiteSpace(chr):
			s.src.Advance(size)
		case chr == '/':
			next, _ := s.src.PeekByteAt(1)
			switch next {
			case '/':
				s.skipSingleLineComment()
			case '*':
				if s.skipMultiLineComment() {
					newline = true
				}
			default:
				return
			}
		default:
			return
		}
	}
}

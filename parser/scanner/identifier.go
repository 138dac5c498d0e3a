package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/t14raptor/jsparse/token"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicode.IsLetter(chr) || unicode.Is(unicode.Nl, chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return unicode.IsLetter(chr) || unicode.IsDigit(chr) ||
		unicode.In(chr, unicode.Mn, unicode.Mc, unicode.Nl, unicode.Pc) ||
		chr == '\u200c' || chr == '\u200d'
}

func (s *Scanner) scanIdentifier(tok *Token) bool {
	chr, size := s.src.PeekRune()
	if !isIdentifierStart(chr) {
		return false
	}
	start := s.src.Offset()
	s.src.Advance(size)
	for {
		chr, size = s.src.PeekRune()
		if !isIdentifierPart(chr) {
			break
		}
		s.src.Advance(size)
	}
	name := s.src.FromPositionToCurrent(start)
	tok.Kind, tok.Value = token.LiteralKeyword(name), name
	return true
}

package scanner

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/t14raptor/jsparse/token"
)

func (s *Scanner) scanString(tok *Token) bool {
	quote, ok := s.src.PeekByte()
	if !ok || (quote != '"' && quote != '\'') {
		return false
	}
	start := s.src.Offset()
	s.src.Advance(1)

	hasEscape := false
	for {
		chr, size := s.src.PeekRune()
		switch {
		case size == 0 || isLineTerminator(chr):
			s.errorf("Unterminated string literal")
		case chr == rune(quote):
			s.src.Advance(1)
			body := s.src.Slice(start+1, s.src.Offset()-1)
			tok.Kind, tok.Value = token.String, body
			if hasEscape {
				tok.Value = decodeString(body)
			}
			return true
		case chr == '\\':
			hasEscape = true
			s.src.Advance(1)
			next, nextSize := s.src.PeekRune()
			switch {
			case nextSize == 0:
				s.errorf("Unterminated string literal")
			case isLineTerminator(next):
				s.consumeLineTerminator()
			default:
				s.src.Advance(nextSize)
			}
		default:
			s.src.Advance(size)
		}
	}
}

func hex2decimal(chr byte) (value rune, ok bool) {
	if v := digitValue(chr); v < 16 {
		return rune(v), true
	}
	return 0, false
}

// readHex decodes exactly size hex digits from the front of str.
func readHex(str string, size int) (rune, bool) {
	if len(str) < size {
		return 0, false
	}
	var value rune
	for j := 0; j < size; j++ {
		decimal, ok := hex2decimal(str[j])
		if !ok {
			return 0, false
		}
		value = value<<4 | decimal
	}
	return value, true
}

// decodeString processes the escape sequences of a string literal body.
// Malformed \x and \u escapes decode to the escaped letter itself, as
// legacy engines do. A \u surrogate pair combines into one code point.
func decodeString(literal string) string {
	var sb strings.Builder
	sb.Grow(len(literal))
	str := literal
	for len(str) > 0 {
		chr := str[0]
		if chr != '\\' {
			_, size := utf8.DecodeRuneInString(str)
			sb.WriteString(str[:size])
			str = str[size:]
			continue
		}
		if len(str) == 1 {
			break
		}

		escaped, size := utf8.DecodeRuneInString(str[1:])
		str = str[1+size:]
		var value rune
		switch escaped {
		case 'b':
			value = '\b'
		case 'f':
			value = '\f'
		case 'n':
			value = '\n'
		case 'r':
			value = '\r'
		case 't':
			value = '\t'
		case 'v':
			value = '\v'
		case 'x', 'u':
			size := 2
			if escaped == 'u' {
				size = 4
			}
			decoded, ok := readHex(str, size)
			if !ok {
				value = escaped
				break
			}
			str = str[size:]
			value = decoded
			if utf16.IsSurrogate(value) && len(str) >= 6 && str[0] == '\\' && str[1] == 'u' {
				if low, ok := readHex(str[2:], 4); ok {
					if pair := utf16.DecodeRune(value, low); pair != utf8.RuneError {
						value = pair
						str = str[6:]
					}
				}
			}
		case '0', '1', '2', '3', '4', '5', '6', '7':
			value = escaped - '0'
			limit := 2
			if escaped > '3' {
				limit = 1
			}
			j := 0
			for ; j < limit && j < len(str) && '0' <= str[j] && str[j] <= '7'; j++ {
				value = value<<3 | rune(str[j]-'0')
			}
			str = str[j:]
		case '\r':
			if len(str) > 0 && str[0] == '\n' {
				str = str[1:]
			}
			continue
		case '\n', '\u2028', '\u2029':
			continue
		default:
			value = escaped
		}
		sb.WriteRune(value)
	}
	return sb.String()
}

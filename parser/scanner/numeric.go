package scanner

import (
	"errors"
	"strconv"

	"github.com/t14raptor/jsparse/token"
)

func isDecimalDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func digitValue(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b - 'a' + 10)
	case 'A' <= b && b <= 'F':
		return int(b - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}

func skipDigits(in string, i, base int) int {
	for i < len(in) && digitValue(in[i]) < base {
		i++
	}
	return i
}

// skipExponent returns the end of an exponent part starting at i, or i if
// there is none.
func skipExponent(in string, i int) int {
	if i >= len(in) || (in[i] != 'e' && in[i] != 'E') {
		return i
	}
	j := i + 1
	if j < len(in) && (in[j] == '+' || in[j] == '-') {
		j++
	}
	if end := skipDigits(in, j, 10); end > j {
		return end
	}
	return i
}

// floatLength returns the length of a floating point literal (one with a
// fraction or an exponent) at the start of in, or 0.
func floatLength(in string) int {
	i := skipDigits(in, 0, 10)
	switch {
	case i > 0 && i < len(in) && in[i] == '.':
		return skipExponent(in, skipDigits(in, i+1, 10))
	case i > 0:
		if end := skipExponent(in, i); end > i {
			return end
		}
		return 0
	case len(in) > 1 && in[0] == '.' && isDecimalDigit(in[1]):
		return skipExponent(in, skipDigits(in, 1, 10))
	}
	return 0
}

// integerLength returns the length and base of an integer literal at the
// start of in. A leading zero makes the literal octal and ends it at the
// first non-octal digit.
func integerLength(in string) (int, int) {
	switch {
	case len(in) > 2 && in[0] == '0' && (in[1] == 'x' || in[1] == 'X') && digitValue(in[2]) < 16:
		return skipDigits(in, 2, 16), 16
	case len(in) > 0 && in[0] == '0':
		return skipDigits(in, 1, 8), 8
	case len(in) > 0 && isDecimalDigit(in[0]):
		return skipDigits(in, 0, 10), 10
	}
	return 0, 0
}

func (s *Scanner) scanNumber(tok *Token) bool {
	in := s.src.Rest()
	if n := floatLength(in); n > 0 {
		literal := in[:n]
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			s.errorf("Illegal token")
		}
		tok.Kind, tok.Value, tok.Number = token.Number, literal, value
		s.src.Advance(n)
		return true
	}

	n, base := integerLength(in)
	if n == 0 {
		return false
	}
	literal := in[:n]
	digits := literal
	switch base {
	case 16:
		digits = literal[2:]
	case 8:
		digits = literal[1:]
	}
	tok.Kind, tok.Value, tok.Number = token.Number, literal, parseInteger(digits, base)
	s.src.Advance(n)
	return true
}

// parseInteger accumulates in floating point; literals beyond 2^64 keep
// their magnitude.
func parseInteger(digits string, base int) float64 {
	var value float64
	for i := 0; i < len(digits); i++ {
		value = value*float64(base) + float64(digitValue(digits[i]))
	}
	return value
}

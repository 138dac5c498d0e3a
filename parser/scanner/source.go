package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/jsparse/ast"
)

// Source is a read cursor over the text being scanned.
type Source struct {
	str string
	pos ast.Idx
}

func NewSource(src string) Source {
	return Source{str: src}
}

func (s *Source) EOF() bool {
	return int(s.pos) >= len(s.str)
}

func (s *Source) Offset() ast.Idx {
	return s.pos
}

func (s *Source) SetPosition(pos ast.Idx) {
	s.pos = pos
}

// Rest returns the unread part of the input.
func (s *Source) Rest() string {
	return s.str[s.pos:]
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekByteAt returns the byte n positions past the cursor.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	i := int(s.pos) + n
	if i >= len(s.str) {
		return 0, false
	}
	return s.str[i], true
}

func (s *Source) PeekRune() (rune, int) {
	if s.EOF() {
		return -1, 0
	}
	b := s.str[s.pos]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(s.str[s.pos:])
}

func (s *Source) NextRune() rune {
	r, size := s.PeekRune()
	s.pos += ast.Idx(size)
	return r
}

func (s *Source) Advance(n int) {
	s.pos += ast.Idx(n)
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if next, ok := s.PeekByte(); ok && next == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str[pos:s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str[from:to]
}

func (s *Source) String() string {
	return s.str
}

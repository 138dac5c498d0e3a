package scanner

// skipSingleLineComment stops in front of the terminating line break so the
// caller still sees it.
func (s *Scanner) skipSingleLineComment() {
	s.src.Advance(2)
	for {
		chr, size := s.src.PeekRune()
		if size == 0 || isLineTerminator(chr) {
			return
		}
		s.src.Advance(size)
	}
}

func (s *Scanner) skipMultiLineComment() (hasLineTerminator bool) {
	s.src.Advance(2)
	for {
		chr, size := s.src.PeekRune()
		switch {
		case size == 0:
			s.errorf("Unterminated comment")
		case isLineTerminator(chr):
			s.consumeLineTerminator()
			hasLineTerminator = true
		case chr == '*':
			s.src.Advance(1)
			if s.src.AdvanceIfByteEquals('/') {
				return
			}
		default:
			s.src.Advance(size)
		}
	}
}

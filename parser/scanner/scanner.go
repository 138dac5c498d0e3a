// Package scanner turns source text into tokens for the parser.
//
// Malformed input makes the scanner panic with a *SyntaxError; the parser
// recovers it at its entry point. Tokenize does the same for callers that
// only want the token stream.
package scanner

import (
	"errors"
	"strings"

	"github.com/t14raptor/jsparse/token"
)

type Scanner struct {
	src      Source
	filename string
	line     int

	tokens ring

	// ScanOperand is set while the parser expects an operand. It decides
	// between a regular expression and a division, and between unary and
	// binary '+' and '-'.
	ScanOperand bool
	// ScanNewlines makes Peek report token.Newline when the next token
	// starts on a later line.
	ScanNewlines bool
}

// New returns a scanner over src. Line numbers start at startLine, or 1
// when startLine is not positive.
func New(src, filename string, startLine int) *Scanner {
	if startLine < 1 {
		startLine = 1
	}
	return &Scanner{
		src:         NewSource(src),
		filename:    filename,
		line:        startLine,
		ScanOperand: true,
	}
}

// Line returns the line the scanner's cursor is on.
func (s *Scanner) Line() int {
	return s.line
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return *s.tokens.current()
}

// Next makes the following token current and returns its kind.
func (s *Scanner) Next() token.Token {
	if tok, ok := s.tokens.replay(); ok {
		return tok.Kind
	}
	tok := s.tokens.next()
	s.scan(tok)
	return tok.Kind
}

// Unget pushes the current token back so the next call to Next returns it
// again.
func (s *Scanner) Unget() {
	s.tokens.unget()
}

// Peek returns the kind of the next token without consuming it.
func (s *Scanner) Peek() token.Token {
	var tok Token
	if s.tokens.lookahead > 0 {
		tok = *s.tokens.peek()
	} else {
		s.Next()
		tok = s.Token()
		s.Unget()
	}
	if s.ScanNewlines && tok.NewlineBefore {
		return token.Newline
	}
	return tok.Kind
}

// PeekOnSameLine is Peek with newlines significant.
func (s *Scanner) PeekOnSameLine() token.Token {
	s.ScanNewlines = true
	defer func() { s.ScanNewlines = false }()
	return s.Peek()
}

// Match consumes the next token if it is of kind tkn.
func (s *Scanner) Match(tkn token.Token) bool {
	if s.Next() == tkn {
		return true
	}
	s.Unget()
	return false
}

// MustMatch consumes the next token, failing with "Missing <kind>" if it is
// not of kind tkn.
func (s *Scanner) MustMatch(tkn token.Token) Token {
	if !s.Match(tkn) {
		s.errorf("Missing %s", strings.ToLower(tkn.String()))
	}
	return s.Token()
}

// Done reports whether only end of input remains.
func (s *Scanner) Done() bool {
	return s.Peek() == token.Eof
}

// Tokenize scans all of src in operand-agnostic fashion: a '/' after a
// token that can end an operand is a division, otherwise it starts a
// regular expression.
func Tokenize(src, filename string, startLine int) (tokens []Token, err error) {
	s := New(src, filename, startLine)
	defer func() {
		if r := recover(); r != nil {
			var syntaxErr *SyntaxError
			if e, ok := r.(error); ok && errors.As(e, &syntaxErr) {
				err = syntaxErr
				return
			}
			panic(r)
		}
	}()
	for {
		kind := s.Next()
		if kind == token.Eof {
			return tokens, nil
		}
		tokens = append(tokens, s.Token())
		s.ScanOperand = !endsOperand(kind)
	}
}

func endsOperand(kind token.Token) bool {
	switch kind {
	case token.Identifier, token.Number, token.String, token.RegExp,
		token.Boolean, token.Null, token.This,
		token.RightParenthesis, token.RightBracket, token.RightBrace,
		token.Increment, token.Decrement:
		return true
	}
	return false
}

package scanner

import (
	"errors"
	"fmt"
)

// ErrTooMuchLookahead is raised as a panic when more tokens are pushed back
// than the ring can hold. It indicates a parser bug, not bad input.
var ErrTooMuchLookahead = errors.New("scanner: too much lookahead")

// SyntaxError describes the first grammar violation found in a source text.
type SyntaxError struct {
	Message  string
	Filename string
	Line     int // 1-based
	Cursor   int // byte offset of the scanner when the error was raised
	Source   string
}

func (e *SyntaxError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Message)
}

// NewSyntaxError returns an error positioned at the scanner's cursor.
func (s *Scanner) NewSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{
		Message:  msg,
		Filename: s.filename,
		Line:     s.line,
		Cursor:   int(s.src.Offset()),
		Source:   s.src.String(),
	}
}

func (s *Scanner) errorf(format string, args ...any) {
	panic(s.NewSyntaxError(fmt.Sprintf(format, args...)))
}

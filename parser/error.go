package parser

import (
	"fmt"

	"github.com/t14raptor/jsparse/parser/scanner"
)

const (
	errMissingOperand     = "Missing operand"
	errMissingSemicolon   = "Missing ; before statement"
	errInvalidForInTarget = "Invalid for..in left-hand side"
)

// errorf aborts the parse with a syntax error at the scanner's position.
// ParseFile recovers it.
func (p *parser) errorf(msg string, msgValues ...any) {
	if len(msgValues) > 0 {
		msg = fmt.Sprintf(msg, msgValues...)
	}
	panic(p.scanner.NewSyntaxError(msg))
}

// recoverSyntaxError turns a syntax error panic back into an error. Any
// other panic, including scanner.ErrTooMuchLookahead, is a bug and keeps
// unwinding.
func recoverSyntaxError(err *error) {
	if r := recover(); r != nil {
		if syntaxErr, ok := r.(*scanner.SyntaxError); ok {
			*err = syntaxErr
			return
		}
		panic(r)
	}
}

package token

import (
	"strconv"
	"strings"
)

// Token is the set of lexical tokens of the scripting language, plus the
// marker kinds the expression parser keeps on its operator stack.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding strength of an operator on the expression
// parser's operator stack. Tokens that are not operators, including the
// Call/Index/Group/NewWithArgs markers, report 0 and therefore act as
// barriers during reduction.
func (t Token) Precedence() int {
	switch t {
	case Comma:
		return 1
	case Assign, QuestionMark, Colon:
		return 2
	case LogicalOr:
		return 4
	case LogicalAnd:
		return 5
	case Or:
		return 6
	case ExclusiveOr:
		return 7
	case And:
		return 8
	case Equal, NotEqual, StrictEqual, StrictNotEqual:
		return 9
	case Less, LessOrEqual, GreaterOrEqual, Greater, In, InstanceOf:
		return 10
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 11
	case Plus, Minus:
		return 12
	case Multiply, Slash, Remainder:
		return 13
	case Delete, Void, Typeof, Not, BitwiseNot, UnaryPlus, UnaryMinus:
		return 14
	case Increment, Decrement:
		return 15
	case New:
		return 16
	case Period:
		return 17
	}
	return 0
}

// Arity returns how many operands reducing the operator consumes. Comma
// reports -2: it folds into an existing sequence on its left when there is
// one and consumes two operands otherwise.
func (t Token) Arity() int {
	switch t {
	case Comma:
		return -2
	case QuestionMark:
		return 3
	case Delete, Void, Typeof, Not, BitwiseNot, UnaryPlus, UnaryMinus,
		Increment, Decrement, New, Group:
		return 1
	}
	if t.IsBinary() || t == Assign || t == NewWithArgs || t == Period || t == Index || t == Call {
		return 2
	}
	return 0
}

// IsBinary reports whether t is an infix operator that builds a binary
// expression.
func (t Token) IsBinary() bool {
	switch t {
	case LogicalOr, LogicalAnd, Or, ExclusiveOr, And,
		Equal, NotEqual, StrictEqual, StrictNotEqual,
		Less, LessOrEqual, GreaterOrEqual, Greater, In, InstanceOf,
		ShiftLeft, ShiftRight, UnsignedShiftRight,
		Plus, Minus, Multiply, Slash, Remainder:
		return true
	}
	return false
}

// IsUnary reports whether t is a prefix operator that builds a unary
// expression.
func (t Token) IsUnary() bool {
	switch t {
	case Delete, Void, Typeof, Not, BitwiseNot, UnaryPlus, UnaryMinus:
		return true
	}
	return false
}

// Compoundable reports whether t may be followed by '=' to form a compound
// assignment operator.
func (t Token) Compoundable() bool {
	switch t {
	case Or, ExclusiveOr, And, ShiftLeft, ShiftRight, UnsignedShiftRight,
		Plus, Minus, Multiply, Slash, Remainder:
		return true
	}
	return false
}

// IsKeyword reports whether t is a reserved word.
func IsKeyword(t Token) bool {
	return t == Boolean || t == Null || (t >= Break && t <= With)
}

// LiteralKeyword returns the keyword token if literal is a reserved word, or
// Identifier otherwise.
func LiteralKeyword(literal string) Token {
	if tkn, exists := keywordTable[literal]; exists {
		return tkn
	}
	return Identifier
}

// LookupOperator returns the longest punctuator at the start of src and its
// length, or (Illegal, 0).
func LookupOperator(src string) (Token, int) {
	best, size := Illegal, 0
	for _, op := range operatorTable {
		if len(op.literal) > size && strings.HasPrefix(src, op.literal) {
			best, size = op.token, len(op.literal)
		}
	}
	return best, size
}

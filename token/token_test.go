package token

import "testing"

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		src  string
		want Token
		size int
	}{
		{">>>= 1", UnsignedShiftRight, 3},
		{">>= 1", ShiftRight, 2},
		{"=== b", StrictEqual, 3},
		{"!= b", NotEqual, 2},
		{"++x", Increment, 2},
		{"+x", Plus, 1},
		{"<=", LessOrEqual, 2},
		{"@", Illegal, 0},
		{"", Illegal, 0},
	}
	for _, tt := range tests {
		got, size := LookupOperator(tt.src)
		if got != tt.want || size != tt.size {
			t.Errorf("LookupOperator(%q) = %v, %d; want %v, %d", tt.src, got, size, tt.want, tt.size)
		}
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	chain := []Token{Comma, Assign, LogicalOr, LogicalAnd, Or, ExclusiveOr, And,
		Equal, Less, ShiftLeft, Plus, Multiply, Not, Increment, New, Period}
	for i := 1; i < len(chain); i++ {
		if chain[i-1].Precedence() >= chain[i].Precedence() {
			t.Errorf("%v (%d) should bind looser than %v (%d)",
				chain[i-1], chain[i-1].Precedence(), chain[i], chain[i].Precedence())
		}
	}
	for _, marker := range []Token{Call, Index, Group, NewWithArgs, Semicolon} {
		if marker.Precedence() != 0 {
			t.Errorf("%v should have no precedence", marker)
		}
	}
	if Assign.Precedence() != QuestionMark.Precedence() || Colon.Precedence() != Assign.Precedence() {
		t.Error("assignment and conditional operators must share a precedence")
	}
}

func TestArity(t *testing.T) {
	tests := map[Token]int{
		Comma:        -2,
		QuestionMark: 3,
		Typeof:       1,
		New:          1,
		Group:        1,
		NewWithArgs:  2,
		Call:         2,
		Index:        2,
		Assign:       2,
		In:           2,
		Identifier:   0,
	}
	for tkn, want := range tests {
		if got := tkn.Arity(); got != want {
			t.Errorf("%v.Arity() = %d, want %d", tkn, got, want)
		}
	}
}

func TestLiteralKeyword(t *testing.T) {
	if LiteralKeyword("instanceof") != InstanceOf {
		t.Error("instanceof should be a keyword")
	}
	if LiteralKeyword("true") != Boolean || LiteralKeyword("null") != Null {
		t.Error("literal keywords not classified")
	}
	if LiteralKeyword("get") != Identifier {
		t.Error("get is only a contextual keyword")
	}
	if !IsKeyword(With) || IsKeyword(Identifier) {
		t.Error("IsKeyword misclassified")
	}
}

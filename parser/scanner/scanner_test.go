package scanner

import (
	"errors"
	"testing"

	"github.com/t14raptor/jsparse/token"
)

func kinds(t *testing.T, src string) []token.Token {
	t.Helper()
	tokens, err := Tokenize(src, "", 1)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	out := make([]token.Token, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func equalKinds(a, b []token.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Token
	}{
		{"var x = 1;", []token.Token{token.Var, token.Identifier, token.Assign, token.Number, token.Semicolon}},
		{"a / b / c", []token.Token{token.Identifier, token.Slash, token.Identifier, token.Slash, token.Identifier}},
		{"x = /ab+c/gi", []token.Token{token.Identifier, token.Assign, token.RegExp}},
		{"a >>>= -1", []token.Token{token.Identifier, token.Assign, token.UnaryMinus, token.Number}},
		{"a - -b", []token.Token{token.Identifier, token.Minus, token.UnaryMinus, token.Identifier}},
		{"i++ + +j", []token.Token{token.Identifier, token.Increment, token.Plus, token.UnaryPlus, token.Identifier}},
		{"a === b !== c", []token.Token{token.Identifier, token.StrictEqual, token.Identifier, token.StrictNotEqual, token.Identifier}},
		{"true null this", []token.Token{token.Boolean, token.Null, token.This}},
		{"a // comment\n/* block */ b", []token.Token{token.Identifier, token.Identifier}},
		{"x.y[0](z)", []token.Token{token.Identifier, token.Period, token.Identifier, token.LeftBracket, token.Number, token.RightBracket, token.LeftParenthesis, token.Identifier, token.RightParenthesis}},
		{"caf\u00e9 $_0", []token.Token{token.Identifier, token.Identifier}},
	}
	for _, tt := range tests {
		got := kinds(t, tt.src)
		if !equalKinds(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"42", 42},
		{"3.25", 3.25},
		{"1e3", 1000},
		{".5", 0.5},
		{"2.", 2},
		{"1.5E-1", 0.15},
		{"0x1F", 31},
		{"0XfF", 255},
		{"017", 15},
		{"0", 0},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.src, "", 1)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tt.src, err)
		}
		if len(tokens) != 1 || tokens[0].Kind != token.Number {
			t.Fatalf("Tokenize(%q) = %v, want one number", tt.src, tokens)
		}
		if tokens[0].Number != tt.want {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.src, tokens[0].Number, tt.want)
		}
		if tokens[0].Value != tt.src {
			t.Errorf("Tokenize(%q) literal = %q", tt.src, tokens[0].Value)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"plain"`, "plain"},
		{`'single "quoted"'`, `single "quoted"`},
		{`"tab\there"`, "tab\there"},
		{`"\x41B"`, "AB"},
		{`"\uD83D\uDE00"`, "\U0001F600"},
		{`"\101"`, "A"},
		{`"\0"`, "\x00"},
		{`"\q"`, "q"},
		{`"\xZZ"`, "xZZ"},
		{"\"line\\\ncontinued\"", "linecontinued"},
		{`"\\"`, `\`},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.src, "", 1)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tt.src, err)
		}
		if len(tokens) != 1 || tokens[0].Kind != token.String {
			t.Fatalf("Tokenize(%q) = %v, want one string", tt.src, tokens)
		}
		if tokens[0].Value != tt.want {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.src, tokens[0].Value, tt.want)
		}
	}
}

func TestRegExp(t *testing.T) {
	tokens, err := Tokenize(`/[/\]]+\/x/gim`, "", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Kind != token.RegExp {
		t.Fatalf("got %v", tokens)
	}
	if tokens[0].Pattern != `[/\]]+\/x` || tokens[0].Flags != "gim" {
		t.Errorf("pattern %q flags %q", tokens[0].Pattern, tokens[0].Flags)
	}
}

func TestCompoundAssignOperator(t *testing.T) {
	tokens, err := Tokenize("a <<= 2; b += 1; c = 3", "", 1)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]token.Token{1: token.ShiftLeft, 5: token.Plus, 9: token.Undetermined}
	for i, op := range want {
		if tokens[i].Kind != token.Assign || tokens[i].AssignOp != op {
			t.Errorf("token %d = %v/%v, want assignment with %v", i, tokens[i].Kind, tokens[i].AssignOp, op)
		}
	}
}

func TestLinesAndSpans(t *testing.T) {
	tokens, err := Tokenize("a\r\nb\rc\n\n/* x\n */ d", "f.js", 10)
	if err != nil {
		t.Fatal(err)
	}
	wantLines := []int{10, 11, 12, 15}
	for i, tok := range tokens {
		if tok.Line != wantLines[i] {
			t.Errorf("token %q on line %d, want %d", tok.Value, tok.Line, wantLines[i])
		}
		if !tok.NewlineBefore && i > 0 {
			t.Errorf("token %q should follow a newline", tok.Value)
		}
	}
	if tokens[0].NewlineBefore {
		t.Error("first token should not follow a newline")
	}
	if tokens[3].Idx0 != 17 || tokens[3].Idx1 != 18 {
		t.Errorf("span of d = [%d,%d)", tokens[3].Idx0, tokens[3].Idx1)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		src  string
		msg  string
		line int
	}{
		{"a # b", "Illegal token", 1},
		{"\"abc", "Unterminated string literal", 1},
		{"'abc\ndef'", "Unterminated string literal", 1},
		{"x\n/* never", "Unterminated comment", 2},
		{"x = /abc\n/", "Unterminated regular expression literal", 1},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.src, "bad.js", 1)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("Tokenize(%q) error = %v, want SyntaxError", tt.src, err)
		}
		if syntaxErr.Message != tt.msg || syntaxErr.Line != tt.line {
			t.Errorf("Tokenize(%q) = %q on line %d, want %q on line %d",
				tt.src, syntaxErr.Message, syntaxErr.Line, tt.msg, tt.line)
		}
		if syntaxErr.Filename != "bad.js" || syntaxErr.Source != tt.src {
			t.Errorf("Tokenize(%q) lost context: %+v", tt.src, syntaxErr)
		}
	}
}

func TestSyntaxErrorString(t *testing.T) {
	err := &SyntaxError{Message: "Missing operand", Filename: "a.js", Line: 3}
	if got := err.Error(); got != "a.js:3: Missing operand" {
		t.Errorf("Error() = %q", got)
	}
	err.Filename = ""
	if got := err.Error(); got != "line 3: Missing operand" {
		t.Errorf("Error() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// Lookahead
// ---------------------------------------------------------------------------

func TestUngetReplaysTokens(t *testing.T) {
	s := New("a b c", "", 1)
	s.Next()
	s.Next()
	s.Next()
	s.Unget()
	s.Unget()
	if got := s.Token().Value; got != "a" {
		t.Fatalf("current token after two ungets = %q, want a", got)
	}
	if s.Peek() != token.Identifier {
		t.Fatal("peek should see b")
	}
	s.Next()
	if got := s.Token().Value; got != "b" {
		t.Fatalf("replayed %q, want b", got)
	}
	s.Next()
	if got := s.Token().Value; got != "c" {
		t.Fatalf("replayed %q, want c", got)
	}
	if !s.Done() {
		t.Fatal("scanner should be done")
	}
}

func TestTooMuchLookaheadPanics(t *testing.T) {
	s := New("a b c d e", "", 1)
	for i := 0; i < 4; i++ {
		s.Next()
	}
	for i := 0; i < maxLookahead; i++ {
		s.Unget()
	}
	defer func() {
		if r := recover(); r != ErrTooMuchLookahead {
			t.Fatalf("recovered %v, want ErrTooMuchLookahead", r)
		}
	}()
	s.Unget()
}

func TestPeekOnSameLine(t *testing.T) {
	s := New("a\nb c", "", 1)
	s.Next()
	if got := s.PeekOnSameLine(); got != token.Newline {
		t.Fatalf("PeekOnSameLine() = %v, want Newline", got)
	}
	if got := s.Peek(); got != token.Identifier {
		t.Fatalf("Peek() = %v, want Identifier", got)
	}
	s.Next()
	if got := s.PeekOnSameLine(); got != token.Identifier {
		t.Fatalf("PeekOnSameLine() = %v, want Identifier", got)
	}
}

func TestMustMatch(t *testing.T) {
	s := New("a", "", 1)
	defer func() {
		err, ok := recover().(*SyntaxError)
		if !ok || err.Message != "Missing )" {
			t.Fatalf("recovered %v, want Missing )", err)
		}
	}()
	s.MustMatch(token.RightParenthesis)
}

func TestMatchPutsTokenBack(t *testing.T) {
	s := New("x;", "", 1)
	if s.Match(token.Semicolon) {
		t.Fatal("matched ; before x")
	}
	if !s.Match(token.Identifier) || !s.Match(token.Semicolon) {
		t.Fatal("expected x then ;")
	}
	if s.Next() != token.Eof || s.Next() != token.Eof {
		t.Fatal("end of input should repeat")
	}
}

package generator

import (
	"strings"
	"testing"

	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/parser"
)

func parseSource(src string) (*ast.Program, error) {
	program, err := parser.ParseFile(src)
	if err != nil {
		return nil, err
	}
	return program, nil
}

func generateASTNoIndent(program ast.Node) string {
	output := Generate(program)
	return strings.ReplaceAll(strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", ""), "'", "\"")
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"precedence", "a+b*c", "a + b * c;"},
		{"group kept", "(a + b) * c", "(a + b) * c;"},
		{"nested conditional", "a?b?c:d:e", "a ? b ? c : d : e;"},
		{"conditional in alternate", "a?b:c?d:e", "a ? b : c ? d : e;"},
		{"compound assignment", "a>>>=1", "a >>>= 1;"},
		{"array holes", "x=[1,,2,]", "x = [1, , 2];"},
		{"trailing hole", "x=[1,,]", "x = [1, ,];"},
		{"if else", "if(a)b();else{c()}", "if (a) b(); else {c();}"},
		{"classic for", "for(var i=0;i<n;i++)f(i)", "for (var i = 0; i < n; i++) f(i);"},
		{"empty for", "for(;;){}", "for (;;) {}"},
		{"for in", "for(k in o);", "for (k in o) ;"},
		{"switch", "switch(x){case 1:a();break;default:b()}", "switch (x) {case 1:a();break;default:b();}"},
		{"try", "try{a()}catch(e if e){}finally{}", "try {a();} catch (e if e) {} finally {}"},
		{"object literal", "x={a:1,get b(){return 2}}", "x = {a: 1,get b() {return 2;}};"},
		{"labelled continue", "lbl:while(1){continue lbl}", "lbl: while (1) {continue lbl;}"},
		{"do while", "do x++;while(x<3)", "do x++; while (x < 3);"},
		{"double negation", "a = - -b", "a = - -b;"},
		{"negated decrement", "a = - --b", "a = - --b;"},
		{"new without arguments", "new Foo", "new Foo;"},
		{"new with arguments", "new a.Foo(1,2)", "new a.Foo(1, 2);"},
		{"immediately invoked", "(function(){})()", "(function() {})();"},
		{"regexp member", "x = /re/g.test(s)", "x = /re/g.test(s);"},
		{"typeof", "typeof a + b", "typeof a + b;"},
		{"sequence", "a = b ? c : d, e", "a = b ? c : d, e;"},
		{"declarations", "var a = 1, b; const c = 2", "var a = 1, b;const c = 2;"},
		{"with", "with(o)x", "with (o) x;"},
		{"function", "function f(a,b){return a}", "function f(a, b) {return a;}"},
		{"string", "x = 'str'", `x = "str";`},
		{"bare return and throw", "function f(){return\nthrow e}", "function f() {return;throw e;}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseSource(tt.input)
			if err != nil {
				t.Fatalf("Failed to parse input: %v", err)
			}

			result := generateASTNoIndent(program)

			if result != tt.expected {
				t.Errorf("\nInput:    %s\nExpected: %s\nGot:      %s", tt.input, tt.expected, result)
			}
		})
	}
}

func TestGenerateIsStable(t *testing.T) {
	src := `var o = {a: [1, , 2], "b": function (x) { return x * 2 }, 3: null};
function outer(a, b) {
  var i, k;
  for (i = 0; i < a.length; i++) { if (!a[i]) continue; b += a[i] }
  for (var k in o) delete o[k];
  switch (typeof b) { case "string": return b; default: throw new Error("bad " + b) }
}
top: do { try { outer(1, 2) } catch (e) { break top } } while (false)
x = y = (1, 2) ? -z : void 0
`
	first, err := parseSource(src)
	if err != nil {
		t.Fatal(err)
	}
	once := Generate(first)

	second, err := parseSource(once)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, once)
	}
	if twice := Generate(second); twice != once {
		t.Errorf("output changed on a second pass:\n%s\n---\n%s", once, twice)
	}
}

func TestGenerateSyntheticString(t *testing.T) {
	got := Generate(&ast.StringLiteral{Value: "a\"b\\c\n"})
	if want := `"a\"b\\c\n"`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

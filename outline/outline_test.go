package outline_test

import (
	"testing"

	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/outline"
	"github.com/t14raptor/jsparse/parser"
)

const sample = `dojo.declare("bespin.Editor", null, {
  constructor: function () {},
  render: function (x) { return x }
});
function helper() {}
var anon = function () {};
ns.util.fn = function () {};
Class("Point", {});
bespin.subscribe("editor:save", function () {});
x = (function () {})
`

func extract(t *testing.T, src string) *outline.Info {
	t.Helper()
	prog, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", src, err)
	}
	return outline.Extract(prog, outline.DefaultPatterns())
}

func TestExtract(t *testing.T) {
	info := extract(t, sample)

	want := []outline.Symbol{
		{Type: "dojoClass", Name: "bespin.Editor", Line: 1, Depth: 2},
		{Type: "function", Name: "constructor", Line: 2, Depth: 5},
		{Type: "function", Name: "render", Line: 3, Depth: 5},
		{Type: "function", Name: "helper", Line: 5, Depth: 2},
		{Type: "function", Name: "anon", Line: 6, Depth: 3},
		{Type: "function", Name: "ns.util.fn", Line: 7, Depth: 3},
		{Type: "jooseClass", Name: "Point", Line: 8, Depth: 2},
		{Type: "bespinEventSubscription", Name: "editor:save", Line: 9, Depth: 2},
		{Type: "function", Name: "", Line: 9, Depth: 3},
		{Type: "function", Name: "", Line: 10, Depth: 4},
	}
	if len(info.Outline) != len(want) {
		t.Fatalf("got %d symbols, want %d:\n%+v", len(info.Outline), len(want), info.Outline)
	}
	for i, sym := range want {
		if info.Outline[i] != sym {
			t.Errorf("symbol %d = %+v, want %+v", i, info.Outline[i], sym)
		}
	}
	if len(info.Functions) != 7 {
		t.Errorf("got %d functions, want 7", len(info.Functions))
	}
}

func TestFindFunction(t *testing.T) {
	info := extract(t, sample)

	fn, ok := info.FindFunction("render")
	if !ok || fn.Line != 3 {
		t.Errorf("FindFunction(render) = %+v, %v", fn, ok)
	}
	if _, ok := info.FindFunction("missing"); ok {
		t.Error("found a function that does not exist")
	}
}

func TestRender(t *testing.T) {
	info := extract(t, "function a() {}\nClass(\"P\")\nx(function () {})")
	want := "  function: a\n  Class: P\n"
	if got := info.Render(outline.DefaultPatterns()); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestTypes(t *testing.T) {
	got := extract(t, sample).Types()
	want := []string{"bespinEventSubscription", "dojoClass", "function", "jooseClass"}
	if len(got) != len(want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Types()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPatternOrder(t *testing.T) {
	prog, err := parser.ParseFile(`app.define("Widget")`)
	if err != nil {
		t.Fatal(err)
	}
	patterns := []outline.Pattern{
		{Name: "first", Declaration: "app.define"},
		{Name: "second", Declaration: "app.define", Description: "Never"},
	}
	info := outline.Extract(prog, patterns)
	if len(info.Outline) != 1 || info.Outline[0].Type != "first" {
		t.Errorf("outline = %+v, want a single symbol of the first pattern", info.Outline)
	}
	if got := outline.Label("second", patterns); got != "Never" {
		t.Errorf("Label = %q", got)
	}
	if got := outline.Label("unknown", patterns); got != "unknown" {
		t.Errorf("Label = %q", got)
	}
}

func TestPath(t *testing.T) {
	prog, err := parser.ParseFile("a.b.c; a[0].b; f().g")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		ok   bool
	}{
		{"a.b.c", true},
		{"", false},
		{"", false},
	}
	for i, tt := range tests {
		x := prog.Body[i].(*ast.ExpressionStatement).Expression
		path, ok := outline.Path(x)
		if path != tt.path || ok != tt.ok {
			t.Errorf("Path(statement %d) = %q, %v; want %q, %v", i, path, ok, tt.path, tt.ok)
		}
	}
}

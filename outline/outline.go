// Package outline extracts a structural summary of a parsed script: its
// functions and the calls that declare classes, modules or events in the
// common library idioms.
package outline

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/jsparse/ast"
)

// FunctionType is the Symbol.Type of functions.
const FunctionType = "function"

// Pattern recognizes a declaration call such as dojo.declare("Name", ...).
type Pattern struct {
	Name        string `toml:"name" yaml:"name" json:"name"`
	Declaration string `toml:"declaration" yaml:"declaration" json:"declaration"`
	Description string `toml:"description" yaml:"description" json:"description,omitempty"`
}

// DefaultPatterns returns the built-in declaration patterns in matching
// order.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Name: "dojoClass", Declaration: "dojo.declare", Description: "Class"},
		{Name: "bespinEventPublish", Declaration: "bespin.publish", Description: "Publish"},
		{Name: "bespinEventSubscription", Declaration: "bespin.subscribe", Description: "Subscribe to"},
		{Name: "jooseClass", Declaration: "Class"},
		{Name: "jooseModule", Declaration: "Module"},
		{Name: "jooseType", Declaration: "Type"},
		{Name: "jooseRole", Declaration: "Role"},
	}
}

// Label returns the text shown for symbols of this pattern.
func (p Pattern) Label() string {
	switch {
	case p.Description != "":
		return p.Description
	case p.Declaration != "":
		return p.Declaration
	}
	return p.Name
}

type Symbol struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Line  int    `json:"line"`
	Depth int    `json:"depth"`
}

type Info struct {
	Functions []Symbol `json:"functions"`
	Outline   []Symbol `json:"outline"`
}

// Extract walks prog and collects its symbols in source order. The first
// pattern matching a call wins.
func Extract(prog *ast.Program, patterns []Pattern) *Info {
	info := &Info{}
	ast.Walk(prog, func(node ast.Node, parents []ast.Node, _ []int) bool {
		switch n := node.(type) {
		case *ast.FunctionLiteral:
			sym := Symbol{Type: FunctionType, Name: functionName(n, parents), Line: n.Line(), Depth: len(parents)}
			info.Functions = append(info.Functions, sym)
			info.Outline = append(info.Outline, sym)
		case *ast.CallExpression:
			if sym, ok := declaration(n, patterns); ok {
				sym.Depth = len(parents)
				info.Outline = append(info.Outline, sym)
			}
		}
		return true
	})
	return info
}

// functionName names an anonymous function after what it is assigned to.
func functionName(fn *ast.FunctionLiteral, parents []ast.Node) string {
	if fn.Name != nil {
		return fn.Name.Name
	}
	if len(parents) == 0 {
		return ""
	}
	switch parent := parents[len(parents)-1].(type) {
	case *ast.PropertyInit:
		if parent.Value == ast.Expr(fn) {
			return parent.KeyName()
		}
	case *ast.VariableDeclarator:
		if parent.Initializer == ast.Expr(fn) {
			return parent.Name.Name
		}
	case *ast.AssignExpression:
		if parent.Right == ast.Expr(fn) {
			if path, ok := Path(parent.Left); ok {
				return path
			}
		}
	}
	return ""
}

func declaration(call *ast.CallExpression, patterns []Pattern) (Symbol, bool) {
	if len(call.ArgumentList) == 0 {
		return Symbol{}, false
	}
	path, ok := Path(call.Callee)
	if !ok {
		return Symbol{}, false
	}
	var name string
	switch arg := call.ArgumentList[0].(type) {
	case *ast.StringLiteral:
		name = arg.Value
	case *ast.Identifier:
		name = arg.Name
	case *ast.NumberLiteral:
		name = arg.Literal
	default:
		return Symbol{}, false
	}
	for _, p := range patterns {
		if p.Declaration == path {
			return Symbol{Type: p.Name, Name: name, Line: call.Line()}, true
		}
	}
	return Symbol{}, false
}

// Path spells a chain of identifiers joined by dots, such as a.b.c. It
// reports false for any other expression.
func Path(x ast.Expr) (string, bool) {
	switch x := x.(type) {
	case *ast.Identifier:
		return x.Name, true
	case *ast.DotExpression:
		left, ok := Path(x.Left)
		if !ok {
			return "", false
		}
		return left + "." + x.Identifier.Name, true
	}
	return "", false
}

// FindFunction returns the first function named name.
func (i *Info) FindFunction(name string) (Symbol, bool) {
	for _, fn := range i.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return Symbol{}, false
}

// Types returns the distinct symbol types in sorted order.
func (i *Info) Types() []string {
	set := make(map[string]struct{})
	for _, sym := range i.Outline {
		set[sym.Type] = struct{}{}
	}
	types := maps.Keys(set)
	slices.Sort(types)
	return types
}

// Render formats the outline as indented text, one named symbol per line.
func (i *Info) Render(patterns []Pattern) string {
	var b strings.Builder
	for _, sym := range i.Outline {
		if sym.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "%s%s: %s\n", strings.Repeat(" ", sym.Depth), Label(sym.Type, patterns), sym.Name)
	}
	return b.String()
}

// Label returns the display label of a symbol type.
func Label(typ string, patterns []Pattern) string {
	if idx := slices.IndexFunc(patterns, func(p Pattern) bool { return p.Name == typ }); idx >= 0 {
		return patterns[idx].Label()
	}
	return typ
}

// Package parser implements a parser for the scripting language accepted by
// the editor: ECMAScript 3 plus accessor properties and guarded catch
// clauses.
//
// Parsing stops at the first syntax error, which is returned as a
// *scanner.SyntaxError.
package parser

import (
	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/parser/scanner"
	"github.com/t14raptor/jsparse/token"
)

type parser struct {
	scanner *scanner.Scanner
	src     string

	scope *scope

	// strict rejects a few legacy forms: accessor properties, trailing
	// commas in object literals, catch guards, and do-while without a
	// semicolon.
	strict bool
}

type options struct {
	filename  string
	startLine int
	strict    bool
}

// Option configures ParseFile.
type Option func(*options)

// WithFilename sets the file name reported in syntax errors.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithStartLine numbers the first line of the source, for snippets taken
// from a larger document.
func WithStartLine(line int) Option {
	return func(o *options) { o.startLine = line }
}

// WithStrict enables strict mode.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

func newParser(src string, o options) *parser {
	return &parser{
		scanner: scanner.New(src, o.filename, o.startLine),
		src:     src,
		strict:  o.strict,
	}
}

// ParseFile parses the source code of a single script and returns the
// corresponding ast.Program node.
func ParseFile(src string, opts ...Option) (program *ast.Program, err error) {
	o := options{startLine: 1}
	for _, opt := range opts {
		opt(&o)
	}

	defer recoverSyntaxError(&err)
	p := newParser(src, o)
	script := p.parseScript()
	if !p.scanner.Done() {
		p.errorf("Syntax error")
	}
	return script, nil
}

// parseScript parses the top level of the source.
func (p *parser) parseScript() *ast.Program {
	p.openScope(false)
	defer p.closeScope()

	program := &ast.Program{Span: ast.NewSpan(0, ast.Idx(len(p.src)), p.scanner.Line())}
	program.Body = p.parseStatements()
	program.FunDecls = p.scope.funDecls
	program.VarDecls = p.scope.varDecls
	return program
}

// span returns the span of the current token.
func (p *parser) span() ast.Span {
	tok := p.scanner.Token()
	return ast.NewSpan(tok.Idx0, tok.Idx1, tok.Line)
}

func (p *parser) current() scanner.Token {
	return p.scanner.Token()
}

func (p *parser) identifier() *ast.Identifier {
	return &ast.Identifier{Span: p.span(), Name: p.current().Value}
}

// literal builds the node for the current operand token.
func (p *parser) literal() ast.Expr {
	tok := p.current()
	span := p.span()
	switch tok.Kind {
	case token.Identifier:
		return &ast.Identifier{Span: span, Name: tok.Value}
	case token.Number:
		return &ast.NumberLiteral{Span: span, Value: tok.Number, Literal: tok.Value}
	case token.String:
		return &ast.StringLiteral{Span: span, Value: tok.Value, Literal: tok.Raw(p.scanner)}
	case token.RegExp:
		return &ast.RegExpLiteral{Span: span, Literal: tok.Value, Pattern: tok.Pattern, Flags: tok.Flags}
	case token.Boolean:
		return &ast.BooleanLiteral{Span: span, Value: tok.Value == "true"}
	case token.Null:
		return &ast.NullLiteral{Span: span}
	case token.This:
		return &ast.ThisExpression{Span: span}
	}
	panic("parser: literal called on " + tok.Kind.String())
}

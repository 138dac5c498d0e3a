package parser

import (
	"github.com/t14raptor/jsparse/ast"
)

type constructKind int

const (
	constructBlock constructKind = iota
	constructIf
	constructWith
	constructLoop
	constructSwitch
	constructLabel
)

// construct is an entry of the stack of statements currently being parsed.
// break and continue are resolved against it.
type construct struct {
	kind  constructKind
	label string   // constructLabel only
	node  ast.Stmt // nil for blocks
}

// scope is the parser state of one script or function body.
type scope struct {
	outer      *scope
	inFunction bool

	constructs []*construct
	funDecls   []*ast.FunctionLiteral
	varDecls   []*ast.VariableDeclarator

	bracketLevel int
	curlyLevel   int
	parenLevel   int
	hookLevel    int

	inForLoopInit bool
}

func (p *parser) openScope(inFunction bool) {
	p.scope = &scope{
		outer:      p.scope,
		inFunction: inFunction,
	}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

func (p *parser) openConstruct(c *construct) {
	p.scope.constructs = append(p.scope.constructs, c)
}

func (p *parser) closeConstruct() {
	p.scope.constructs = p.scope.constructs[:len(p.scope.constructs)-1]
}

// nest parses a statement with c open.
func (p *parser) nest(c *construct) ast.Stmt {
	p.openConstruct(c)
	defer p.closeConstruct()
	return p.parseStatement()
}

// nested reports whether the parser is inside a statement of the current
// body rather than directly in it.
func (s *scope) nested() bool {
	return len(s.constructs) > 1
}

// findLabel returns the position of the open label name, or -1.
func (s *scope) findLabel(name string) int {
	for i := len(s.constructs) - 1; i >= 0; i-- {
		if c := s.constructs[i]; c.kind == constructLabel && c.label == name {
			return i
		}
	}
	return -1
}

// labelTarget returns the statement a branch to the label at position i
// leaves or continues. Labels stacked on one statement share it, and a
// labelled loop is targeted itself. loop reports whether that target is
// a loop.
func (s *scope) labelTarget(i int) (target ast.Stmt, loop bool) {
	for i < len(s.constructs)-1 && s.constructs[i+1].kind == constructLabel {
		i++
	}
	if i < len(s.constructs)-1 && s.constructs[i+1].kind == constructLoop {
		return s.constructs[i+1].node, true
	}
	return s.constructs[i].node, false
}

// findBranchTarget returns the innermost loop, or for a break also the
// innermost switch.
func (s *scope) findBranchTarget(isBreak bool) *construct {
	for i := len(s.constructs) - 1; i >= 0; i-- {
		c := s.constructs[i]
		if c.kind == constructLoop || (isBreak && c.kind == constructSwitch) {
			return c
		}
	}
	return nil
}

// levels is a snapshot of the nesting counters.
type levels struct {
	bracket, curly, paren, hook int
}

func (s *scope) levels() levels {
	return levels{
		bracket: s.bracketLevel,
		curly:   s.curlyLevel,
		paren:   s.parenLevel,
		hook:    s.hookLevel,
	}
}

func (s *scope) atTopLevel() bool {
	return s.bracketLevel == 0 && s.curlyLevel == 0 && s.parenLevel == 0 && s.hookLevel == 0
}

package generator

import (
	"strings"

	"github.com/t14raptor/jsparse/ast"
)

const indentUnit = "    "

// printer writes one node. Children get their own printer sharing the
// output, so a node can inspect its parent when deciding on parentheses.
type printer struct {
	out    *strings.Builder
	node   ast.Node
	parent *printer
	indent int
}

// emit prints a child of the current node.
func (p *printer) emit(node ast.Node) {
	child := &printer{out: p.out, node: node, parent: p, indent: p.indent}
	child.gen()
}

func (p *printer) print(text string) {
	p.out.WriteString(text)
}

// newline starts a new line at the current indentation.
func (p *printer) newline() {
	p.out.WriteByte('\n')
	p.out.WriteString(strings.Repeat(indentUnit, p.indent))
}

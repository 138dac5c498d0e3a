// Package generator prints syntax trees back to source text.
package generator

import (
	"fmt"
	"strings"

	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/token"
)

// Generate returns source text for node. Parsing the output yields a tree
// of the same shape.
func Generate(node ast.Node) string {
	p := &printer{out: &strings.Builder{}, node: node, parent: &printer{}}
	p.gen()
	return p.out.String()
}

func (p *printer) gen() {
	switch n := p.node.(type) {
	case nil:
	case *ast.ArrayLiteral:
		p.print("[")
		for i, ex := range n.Value {
			if ex != nil {
				p.emit(ex)
			}
			if i < len(n.Value)-1 || ex == nil {
				p.print(",")
				if i < len(n.Value)-1 {
					p.print(" ")
				}
			}
		}
		p.print("]")
	case *ast.AssignExpression:
		if p.parentIs(operatorParent) {
			p.print("(")
			defer p.print(")")
		}
		p.emit(n.Left)
		p.print(" ")
		if n.Operator != token.Assign {
			p.print(n.Operator.String())
		}
		p.print("= ")
		p.emit(n.Right)
	case *ast.BinaryExpression:
		if pn, ok := p.parent.node.(*ast.BinaryExpression); ok {
			prec, parentPrec := n.Operator.Precedence(), pn.Operator.Precedence()
			if prec < parentPrec || prec == parentPrec && pn.Right == ast.Expr(n) {
				p.print("(")
				defer p.print(")")
			}
		} else if p.parentIs(unaryParent) {
			p.print("(")
			defer p.print(")")
		}
		p.emit(n.Left)
		p.print(" " + n.Operator.String() + " ")
		p.emit(n.Right)
	case *ast.BlockStatement:
		p.block(n.List)
	case *ast.BooleanLiteral:
		if n.Value {
			p.print("true")
		} else {
			p.print("false")
		}
	case *ast.BranchStatement:
		p.print(n.Token.String())
		if n.Label != nil {
			p.print(" ")
			p.emit(n.Label)
		}
		p.print(";")
	case *ast.CallExpression:
		p.callee(n.Callee)
		p.arguments(n.ArgumentList)
	case *ast.CaseStatement:
		if n.Test != nil {
			p.print("case ")
			p.emit(n.Test)
			p.print(":")
		} else {
			p.print("default:")
		}
		p.indent++
		for _, st := range n.Consequent {
			p.newline()
			p.emit(st)
		}
		p.indent--
	case *ast.CatchStatement:
		p.print(" catch (")
		p.emit(n.Parameter)
		if n.Guard != nil {
			p.print(" if ")
			p.emit(n.Guard)
		}
		p.print(") ")
		p.emit(n.Body)
	case *ast.ConditionalExpression:
		if p.parentIs(operatorParent) {
			p.print("(")
			defer p.print(")")
		}
		p.emit(n.Test)
		p.print(" ? ")
		p.emit(n.Consequent)
		p.print(" : ")
		p.emit(n.Alternate)
	case *ast.DebuggerStatement:
		p.print("debugger;")
	case *ast.DoWhileStatement:
		p.print("do ")
		p.emit(n.Body)
		p.print(" while (")
		p.emit(n.Test)
		p.print(");")
	case *ast.DotExpression:
		p.callee(n.Left)
		p.print(".")
		p.print(n.Identifier.Name)
	case *ast.EmptyStatement:
		p.print(";")
	case *ast.ExpressionStatement:
		// A leading brace or function keyword would start a different statement.
		switch n.Expression.(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral:
			p.print("(")
			p.emit(n.Expression)
			p.print(")")
		default:
			p.emit(n.Expression)
		}
		p.print(";")
	case *ast.ForInStatement:
		p.print("for (")
		if n.Declaration != nil {
			p.declarations(n.Declaration)
		} else {
			p.emit(n.Iterator)
		}
		p.print(" in ")
		p.emit(n.Object)
		p.print(") ")
		p.emit(n.Body)
	case *ast.ForStatement:
		p.print("for (")
		if decl, ok := n.Initializer.(*ast.VariableDeclaration); ok {
			p.declarations(decl)
		} else {
			p.emit(n.Initializer)
		}
		p.print(";")
		if n.Test != nil {
			p.print(" ")
			p.emit(n.Test)
		}
		p.print(";")
		if n.Update != nil {
			p.print(" ")
			p.emit(n.Update)
		}
		p.print(") ")
		p.emit(n.Body)
	case *ast.FunctionDeclaration:
		p.emit(n.Function)
	case *ast.FunctionLiteral:
		switch n.Kind {
		case ast.FunctionKindGetter:
			p.print("get ")
		case ast.FunctionKindSetter:
			p.print("set ")
		default:
			p.print("function")
			if n.Name != nil {
				p.print(" ")
			}
		}
		if n.Name != nil {
			p.emit(n.Name)
		}
		p.print("(")
		for i, param := range n.ParameterList {
			p.emit(param)
			if i < len(n.ParameterList)-1 {
				p.print(", ")
			}
		}
		p.print(") ")
		if n.Body != nil {
			p.block(n.Body.Body)
		} else {
			p.print("{}")
		}
	case *ast.GroupExpression:
		p.print("(")
		p.emit(n.Expression)
		p.print(")")
	case *ast.Identifier:
		if n != nil {
			p.print(n.Name)
		}
	case *ast.IfStatement:
		p.print("if (")
		p.emit(n.Test)
		p.print(") ")
		p.emit(n.Consequent)
		if n.Alternate != nil {
			p.print(" else ")
			p.emit(n.Alternate)
		}
	case *ast.IndexExpression:
		p.callee(n.Left)
		p.print("[")
		p.emit(n.Index)
		p.print("]")
	case *ast.LabelledStatement:
		p.emit(n.Label)
		p.print(": ")
		p.emit(n.Statement)
	case *ast.NewExpression:
		p.print("new ")
		if _, ok := n.Callee.(*ast.CallExpression); ok {
			p.print("(")
			p.emit(n.Callee)
			p.print(")")
		} else {
			p.callee(n.Callee)
		}
		if n.ArgumentList != nil {
			p.arguments(n.ArgumentList)
		}
	case *ast.NullLiteral:
		p.print("null")
	case *ast.NumberLiteral:
		if n.Literal != "" {
			p.print(n.Literal)
		} else {
			p.print(fmt.Sprint(n.Value))
		}
	case *ast.ObjectLiteral:
		p.print("{")
		p.indent++
		for i, prop := range n.Value {
			p.newline()
			p.emit(prop)
			if i < len(n.Value)-1 {
				p.print(",")
			}
		}
		p.indent--
		if len(n.Value) > 0 {
			p.newline()
		}
		p.print("}")
	case *ast.PropertyInit:
		p.emit(n.Key)
		p.print(": ")
		p.emit(n.Value)
	case *ast.Program:
		if n != nil {
			for _, b := range n.Body {
				p.emit(b)
				p.print("\n")
			}
		}
	case *ast.RegExpLiteral:
		p.print(n.Literal)
	case *ast.ReturnStatement:
		p.print("return")
		if n.Argument != nil {
			p.print(" ")
			p.emit(n.Argument)
		}
		p.print(";")
	case *ast.SequenceExpression:
		if p.parentIs(sequenceParent) {
			p.print("(")
			defer p.print(")")
		}
		for i, e := range n.Sequence {
			p.emit(e)
			if i < len(n.Sequence)-1 {
				p.print(", ")
			}
		}
	case *ast.StringLiteral:
		if n.Literal != "" {
			p.print(n.Literal)
		} else {
			p.print(quote(n.Value))
		}
	case *ast.SwitchStatement:
		p.print("switch (")
		p.emit(n.Discriminant)
		p.print(") {")
		for _, c := range n.Body {
			p.newline()
			p.emit(c)
		}
		if len(n.Body) > 0 {
			p.newline()
		}
		p.print("}")
	case *ast.ThisExpression:
		p.print("this")
	case *ast.ThrowStatement:
		p.print("throw")
		if n.Argument != nil {
			p.print(" ")
			p.emit(n.Argument)
		}
		p.print(";")
	case *ast.TryStatement:
		p.print("try ")
		p.emit(n.Body)
		for _, c := range n.Catches {
			p.emit(c)
		}
		if n.Finally != nil {
			p.print(" finally ")
			p.emit(n.Finally)
		}
	case *ast.UnaryExpression:
		op := n.Operator.String()
		p.print(op)
		if len(op) > 1 {
			p.print(" ")
		} else if startsWith(n.Operand, op) {
			// Keep "- -x" from turning into a decrement.
			p.print(" ")
		}
		p.emit(n.Operand)
	case *ast.UpdateExpression:
		if !n.Postfix {
			p.print(n.Operator.String())
		}
		p.emit(n.Operand)
		if n.Postfix {
			p.print(n.Operator.String())
		}
	case *ast.VariableDeclaration:
		p.declarations(n)
		p.print(";")
	case *ast.VariableDeclarator:
		p.emit(n.Name)
		if n.Initializer != nil {
			p.print(" = ")
			p.emit(n.Initializer)
		}
	case *ast.WhileStatement:
		p.print("while (")
		p.emit(n.Test)
		p.print(") ")
		p.emit(n.Body)
	case *ast.WithStatement:
		p.print("with (")
		p.emit(n.Object)
		p.print(") ")
		p.emit(n.Body)
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func (p *printer) block(list ast.Statements) {
	p.print("{")
	p.indent++
	for _, st := range list {
		p.newline()
		p.emit(st)
	}
	p.indent--
	if len(list) > 0 {
		p.newline()
	}
	p.print("}")
}

func (p *printer) declarations(n *ast.VariableDeclaration) {
	p.print(n.Token.String())
	p.print(" ")
	for i, decl := range n.List {
		p.emit(decl)
		if i < len(n.List)-1 {
			p.print(", ")
		}
	}
}

// callee prints the left side of a member access or call, parenthesized
// unless it binds at least as tightly.
func (p *printer) callee(x ast.Expr) {
	switch x.(type) {
	case *ast.Identifier, *ast.DotExpression, *ast.IndexExpression, *ast.CallExpression,
		*ast.GroupExpression, *ast.ThisExpression, *ast.StringLiteral, *ast.RegExpLiteral,
		*ast.ArrayLiteral, *ast.ObjectLiteral, *ast.NullLiteral, *ast.BooleanLiteral:
		p.emit(x)
	case *ast.NewExpression:
		if x.(*ast.NewExpression).ArgumentList != nil {
			p.emit(x)
			return
		}
		p.print("(")
		p.emit(x)
		p.print(")")
	default:
		p.print("(")
		p.emit(x)
		p.print(")")
	}
}

func (p *printer) arguments(args ast.Expressions) {
	p.print("(")
	for i, a := range args {
		p.emit(a)
		if i < len(args)-1 {
			p.print(", ")
		}
	}
	p.print(")")
}

type parentKind int

const (
	operatorParent parentKind = iota
	unaryParent
	sequenceParent
)

// parentIs reports whether the node is printed in a position where an
// expression of lower precedence needs parentheses.
func (p *printer) parentIs(kind parentKind) bool {
	switch p.parent.node.(type) {
	case *ast.BinaryExpression, *ast.UnaryExpression, *ast.UpdateExpression:
		return true
	case *ast.ConditionalExpression, *ast.AssignExpression, *ast.CallExpression, *ast.NewExpression,
		*ast.ArrayLiteral, *ast.PropertyInit, *ast.VariableDeclarator:
		return kind == sequenceParent
	}
	return false
}

// startsWith reports whether x is printed with a leading op character.
func startsWith(x ast.Expr, op string) bool {
	switch x := x.(type) {
	case *ast.UnaryExpression:
		return x.Operator.String() == op
	case *ast.UpdateExpression:
		return !x.Postfix && x.Operator.String()[:1] == op
	}
	return false
}

func quote(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

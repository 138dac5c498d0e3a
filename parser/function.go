package parser

import (
	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/token"
)

// parseFunction parses a function after its introducing token, which is
// either 'function' or the 'get'/'set' of an accessor property. Declared
// functions are recorded in the enclosing body.
func (p *parser) parseFunction(requireName bool, form ast.FunctionForm) *ast.FunctionLiteral {
	sc := p.scanner
	node := &ast.FunctionLiteral{Span: p.span(), Form: form}
	if tok := p.current(); tok.Kind == token.Identifier {
		switch tok.Value {
		case "get":
			node.Kind = ast.FunctionKindGetter
		case "set":
			node.Kind = ast.FunctionKindSetter
		}
	}

	if sc.Match(token.Identifier) {
		node.Name = p.identifier()
	} else if requireName {
		p.errorf("Missing function identifier")
	}

	sc.MustMatch(token.LeftParenthesis)
	if !sc.Match(token.RightParenthesis) {
		for {
			if !sc.Match(token.Identifier) {
				p.errorf("Missing formal parameter")
			}
			node.ParameterList = append(node.ParameterList, p.identifier())
			if !sc.Match(token.Comma) {
				break
			}
		}
		sc.MustMatch(token.RightParenthesis)
	}

	sc.MustMatch(token.LeftBrace)
	node.Body = p.parseFunctionBody()
	node.Extend(node.Body.Idx1())

	if form == ast.FormDeclared {
		p.scope.funDecls = append(p.scope.funDecls, node)
	}
	return node
}

// parseFunctionBody parses the statements between the braces of a function
// in a fresh scope. The current token is the opening brace.
func (p *parser) parseFunctionBody() *ast.Program {
	body := &ast.Program{Span: p.span()}

	p.openScope(true)
	body.Body = p.parseStatements()
	body.FunDecls = p.scope.funDecls
	body.VarDecls = p.scope.varDecls
	p.closeScope()

	p.scanner.MustMatch(token.RightBrace)
	body.Extend(p.current().Idx1)
	return body
}

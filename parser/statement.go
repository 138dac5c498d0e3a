package parser

import (
	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/token"
)

// parseStatements parses statements up to a closing brace or the end of
// input, which it leaves unconsumed.
func (p *parser) parseStatements() ast.Statements {
	p.openConstruct(&construct{kind: constructBlock})
	defer p.closeConstruct()

	var list ast.Statements
	for !p.scanner.Done() && p.scanner.Peek() != token.RightBrace {
		list = append(list, p.parseStatement())
	}
	return list
}

func (p *parser) parseBlock() *ast.BlockStatement {
	p.scanner.MustMatch(token.LeftBrace)
	node := &ast.BlockStatement{Span: p.span()}
	node.List = p.parseStatements()
	p.scanner.MustMatch(token.RightBrace)
	node.Extend(p.current().Idx1)
	return node
}

func (p *parser) parseStatement() ast.Stmt {
	sc := p.scanner
	s := p.scope

	tkn := sc.Next()
	var node interface {
		ast.Stmt
		Extend(to ast.Idx)
	}

	switch tkn {
	case token.Function:
		form := ast.FormDeclared
		if s.nested() {
			form = ast.FormStatement
		}
		fn := p.parseFunction(true, form)
		return &ast.FunctionDeclaration{Span: fn.Span, Function: fn}

	case token.LeftBrace:
		block := &ast.BlockStatement{Span: p.span()}
		block.List = p.parseStatements()
		sc.MustMatch(token.RightBrace)
		block.Extend(p.current().Idx1)
		return block

	case token.If:
		stmt := &ast.IfStatement{Span: p.span()}
		stmt.Test = p.parseParenExpression()
		c := &construct{kind: constructIf, node: stmt}
		stmt.Consequent = p.nest(c)
		if sc.Match(token.Else) {
			stmt.Alternate = p.nest(c)
		}
		stmt.Attach(stmt.Test, stmt.Consequent, stmt.Alternate)
		return stmt

	case token.Switch:
		return p.parseSwitch()

	case token.For:
		return p.parseFor()

	case token.While:
		stmt := &ast.WhileStatement{Span: p.span()}
		stmt.Test = p.parseParenExpression()
		stmt.Body = p.nest(&construct{kind: constructLoop, node: stmt})
		stmt.Attach(stmt.Body)
		return stmt

	case token.Do:
		stmt := &ast.DoWhileStatement{Span: p.span()}
		stmt.Body = p.nest(&construct{kind: constructLoop, node: stmt})
		sc.MustMatch(token.While)
		stmt.Test = p.parseParenExpression()
		stmt.Extend(p.current().Idx1)
		if !p.strict {
			// The semicolon after do-while may be omitted even on the same line.
			if sc.Match(token.Semicolon) {
				stmt.Extend(p.current().Idx1)
			}
			return stmt
		}
		node = stmt

	case token.Break, token.Continue:
		node = p.parseBranch(tkn)

	case token.Try:
		return p.parseTry()

	case token.Catch, token.Finally:
		p.errorf("%s without preceding try", tkn)

	case token.Throw:
		stmt := &ast.ThrowStatement{Span: p.span()}
		stmt.Argument = p.parseOptionalExpression()
		stmt.Attach(stmt.Argument)
		node = stmt

	case token.Return:
		if !s.inFunction {
			p.errorf("Invalid return")
		}
		stmt := &ast.ReturnStatement{Span: p.span()}
		stmt.Argument = p.parseOptionalExpression()
		stmt.Attach(stmt.Argument)
		node = stmt

	case token.With:
		stmt := &ast.WithStatement{Span: p.span()}
		stmt.Object = p.parseParenExpression()
		stmt.Body = p.nest(&construct{kind: constructWith, node: stmt})
		stmt.Attach(stmt.Body)
		return stmt

	case token.Var, token.Const:
		node = p.parseVariables(tkn)

	case token.Debugger:
		node = &ast.DebuggerStatement{Span: p.span()}

	case token.Semicolon:
		return &ast.EmptyStatement{Span: p.span()}

	case token.Identifier:
		if label := p.parseLabel(); label != nil {
			return label
		}
		fallthrough

	default:
		sc.Unget()
		x := p.parseExpr()
		node = &ast.ExpressionStatement{Span: ast.NewSpan(x.Idx0(), x.Idx1(), x.Line()), Expression: x}
	}

	p.semicolon(node)
	return node
}

// semicolon ends a simple statement. The semicolon may be left out before
// a line break, a closing brace, or the end of input.
func (p *parser) semicolon(node interface{ Extend(to ast.Idx) }) {
	switch p.scanner.PeekOnSameLine() {
	case token.Eof, token.Newline, token.Semicolon, token.RightBrace:
	default:
		p.errorf(errMissingSemicolon)
	}
	if p.scanner.Match(token.Semicolon) {
		node.Extend(p.current().Idx1)
	}
}

// parseOptionalExpression parses the argument of return or throw, which
// must start on the same line as the keyword.
func (p *parser) parseOptionalExpression() ast.Expr {
	switch p.scanner.PeekOnSameLine() {
	case token.Eof, token.Newline, token.Semicolon, token.RightBrace:
		return nil
	}
	return p.parseExpr()
}

// parseLabel parses "name:" and the statement it labels. The current token
// is the identifier. It returns nil, with nothing consumed, when no colon
// follows.
func (p *parser) parseLabel() *ast.LabelledStatement {
	sc := p.scanner
	sc.ScanOperand = false
	isLabel := sc.Peek() == token.Colon
	sc.ScanOperand = true
	if !isLabel {
		return nil
	}

	label := p.identifier()
	if p.scope.findLabel(label.Name) >= 0 {
		p.errorf("Duplicate label")
	}
	sc.Next()
	node := &ast.LabelledStatement{Span: label.Span, Label: label}
	node.Statement = p.nest(&construct{kind: constructLabel, label: label.Name, node: node})
	node.Attach(node.Statement)
	return node
}

func (p *parser) parseBranch(tkn token.Token) *ast.BranchStatement {
	sc := p.scanner
	s := p.scope
	node := &ast.BranchStatement{Span: p.span(), Token: tkn}

	if sc.PeekOnSameLine() == token.Identifier {
		sc.Next()
		node.Label = p.identifier()
		node.Attach(node.Label)
		i := s.findLabel(node.Label.Name)
		if i < 0 {
			p.errorf("Label not found")
		}
		target, loop := s.labelTarget(i)
		if tkn == token.Continue && !loop {
			p.errorf("Invalid continue")
		}
		node.Target = target
		return node
	}

	c := s.findBranchTarget(tkn == token.Break)
	if c == nil {
		if tkn == token.Break {
			p.errorf("Invalid break")
		}
		p.errorf("Invalid continue")
	}
	node.Target = c.node
	return node
}

func (p *parser) parseSwitch() *ast.SwitchStatement {
	sc := p.scanner
	node := &ast.SwitchStatement{Span: p.span(), Default: -1}
	node.Discriminant = p.parseParenExpression()
	sc.MustMatch(token.LeftBrace)

	p.openConstruct(&construct{kind: constructSwitch, node: node})
	defer p.closeConstruct()

	for !sc.Match(token.RightBrace) {
		tkn := sc.Next()
		clause := &ast.CaseStatement{Span: p.span()}
		switch tkn {
		case token.Default:
			if node.Default >= 0 {
				p.errorf("More than one switch default")
			}
			node.Default = len(node.Body)
		case token.Case:
			clause.Test = p.parseExpression(token.Colon)
			clause.Attach(clause.Test)
		default:
			p.errorf("Invalid switch case")
		}
		sc.MustMatch(token.Colon)
		clause.Extend(p.current().Idx1)

		for {
			next := sc.Peek()
			if next == token.Case || next == token.Default || next == token.RightBrace || next == token.Eof {
				break
			}
			stmt := p.parseStatement()
			clause.Consequent = append(clause.Consequent, stmt)
			clause.Attach(stmt)
		}
		node.Body = append(node.Body, clause)
	}
	node.Extend(p.current().Idx1)
	return node
}

func (p *parser) parseFor() ast.Stmt {
	sc := p.scanner
	span := p.span()
	sc.MustMatch(token.LeftParenthesis)

	var (
		init ast.Node
		decl *ast.VariableDeclaration
	)
	if tkn := sc.Peek(); tkn != token.Semicolon {
		init, decl = p.parseForInit(tkn)
	}

	if init != nil && sc.Match(token.In) {
		node := &ast.ForInStatement{Span: span, Declaration: decl}
		if decl != nil {
			if len(decl.List) != 1 {
				p.errorf(errInvalidForInTarget)
			}
			node.Iterator = decl.List[0]
		} else {
			if !isForInTarget(init.(ast.Expr)) {
				p.errorf(errInvalidForInTarget)
			}
			node.Iterator = init
		}
		node.Object = p.parseExpr()
		sc.MustMatch(token.RightParenthesis)
		node.Body = p.nest(&construct{kind: constructLoop, node: node})
		node.Attach(init, node.Object, node.Body)
		return node
	}

	node := &ast.ForStatement{Span: span, Initializer: init}
	sc.MustMatch(token.Semicolon)
	if sc.Peek() != token.Semicolon {
		node.Test = p.parseExpr()
	}
	sc.MustMatch(token.Semicolon)
	if sc.Peek() != token.RightParenthesis {
		node.Update = p.parseExpr()
	}
	sc.MustMatch(token.RightParenthesis)
	node.Body = p.nest(&construct{kind: constructLoop, node: node})
	node.Attach(init, node.Test, node.Update, node.Body)
	return node
}

// parseForInit parses the first clause of a for statement, where a
// top-level 'in' ends the clause instead of acting as an operator.
func (p *parser) parseForInit(tkn token.Token) (ast.Node, *ast.VariableDeclaration) {
	s := p.scope
	s.inForLoopInit = true
	defer func() { s.inForLoopInit = false }()

	if tkn == token.Var || tkn == token.Const {
		p.scanner.Next()
		decl := p.parseVariables(tkn)
		return decl, decl
	}
	return p.parseExpr(), nil
}

// isForInTarget reports whether x can be assigned to by a for-in loop.
func isForInTarget(x ast.Expr) bool {
	switch x := x.(type) {
	case *ast.Identifier, *ast.DotExpression, *ast.IndexExpression, *ast.CallExpression:
		return true
	case *ast.GroupExpression:
		return isForInTarget(x.Expression)
	}
	return false
}

func (p *parser) parseTry() *ast.TryStatement {
	sc := p.scanner
	node := &ast.TryStatement{Span: p.span()}
	node.Body = p.parseBlock()

	for sc.Match(token.Catch) {
		clause := &ast.CatchStatement{Span: p.span()}
		sc.MustMatch(token.LeftParenthesis)
		sc.MustMatch(token.Identifier)
		clause.Parameter = p.identifier()
		if sc.Match(token.If) {
			if p.strict {
				p.errorf("Illegal catch guard")
			}
			if n := len(node.Catches); n > 0 && node.Catches[n-1].Guard == nil {
				p.errorf("Guarded catch after unguarded")
			}
			clause.Guard = p.parseExpr()
		}
		sc.MustMatch(token.RightParenthesis)
		clause.Body = p.parseBlock()
		clause.Attach(clause.Body)
		node.Catches = append(node.Catches, clause)
	}
	if sc.Match(token.Finally) {
		node.Finally = p.parseBlock()
	}
	if len(node.Catches) == 0 && node.Finally == nil {
		p.errorf("Invalid try statement")
	}

	node.Attach(node.Body)
	for _, c := range node.Catches {
		node.Attach(c)
	}
	node.Attach(node.Finally)
	return node
}

// parseVariables parses the declarator list after var or const and records
// each declarator in the current body.
func (p *parser) parseVariables(kind token.Token) *ast.VariableDeclaration {
	sc := p.scanner
	node := &ast.VariableDeclaration{Span: p.span(), Token: kind}
	for {
		sc.MustMatch(token.Identifier)
		name := p.identifier()
		decl := &ast.VariableDeclarator{Span: name.Span, Name: name, ReadOnly: kind == token.Const}
		if sc.Match(token.Assign) {
			if p.current().AssignOp != token.Undetermined {
				p.errorf("Invalid variable initialization")
			}
			decl.Initializer = p.parseExpression(token.Comma)
			decl.Attach(decl.Initializer)
		}
		node.List = append(node.List, decl)
		node.Attach(decl)
		p.scope.varDecls = append(p.scope.varDecls, decl)
		if !sc.Match(token.Comma) {
			return node
		}
	}
}

package parser

import (
	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/token"
)

// operator is an entry of the operator stack. For assignments assignOp
// holds the compound operator, if any. A conditional is complete once its
// colon has been read.
type operator struct {
	kind     token.Token
	assignOp token.Token
	span     ast.Span
	complete bool
}

// expressionParser holds the two stacks of one parseExpression call.
type expressionParser struct {
	p         *parser
	operators []operator
	operands  []ast.Expr
}

type spanned interface {
	ast.Node
	Attach(children ...ast.Node)
	Extend(to ast.Idx)
}

func attach(node spanned, children ...ast.Expr) {
	for _, c := range children {
		if c != nil {
			node.Attach(c)
		}
	}
}

func (e *expressionParser) top() token.Token {
	if len(e.operators) == 0 {
		return token.Undetermined
	}
	return e.operators[len(e.operators)-1].kind
}

// completeConditional reports whether the top operator is a conditional
// whose colon was already read.
func (e *expressionParser) completeConditional() bool {
	return len(e.operators) > 0 && e.operators[len(e.operators)-1].complete
}

func (e *expressionParser) topPrecedence() int {
	return e.top().Precedence()
}

func (e *expressionParser) pushOperator(kind token.Token) {
	tok := e.p.current()
	e.operators = append(e.operators, operator{kind: kind, assignOp: tok.AssignOp, span: e.p.span()})
}

func (e *expressionParser) popOperator() operator {
	op := e.operators[len(e.operators)-1]
	e.operators = e.operators[:len(e.operators)-1]
	return op
}

func (e *expressionParser) pushOperand(x ast.Expr) {
	e.operands = append(e.operands, x)
}

func (e *expressionParser) popOperand() ast.Expr {
	if len(e.operands) == 0 {
		e.p.errorf(errMissingOperand)
	}
	x := e.operands[len(e.operands)-1]
	e.operands = e.operands[:len(e.operands)-1]
	return x
}

// extendOperand widens the top operand over a closing token.
func (e *expressionParser) extendOperand(to ast.Idx) {
	if node, ok := e.operands[len(e.operands)-1].(spanned); ok {
		node.Extend(to)
	}
}

// reduce pops the top operator, combines it with its operands, and pushes
// the result. It returns the kind of the reduced operator.
func (e *expressionParser) reduce() token.Token {
	if len(e.operators) == 0 {
		panic("parser: reduce with an empty operator stack")
	}
	op := e.popOperator()
	arity := op.kind.Arity()
	if arity == -2 {
		// Fold a, b, c into one sequence rather than a nested tree.
		if n := len(e.operands); n >= 2 {
			if seq, ok := e.operands[n-2].(*ast.SequenceExpression); ok {
				right := e.popOperand()
				seq.Sequence = append(seq.Sequence, right)
				seq.Attach(right)
				return op.kind
			}
		}
		arity = 2
	}
	if op.kind == token.QuestionMark && !op.complete {
		e.p.errorf("Missing : after ?")
	}
	if len(e.operands) < arity {
		e.p.errorf(errMissingOperand)
	}

	args := make([]ast.Expr, arity)
	copy(args, e.operands[len(e.operands)-arity:])
	e.operands = e.operands[:len(e.operands)-arity]

	var node spanned
	switch kind := op.kind; {
	case kind == token.Comma:
		node = &ast.SequenceExpression{Span: op.span, Sequence: ast.Expressions{args[0], args[1]}}
	case kind == token.QuestionMark:
		node = &ast.ConditionalExpression{Span: op.span, Test: args[0], Consequent: args[1], Alternate: args[2]}
	case kind == token.Assign:
		operator := token.Assign
		if op.assignOp != token.Undetermined {
			operator = op.assignOp
		}
		node = &ast.AssignExpression{Span: op.span, Operator: operator, Left: args[0], Right: args[1]}
	case kind.IsBinary():
		node = &ast.BinaryExpression{Span: op.span, Operator: kind, Left: args[0], Right: args[1]}
	case kind.IsUnary():
		node = &ast.UnaryExpression{Span: op.span, Operator: kind, Operand: args[0]}
	case kind == token.Increment || kind == token.Decrement:
		node = &ast.UpdateExpression{Span: op.span, Operator: kind, Operand: args[0]}
	case kind == token.New:
		node = &ast.NewExpression{Span: op.span, Callee: args[0]}
	case kind == token.NewWithArgs:
		node = &ast.NewExpression{Span: op.span, Callee: args[0], ArgumentList: argumentList(args[1])}
	case kind == token.Call:
		node = &ast.CallExpression{Span: op.span, Callee: args[0], ArgumentList: argumentList(args[1])}
	case kind == token.Index:
		node = &ast.IndexExpression{Span: op.span, Left: args[0], Index: args[1]}
	case kind == token.Group:
		node = &ast.GroupExpression{Span: op.span, Expression: args[0]}
	default:
		panic("parser: cannot reduce " + kind.String())
	}
	attach(node, args...)
	e.pushOperand(node.(ast.Expr))
	return op.kind
}

// argumentList spreads the comma list parsed between the parentheses of a
// call into separate arguments.
func argumentList(x ast.Expr) ast.Expressions {
	if seq, ok := x.(*ast.SequenceExpression); ok {
		return seq.Sequence
	}
	return ast.Expressions{x}
}

func (p *parser) parseExpr() ast.Expr {
	return p.parseExpression(token.Undetermined)
}

// parseExpression parses an expression with operator precedence. Parsing
// ends before stop when it is met outside any bracket opened by this call,
// or before the first token that cannot continue the expression.
func (p *parser) parseExpression(stop token.Token) ast.Expr {
	s := p.scope
	entry := s.levels()
	e := &expressionParser{p: p}
	sc := p.scanner

loop:
	for {
		tkn := sc.Next()
		if tkn == token.Eof {
			break
		}
		if tkn == stop && s.levels() == entry {
			break
		}

		switch tkn {
		case token.Semicolon:
			break loop

		case token.Assign, token.QuestionMark, token.Colon:
			if sc.ScanOperand {
				break loop
			}
			// Right-associative: reduce only strictly tighter operators. A
			// colon also closes assignments and completed conditionals so
			// that it pairs with the nearest open '?'.
			for e.topPrecedence() > tkn.Precedence() ||
				(tkn == token.Colon && (e.top() == token.Assign || e.completeConditional())) {
				e.reduce()
			}
			if tkn == token.Colon {
				if e.top() != token.QuestionMark {
					p.errorf("Invalid label")
				}
				e.operators[len(e.operators)-1].complete = true
				s.hookLevel--
			} else {
				e.pushOperator(tkn)
				if tkn == token.QuestionMark {
					s.hookLevel++
				}
			}
			sc.ScanOperand = true

		case token.In:
			if s.inForLoopInit && s.atTopLevel() {
				break loop
			}
			fallthrough
		case token.Comma,
			token.LogicalOr, token.LogicalAnd,
			token.Or, token.ExclusiveOr, token.And,
			token.Equal, token.NotEqual, token.StrictEqual, token.StrictNotEqual,
			token.Less, token.LessOrEqual, token.GreaterOrEqual, token.Greater, token.InstanceOf,
			token.ShiftLeft, token.ShiftRight, token.UnsignedShiftRight,
			token.Plus, token.Minus, token.Multiply, token.Slash, token.Remainder,
			token.Period:
			if sc.ScanOperand {
				break loop
			}
			for e.topPrecedence() >= tkn.Precedence() {
				e.reduce()
			}
			if tkn == token.Period {
				sc.MustMatch(token.Identifier)
				left := e.popOperand()
				dot := &ast.DotExpression{Span: p.span(), Left: left, Identifier: p.identifier()}
				dot.Attach(left)
				e.pushOperand(dot)
			} else {
				e.pushOperator(tkn)
				sc.ScanOperand = true
			}

		case token.Delete, token.Void, token.Typeof,
			token.Not, token.BitwiseNot, token.UnaryPlus, token.UnaryMinus,
			token.New:
			if !sc.ScanOperand {
				break loop
			}
			e.pushOperator(tkn)

		case token.Increment, token.Decrement:
			if sc.ScanOperand {
				e.pushOperator(tkn)
				break
			}
			if p.current().NewlineBefore {
				break loop
			}
			// Postfix binds tighter than prefix, so only reduce above it.
			for e.topPrecedence() > tkn.Precedence() {
				e.reduce()
			}
			operand := e.popOperand()
			update := &ast.UpdateExpression{Span: p.span(), Operator: tkn, Operand: operand, Postfix: true}
			update.Attach(operand)
			e.pushOperand(update)

		case token.Function:
			if !sc.ScanOperand {
				break loop
			}
			e.pushOperand(p.parseFunction(false, ast.FormExpressed))
			sc.ScanOperand = false

		case token.Null, token.This, token.Boolean,
			token.Identifier, token.Number, token.String, token.RegExp:
			if !sc.ScanOperand {
				break loop
			}
			e.pushOperand(p.literal())
			sc.ScanOperand = false

		case token.LeftBracket:
			if sc.ScanOperand {
				e.pushOperand(p.parseArrayLiteral())
				sc.ScanOperand = false
				break
			}
			e.pushOperator(token.Index)
			sc.ScanOperand = true
			s.bracketLevel++

		case token.RightBracket:
			if sc.ScanOperand || s.bracketLevel == entry.bracket {
				break loop
			}
			for e.reduce() != token.Index {
			}
			e.extendOperand(p.current().Idx1)
			s.bracketLevel--

		case token.LeftBrace:
			if !sc.ScanOperand {
				break loop
			}
			e.pushOperand(p.parseObjectLiteral())
			sc.ScanOperand = false

		case token.RightBrace:
			if !sc.ScanOperand && s.curlyLevel != entry.curly {
				panic("parser: unbalanced object literal nesting")
			}
			break loop

		case token.LeftParenthesis:
			if sc.ScanOperand {
				e.pushOperator(token.Group)
				s.parenLevel++
				break
			}
			for e.topPrecedence() > token.New.Precedence() {
				e.reduce()
			}

			// A regular expression or unary sign may start the arguments.
			sc.ScanOperand = true
			if sc.Match(token.RightParenthesis) {
				closing := p.current().Idx1
				var node spanned
				if e.top() == token.New {
					op := e.popOperator()
					callee := e.popOperand()
					node = &ast.NewExpression{Span: op.span, Callee: callee}
					node.Attach(callee)
				} else {
					callee := e.popOperand()
					node = &ast.CallExpression{Span: ast.NewSpan(callee.Idx0(), closing, callee.Line()), Callee: callee, ArgumentList: ast.Expressions{}}
					node.Attach(callee)
				}
				node.Extend(closing)
				e.pushOperand(node.(ast.Expr))
				sc.ScanOperand = false
				break
			}
			if e.top() == token.New {
				e.operators[len(e.operators)-1].kind = token.NewWithArgs
			} else {
				e.pushOperator(token.Call)
			}
			s.parenLevel++

		case token.RightParenthesis:
			if sc.ScanOperand || s.parenLevel == entry.paren {
				break loop
			}
			for {
				if kind := e.reduce(); kind == token.Group || kind == token.Call || kind == token.NewWithArgs {
					break
				}
			}
			e.extendOperand(p.current().Idx1)
			s.parenLevel--

		default:
			// The token belongs to whatever follows the expression, possibly
			// a statement on the next line after semicolon insertion.
			break loop
		}
	}

	switch {
	case s.hookLevel != entry.hook:
		p.errorf("Missing : after ?")
	case s.parenLevel != entry.paren:
		p.errorf("Missing ) in parenthetical")
	case s.bracketLevel != entry.bracket:
		p.errorf("Missing ] in index expression")
	case sc.ScanOperand:
		p.errorf(errMissingOperand)
	}

	// Resume scanning for operands.
	sc.ScanOperand = true
	sc.Unget()
	for len(e.operators) > 0 {
		e.reduce()
	}
	return e.popOperand()
}

// parseArrayLiteral parses the elements after '['. A comma with nothing
// before it leaves a hole, and a trailing comma ends the literal.
func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	sc := p.scanner
	node := &ast.ArrayLiteral{Span: p.span()}
	for tkn := sc.Peek(); tkn != token.RightBracket; tkn = sc.Peek() {
		if tkn == token.Comma {
			sc.Next()
			node.Value = append(node.Value, nil)
			continue
		}
		elem := p.parseExpression(token.Comma)
		node.Value = append(node.Value, elem)
		node.Attach(elem)
		if !sc.Match(token.Comma) {
			break
		}
	}
	sc.MustMatch(token.RightBracket)
	node.Extend(p.current().Idx1)
	return node
}

// parseObjectLiteral parses the members after '{'.
func (p *parser) parseObjectLiteral() *ast.ObjectLiteral {
	sc := p.scanner
	s := p.scope
	s.curlyLevel++
	defer func() { s.curlyLevel-- }()

	node := &ast.ObjectLiteral{Span: p.span()}
	if sc.Match(token.RightBrace) {
		node.Extend(p.current().Idx1)
		return node
	}
	for {
		tkn := sc.Next()
		tok := p.current()
		if tkn == token.Identifier && (tok.Value == "get" || tok.Value == "set") && sc.Peek() == token.Identifier {
			if p.strict {
				p.errorf("Illegal property accessor")
			}
			fn := p.parseFunction(true, ast.FormExpressed)
			node.Value = append(node.Value, fn)
			node.Attach(fn)
		} else {
			var key ast.Expr
			switch tkn {
			case token.Identifier, token.Number, token.String:
				key = p.literal()
			case token.RightBrace:
				if p.strict {
					p.errorf("Illegal trailing ,")
				}
				node.Extend(p.current().Idx1)
				return node
			default:
				p.errorf("Invalid property name")
			}
			sc.MustMatch(token.Colon)
			value := p.parseExpression(token.Comma)
			prop := &ast.PropertyInit{Span: ast.NewSpan(key.Idx0(), key.Idx1(), key.Line()), Key: key, Value: value}
			prop.Attach(value)
			node.Value = append(node.Value, prop)
			node.Attach(prop)
		}
		if !sc.Match(token.Comma) {
			break
		}
	}
	sc.MustMatch(token.RightBrace)
	node.Extend(p.current().Idx1)
	return node
}

// parseParenExpression parses '(' expression ')'.
func (p *parser) parseParenExpression() ast.Expr {
	p.scanner.MustMatch(token.LeftParenthesis)
	x := p.parseExpr()
	p.scanner.MustMatch(token.RightParenthesis)
	return x
}

package parser

import (
	"github.com/pattyshack/coolparse/ast"
	"github.com/pattyshack/coolparse/parser/grammar"
)

func (parser *Parser) parseExpression() ast.Expression {
	return parser.parseBinary(grammar.AssignLevel)
}

// Precedence climbing over the binary operator ladder.  Only operators
// binding at least as tight as minLevel are consumed.
func (parser *Parser) parseBinary(minLevel int) ast.Expression {
	left := parser.parseUnary()
	for {
		precedence, ok := grammar.BinaryOperators[parser.peek()]
		if !ok ||
			precedence.Level < minLevel ||
			precedence.Level == parser.unchainable {
			return left
		}

		op := parser.shift()
		right := parser.parseBinary(precedence.Level + 1)
		left = must(parser.reducer.BinaryToExpression(left, op, right))

		// The chained operator is left for the enclosing construct to reject.
		if precedence.Associativity == grammar.NonAssociative {
			next, ok := grammar.BinaryOperators[parser.peek()]
			if ok && next.Level == precedence.Level {
				parser.unchainable = precedence.Level
			}
		}
	}
}

// Prefix operators.  The operand extends over every binary operator that
// binds tighter than the prefix operator itself.
func (parser *Parser) parseUnary() ast.Expression {
	level, ok := grammar.PrefixOperators[parser.peek()]
	if !ok {
		return parser.parsePostfix(parser.parsePrimary())
	}

	op := parser.shift()
	operand := parser.parseBinary(level + 1)

	if op.SymbolId == grammar.IsVoidToken {
		return must(parser.reducer.IsVoidToExpression(op, operand))
	}
	return must(parser.reducer.UnaryToExpression(op, operand))
}

// expr -> explicit_dispatch: expr '.' OBJECTID '(' argument_list ')'
// expr -> static_dispatch: expr '@' TYPEID '.' OBJECTID '(' argument_list ')'
func (parser *Parser) parsePostfix(expr ast.Expression) ast.Expression {
	for {
		switch parser.peek() {
		case grammar.DotToken:
			dot := parser.shift()
			name := parser.expect(grammar.ObjectIdToken)
			lparen := parser.expect(grammar.LparenToken)
			args := parser.parseArgumentList()
			rparen := parser.shift()

			expr = must(
				parser.reducer.ExplicitDispatchToExpression(
					expr,
					dot,
					name,
					lparen,
					args,
					rparen))

		case grammar.AtToken:
			at := parser.shift()
			typeId := parser.expect(grammar.TypeIdToken)
			dot := parser.expect(grammar.DotToken)
			name := parser.expect(grammar.ObjectIdToken)
			lparen := parser.expect(grammar.LparenToken)
			args := parser.parseArgumentList()
			rparen := parser.shift()

			expr = must(
				parser.reducer.StaticDispatchToExpression(
					expr,
					at,
					typeId,
					dot,
					name,
					lparen,
					args,
					rparen))

		default:
			return expr
		}
	}
}

// argument_list -> nil:
// argument_list -> new: expr
// argument_list -> add: argument_list ',' expr
//
// The closing ')' is left as the current token.
func (parser *Parser) parseArgumentList() []ast.Expression {
	if parser.peek() == grammar.RparenToken {
		return must(parser.reducer.NilToArgumentList())
	}

	args := must(parser.reducer.NewToArgumentList(parser.parseExpression()))
	for {
		switch parser.peek() {
		case grammar.CommaToken:
			comma := parser.shift()
			arg := parser.parseExpression()
			args = must(parser.reducer.AddToArgumentList(args, comma, arg))
		case grammar.RparenToken:
			return args
		default:
			parser.fail(
				parser.continuations(grammar.CommaToken, grammar.RparenToken)...)
		}
	}
}

func (parser *Parser) parsePrimary() ast.Expression {
	switch parser.peek() {
	case grammar.IntegerLiteralToken:
		return must(parser.reducer.IntegerToExpression(parser.shift()))
	case grammar.StringLiteralToken:
		return must(parser.reducer.StringToExpression(parser.shift()))
	case grammar.BoolLiteralToken:
		return must(parser.reducer.BoolToExpression(parser.shift()))
	case grammar.ObjectIdToken:
		return parser.parseIdentifier()
	case grammar.LparenToken:
		lparen := parser.shift()
		expr := parser.parseExpression()
		rparen := parser.expectAfterExpression(grammar.RparenToken)
		return must(parser.reducer.ParenToExpression(lparen, expr, rparen))
	case grammar.IfToken:
		return parser.parseConditional()
	case grammar.WhileToken:
		return parser.parseLoop()
	case grammar.LbraceToken:
		return parser.parseBlock()
	case grammar.LetToken:
		return parser.parseLet()
	case grammar.CaseToken:
		return parser.parseCase()
	case grammar.NewToken:
		newKW := parser.shift()
		typeId := parser.expect(grammar.TypeIdToken)
		return must(parser.reducer.NewToExpression(newKW, typeId))
	default:
		parser.fail(grammar.ExpressionStart...)
		return nil
	}
}

// expr -> identifier: OBJECTID
// expr -> assign: OBJECTID ASSIGN expr
// expr -> implicit_dispatch: OBJECTID '(' argument_list ')'
func (parser *Parser) parseIdentifier() ast.Expression {
	name := parser.shift()

	switch parser.peek() {
	case grammar.AssignToken:
		assign := parser.shift()
		value := parser.parseExpression()
		return must(parser.reducer.AssignToExpression(name, assign, value))
	case grammar.LparenToken:
		lparen := parser.shift()
		args := parser.parseArgumentList()
		rparen := parser.shift()
		return must(
			parser.reducer.ImplicitDispatchToExpression(name, lparen, args, rparen))
	default:
		return must(parser.reducer.IdentifierToExpression(name))
	}
}

// expr -> conditional: IF expr THEN expr ELSE expr FI
func (parser *Parser) parseConditional() ast.Expression {
	ifKW := parser.shift()
	test := parser.parseExpression()
	thenKW := parser.expectAfterExpression(grammar.ThenToken)
	thenExpr := parser.parseExpression()
	elseKW := parser.expectAfterExpression(grammar.ElseToken)
	elseExpr := parser.parseExpression()
	fiKW := parser.expectAfterExpression(grammar.FiToken)

	return must(
		parser.reducer.ConditionalToExpression(
			ifKW,
			test,
			thenKW,
			thenExpr,
			elseKW,
			elseExpr,
			fiKW))
}

// expr -> loop: WHILE expr LOOP expr POOL
func (parser *Parser) parseLoop() ast.Expression {
	whileKW := parser.shift()
	test := parser.parseExpression()
	loopKW := parser.expectAfterExpression(grammar.LoopToken)
	body := parser.parseExpression()
	poolKW := parser.expectAfterExpression(grammar.PoolToken)

	return must(
		parser.reducer.LoopToExpression(whileKW, test, loopKW, body, poolKW))
}

// expr -> block: '{' statement_list '}'
//
// statement_list -> new: expr ';'
// statement_list -> add: statement_list expr ';'
func (parser *Parser) parseBlock() ast.Expression {
	lbrace := parser.shift()

	var stmts []ast.Expression
	for {
		var expr ast.Expression
		var semicolon *grammar.TokenValue
		ok := parser.catch(
			"statement",
			func() {
				expr = parser.parseExpression()
				semicolon = parser.expectAfterExpression(grammar.SemicolonToken)
			},
			parser.syncStatement)

		if ok {
			if len(stmts) == 0 {
				stmts = must(parser.reducer.NewToStatementList(expr, semicolon))
			} else {
				stmts = must(
					parser.reducer.AddToStatementList(stmts, expr, semicolon))
			}
		}

		if parser.peek() == grammar.RbraceToken {
			break
		}
	}

	rbrace := parser.shift()
	return must(parser.reducer.BlockToExpression(lbrace, stmts, rbrace))
}

// expr -> let: LET let_binding_list IN expr
//
// let_binding_list -> new: let_binding
// let_binding_list -> add: let_binding_list ',' let_binding
func (parser *Parser) parseLet() ast.Expression {
	letKW := parser.shift()

	var bindings []*grammar.ParsedLetBinding
	var comma *grammar.TokenValue
	for {
		var binding *grammar.ParsedLetBinding
		ok := parser.catch(
			"let binding",
			func() {
				binding = parser.parseLetBinding()
				switch parser.peek() {
				case grammar.CommaToken, grammar.InToken:
				default:
					_, uninitialized := binding.Init.(*ast.NoExpr)
					if uninitialized {
						parser.fail(
							grammar.AssignToken,
							grammar.CommaToken,
							grammar.InToken)
					}
					parser.fail(
						parser.continuations(grammar.CommaToken, grammar.InToken)...)
				}
			},
			parser.syncLetBinding)

		if ok {
			if len(bindings) == 0 {
				bindings = must(parser.reducer.NewToLetBindingList(binding))
			} else {
				bindings = must(
					parser.reducer.AddToLetBindingList(bindings, comma, binding))
			}
		}

		// The separating ',' is consumed by resynchronization.
		comma = nil
		if parser.peek() == grammar.InToken {
			break
		}

		if ok {
			comma = parser.shift()
		}
	}

	inKW := parser.shift()
	body := parser.parseExpression()
	return must(parser.reducer.LetToExpression(letKW, bindings, inKW, body))
}

// let_binding -> uninitialized: OBJECTID ':' TYPEID
// let_binding -> initialized: OBJECTID ':' TYPEID ASSIGN expr
func (parser *Parser) parseLetBinding() *grammar.ParsedLetBinding {
	name := parser.expect(grammar.ObjectIdToken)
	colon := parser.expect(grammar.ColonToken)
	typeId := parser.expect(grammar.TypeIdToken)

	if parser.peek() != grammar.AssignToken {
		return must(
			parser.reducer.UninitializedToLetBinding(name, colon, typeId))
	}

	assign := parser.shift()
	init := parser.parseExpression()
	return must(
		parser.reducer.InitializedToLetBinding(name, colon, typeId, assign, init))
}

// expr -> case: CASE expr OF branch_list ESAC
//
// branch_list -> new: branch
// branch_list -> add: branch_list branch
func (parser *Parser) parseCase() ast.Expression {
	caseKW := parser.shift()
	scrutinee := parser.parseExpression()
	ofKW := parser.expectAfterExpression(grammar.OfToken)

	branches := must(parser.reducer.NewToBranchList(parser.parseBranch()))
	for {
		switch parser.peek() {
		case grammar.ObjectIdToken:
			branches = must(
				parser.reducer.AddToBranchList(branches, parser.parseBranch()))
		case grammar.EsacToken:
			esacKW := parser.shift()
			return must(
				parser.reducer.CaseToExpression(
					caseKW,
					scrutinee,
					ofKW,
					branches,
					esacKW))
		default:
			parser.fail(grammar.ObjectIdToken, grammar.EsacToken)
		}
	}
}

// branch -> OBJECTID ':' TYPEID DARROW expr ';'
func (parser *Parser) parseBranch() *ast.Branch {
	name := parser.expect(grammar.ObjectIdToken)
	colon := parser.expect(grammar.ColonToken)
	typeId := parser.expect(grammar.TypeIdToken)
	darrow := parser.expect(grammar.DarrowToken)
	body := parser.parseExpression()
	semicolon := parser.expectAfterExpression(grammar.SemicolonToken)
	return must(
		parser.reducer.ToBranch(name, colon, typeId, darrow, body, semicolon))
}

package reducer

import (
	"fmt"
	"strings"

	"github.com/pattyshack/coolparse/ast"
	"github.com/pattyshack/coolparse/parser/grammar"
)

var (
	binaryOperators = map[grammar.SymbolId]ast.BinaryOperator{
		grammar.PlusToken:      ast.Plus,
		grammar.MinusToken:     ast.Sub,
		grammar.StarToken:      ast.Mul,
		grammar.SlashToken:     ast.Divide,
		grammar.LessToken:      ast.Less,
		grammar.LessEqualToken: ast.LessEqual,
		grammar.EqualToken:     ast.Equal,
	}

	unaryOperators = map[grammar.SymbolId]ast.UnaryOperator{
		grammar.NotToken:   ast.Not,
		grammar.TildeToken: ast.Negate,
	}
)

func (reducer *Reducer) IntegerToExpression(
	token *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.IntConst{
		SourceLine: line(token),
		Value:      reducer.symbol(token),
	}, nil
}

func (reducer *Reducer) StringToExpression(
	token *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.StringConst{
		SourceLine: line(token),
		Value:      reducer.symbol(token),
	}, nil
}

func (reducer *Reducer) BoolToExpression(
	token *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.BoolConst{
		SourceLine: line(token),
		Value:      strings.EqualFold(token.Value, "true"),
	}, nil
}

func (reducer *Reducer) IdentifierToExpression(
	name *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.Object{
		SourceLine: line(name),
		Name:       reducer.symbol(name),
	}, nil
}

// Parentheses only group; no node is created for them.
func (reducer *Reducer) ParenToExpression(
	lparen *grammar.TokenValue,
	expr ast.Expression,
	rparen *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return expr, nil
}

func (reducer *Reducer) AssignToExpression(
	name *grammar.TokenValue,
	assign *grammar.TokenValue,
	value ast.Expression,
) (
	ast.Expression,
	error,
) {
	return &ast.Assign{
		SourceLine: line(name),
		Name:       reducer.symbol(name),
		Value:      value,
	}, nil
}

func (reducer *Reducer) ConditionalToExpression(
	ifKW *grammar.TokenValue,
	test ast.Expression,
	thenKW *grammar.TokenValue,
	thenExpr ast.Expression,
	elseKW *grammar.TokenValue,
	elseExpr ast.Expression,
	fiKW *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.Conditional{
		SourceLine: line(ifKW),
		Test:       test,
		Then:       thenExpr,
		Else:       elseExpr,
	}, nil
}

func (reducer *Reducer) LoopToExpression(
	whileKW *grammar.TokenValue,
	test ast.Expression,
	loopKW *grammar.TokenValue,
	body ast.Expression,
	poolKW *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.Loop{
		SourceLine: line(whileKW),
		Test:       test,
		Body:       body,
	}, nil
}

// An empty statement list only occurs when every statement was discarded
// during error recovery.
func (reducer *Reducer) BlockToExpression(
	lbrace *grammar.TokenValue,
	stmts []ast.Expression,
	rbrace *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	if len(stmts) == 0 {
		return &ast.NoExpr{
			SourceLine: line(lbrace),
		}, nil
	}

	return &ast.Block{
		SourceLine: line(lbrace),
		Body:       stmts,
	}, nil
}

func (reducer *Reducer) NewToExpression(
	newKW *grammar.TokenValue,
	typeId *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.New{
		SourceLine: line(newKW),
		Type:       reducer.symbol(typeId),
	}, nil
}

func (reducer *Reducer) ExplicitDispatchToExpression(
	receiver ast.Expression,
	dot *grammar.TokenValue,
	method *grammar.TokenValue,
	lparen *grammar.TokenValue,
	args []ast.Expression,
	rparen *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.Dispatch{
		SourceLine: ast.SourceLine(receiver.Line()),
		Receiver:   receiver,
		Method:     reducer.symbol(method),
		Args:       args,
	}, nil
}

func (reducer *Reducer) ImplicitDispatchToExpression(
	method *grammar.TokenValue,
	lparen *grammar.TokenValue,
	args []ast.Expression,
	rparen *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.Dispatch{
		SourceLine: line(method),
		Receiver: &ast.Object{
			SourceLine: line(method),
			Name:       ast.Symbol(reducer.interner.Intern(string(ast.SelfName))),
		},
		Method: reducer.symbol(method),
		Args:   args,
	}, nil
}

func (reducer *Reducer) StaticDispatchToExpression(
	receiver ast.Expression,
	at *grammar.TokenValue,
	typeId *grammar.TokenValue,
	dot *grammar.TokenValue,
	method *grammar.TokenValue,
	lparen *grammar.TokenValue,
	args []ast.Expression,
	rparen *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.StaticDispatch{
		SourceLine: ast.SourceLine(receiver.Line()),
		Receiver:   receiver,
		Type:       reducer.symbol(typeId),
		Method:     reducer.symbol(method),
		Args:       args,
	}, nil
}

func (reducer *Reducer) UninitializedToLetBinding(
	name *grammar.TokenValue,
	colon *grammar.TokenValue,
	typeId *grammar.TokenValue,
) (
	*grammar.ParsedLetBinding,
	error,
) {
	return &grammar.ParsedLetBinding{
		SourceLine: line(name),
		Name:       reducer.symbol(name),
		Type:       reducer.symbol(typeId),
		Init: &ast.NoExpr{
			SourceLine: line(name),
		},
	}, nil
}

func (reducer *Reducer) InitializedToLetBinding(
	name *grammar.TokenValue,
	colon *grammar.TokenValue,
	typeId *grammar.TokenValue,
	assign *grammar.TokenValue,
	init ast.Expression,
) (
	*grammar.ParsedLetBinding,
	error,
) {
	return &grammar.ParsedLetBinding{
		SourceLine: line(name),
		Name:       reducer.symbol(name),
		Type:       reducer.symbol(typeId),
		Init:       init,
	}, nil
}

// `let b1, b2, ..., bn in body` folds right into
// Let(b1, Let(b2, ... Let(bn, body))).  The outermost let takes the LET
// keyword's line; the nested ones take their binding's line.  When every
// binding was discarded during error recovery, the body stands alone.
func (reducer *Reducer) LetToExpression(
	letKW *grammar.TokenValue,
	bindings []*grammar.ParsedLetBinding,
	inKW *grammar.TokenValue,
	body ast.Expression,
) (
	ast.Expression,
	error,
) {
	result := body
	for idx := len(bindings) - 1; idx >= 0; idx-- {
		binding := bindings[idx]

		sourceLine := binding.SourceLine
		if idx == 0 {
			sourceLine = line(letKW)
		}

		result = &ast.Let{
			SourceLine: sourceLine,
			Name:       binding.Name,
			Type:       binding.Type,
			Init:       binding.Init,
			Body:       result,
		}
	}

	return result, nil
}

func (reducer *Reducer) ToBranch(
	name *grammar.TokenValue,
	colon *grammar.TokenValue,
	typeId *grammar.TokenValue,
	darrow *grammar.TokenValue,
	body ast.Expression,
	semicolon *grammar.TokenValue,
) (
	*ast.Branch,
	error,
) {
	return &ast.Branch{
		SourceLine: line(name),
		Name:       reducer.symbol(name),
		Type:       reducer.symbol(typeId),
		Body:       body,
	}, nil
}

func (reducer *Reducer) CaseToExpression(
	caseKW *grammar.TokenValue,
	scrutinee ast.Expression,
	ofKW *grammar.TokenValue,
	branches []*ast.Branch,
	esacKW *grammar.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.Case{
		SourceLine: line(caseKW),
		Scrutinee:  scrutinee,
		Branches:   branches,
	}, nil
}

func (reducer *Reducer) IsVoidToExpression(
	isVoid *grammar.TokenValue,
	operand ast.Expression,
) (
	ast.Expression,
	error,
) {
	return &ast.IsVoid{
		SourceLine: line(isVoid),
		Operand:    operand,
	}, nil
}

func (reducer *Reducer) UnaryToExpression(
	op *grammar.TokenValue,
	operand ast.Expression,
) (
	ast.Expression,
	error,
) {
	unaryOp, ok := unaryOperators[op.SymbolId]
	if !ok {
		return nil, fmt.Errorf("unexpected unary operator (%s)", op.SymbolId)
	}

	return &ast.Unary{
		SourceLine: line(op),
		Op:         unaryOp,
		Operand:    operand,
	}, nil
}

func (reducer *Reducer) BinaryToExpression(
	left ast.Expression,
	op *grammar.TokenValue,
	right ast.Expression,
) (
	ast.Expression,
	error,
) {
	binaryOp, ok := binaryOperators[op.SymbolId]
	if !ok {
		return nil, fmt.Errorf("unexpected binary operator (%s)", op.SymbolId)
	}

	return &ast.Binary{
		SourceLine: ast.SourceLine(left.Line()),
		Left:       left,
		Op:         binaryOp,
		Right:      right,
	}, nil
}

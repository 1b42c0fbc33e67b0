package reducer

import (
	"github.com/pattyshack/coolparse/ast"
	"github.com/pattyshack/coolparse/parser/grammar"
)

// Interner maps equal strings to a single canonical copy.
// *stringutil.InternPool satisfies this interface.
type Interner interface {
	Intern(string) string
}

type Reducer struct {
	interner Interner
}

var _ grammar.Reducer = &Reducer{}

func NewReducer(interner Interner) *Reducer {
	return &Reducer{
		interner: interner,
	}
}

func (reducer *Reducer) symbol(token *grammar.TokenValue) ast.Symbol {
	return ast.Symbol(reducer.interner.Intern(token.Value))
}

func line(token *grammar.TokenValue) ast.SourceLine {
	return ast.SourceLine(grammar.Line(token))
}

func (reducer *Reducer) ToProgram(
	classes []*ast.Class,
) (
	*ast.Program,
	error,
) {
	program := &ast.Program{
		Classes: classes,
	}
	if len(classes) > 0 {
		program.SourceLine = classes[0].SourceLine
	}
	return program, nil
}

func (reducer *Reducer) ImplicitToClass(
	class *grammar.TokenValue,
	name *grammar.TokenValue,
	lbrace *grammar.TokenValue,
	features []ast.Feature,
	rbrace *grammar.TokenValue,
	semicolon *grammar.TokenValue,
) (
	*ast.Class,
	error,
) {
	return &ast.Class{
		SourceLine: line(class),
		Name:       reducer.symbol(name),
		Parent:     ast.Symbol(reducer.interner.Intern(string(ast.ObjectClassName))),
		FileName:   ast.Symbol(reducer.interner.Intern(class.Loc().FileName)),
		Features:   features,
	}, nil
}

func (reducer *Reducer) InheritsToClass(
	class *grammar.TokenValue,
	name *grammar.TokenValue,
	inherits *grammar.TokenValue,
	parent *grammar.TokenValue,
	lbrace *grammar.TokenValue,
	features []ast.Feature,
	rbrace *grammar.TokenValue,
	semicolon *grammar.TokenValue,
) (
	*ast.Class,
	error,
) {
	return &ast.Class{
		SourceLine: line(class),
		Name:       reducer.symbol(name),
		Parent:     reducer.symbol(parent),
		FileName:   ast.Symbol(reducer.interner.Intern(class.Loc().FileName)),
		Features:   features,
	}, nil
}

func (reducer *Reducer) AttributeToFeature(
	name *grammar.TokenValue,
	colon *grammar.TokenValue,
	typeId *grammar.TokenValue,
) (
	ast.Feature,
	error,
) {
	return &ast.Attribute{
		SourceLine: line(name),
		Name:       reducer.symbol(name),
		Type:       reducer.symbol(typeId),
		Init: &ast.NoExpr{
			SourceLine: line(name),
		},
	}, nil
}

func (reducer *Reducer) InitializedAttributeToFeature(
	name *grammar.TokenValue,
	colon *grammar.TokenValue,
	typeId *grammar.TokenValue,
	assign *grammar.TokenValue,
	init ast.Expression,
) (
	ast.Feature,
	error,
) {
	return &ast.Attribute{
		SourceLine: line(name),
		Name:       reducer.symbol(name),
		Type:       reducer.symbol(typeId),
		Init:       init,
	}, nil
}

func (reducer *Reducer) MethodToFeature(
	name *grammar.TokenValue,
	lparen *grammar.TokenValue,
	formals []*ast.Formal,
	rparen *grammar.TokenValue,
	colon *grammar.TokenValue,
	returnType *grammar.TokenValue,
	lbrace *grammar.TokenValue,
	body ast.Expression,
	rbrace *grammar.TokenValue,
) (
	ast.Feature,
	error,
) {
	return &ast.Method{
		SourceLine: line(name),
		Name:       reducer.symbol(name),
		Formals:    formals,
		ReturnType: reducer.symbol(returnType),
		Body:       body,
	}, nil
}

func (reducer *Reducer) ToFormal(
	name *grammar.TokenValue,
	colon *grammar.TokenValue,
	typeId *grammar.TokenValue,
) (
	*ast.Formal,
	error,
) {
	return &ast.Formal{
		SourceLine: line(name),
		Name:       reducer.symbol(name),
		Type:       reducer.symbol(typeId),
	}, nil
}

package reducer

import (
	"github.com/pattyshack/coolparse/ast"
	"github.com/pattyshack/coolparse/parser/grammar"
)

func (reducer *Reducer) NewToClassList(
	class *ast.Class,
) (
	[]*ast.Class,
	error,
) {
	return []*ast.Class{class}, nil
}

func (reducer *Reducer) AddToClassList(
	list []*ast.Class,
	class *ast.Class,
) (
	[]*ast.Class,
	error,
) {
	return append(list, class), nil
}

func (reducer *Reducer) NilToFeatureList() (
	[]ast.Feature,
	error,
) {
	return nil, nil
}

func (reducer *Reducer) AddToFeatureList(
	list []ast.Feature,
	feature ast.Feature,
	semicolon *grammar.TokenValue,
) (
	[]ast.Feature,
	error,
) {
	return append(list, feature), nil
}

func (reducer *Reducer) NilToFormalList() (
	[]*ast.Formal,
	error,
) {
	return nil, nil
}

func (reducer *Reducer) NewToFormalList(
	formal *ast.Formal,
) (
	[]*ast.Formal,
	error,
) {
	return []*ast.Formal{formal}, nil
}

func (reducer *Reducer) AddToFormalList(
	list []*ast.Formal,
	comma *grammar.TokenValue,
	formal *ast.Formal,
) (
	[]*ast.Formal,
	error,
) {
	return append(list, formal), nil
}

func (reducer *Reducer) NewToStatementList(
	expr ast.Expression,
	semicolon *grammar.TokenValue,
) (
	[]ast.Expression,
	error,
) {
	return []ast.Expression{expr}, nil
}

func (reducer *Reducer) AddToStatementList(
	list []ast.Expression,
	expr ast.Expression,
	semicolon *grammar.TokenValue,
) (
	[]ast.Expression,
	error,
) {
	return append(list, expr), nil
}

func (reducer *Reducer) NilToArgumentList() (
	[]ast.Expression,
	error,
) {
	return nil, nil
}

func (reducer *Reducer) NewToArgumentList(
	arg ast.Expression,
) (
	[]ast.Expression,
	error,
) {
	return []ast.Expression{arg}, nil
}

func (reducer *Reducer) AddToArgumentList(
	list []ast.Expression,
	comma *grammar.TokenValue,
	arg ast.Expression,
) (
	[]ast.Expression,
	error,
) {
	return append(list, arg), nil
}

func (reducer *Reducer) NewToLetBindingList(
	binding *grammar.ParsedLetBinding,
) (
	[]*grammar.ParsedLetBinding,
	error,
) {
	return []*grammar.ParsedLetBinding{binding}, nil
}

func (reducer *Reducer) AddToLetBindingList(
	list []*grammar.ParsedLetBinding,
	comma *grammar.TokenValue,
	binding *grammar.ParsedLetBinding,
) (
	[]*grammar.ParsedLetBinding,
	error,
) {
	return append(list, binding), nil
}

func (reducer *Reducer) NewToBranchList(
	branch *ast.Branch,
) (
	[]*ast.Branch,
	error,
) {
	return []*ast.Branch{branch}, nil
}

func (reducer *Reducer) AddToBranchList(
	list []*ast.Branch,
	branch *ast.Branch,
) (
	[]*ast.Branch,
	error,
) {
	return append(list, branch), nil
}

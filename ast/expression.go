package ast

import (
	"github.com/pattyshack/gt/parseutil"
)

type UnaryOperator string

const (
	Not    = UnaryOperator("not")
	Negate = UnaryOperator("~")
)

type BinaryOperator string

const (
	Plus      = BinaryOperator("+")
	Sub       = BinaryOperator("-")
	Mul       = BinaryOperator("*")
	Divide    = BinaryOperator("/")
	Less      = BinaryOperator("<")
	LessEqual = BinaryOperator("<=")
	Equal     = BinaryOperator("=")
)

// Absent optional expression (attribute / let initializer).
type NoExpr struct {
	expression
	SourceLine
}

func (expr *NoExpr) Walk(visitor Visitor) {
	visitor.Enter(expr)
	visitor.Exit(expr)
}

type IntConst struct {
	expression
	SourceLine

	Value Symbol // the literal's digits
}

func (expr *IntConst) Walk(visitor Visitor) {
	visitor.Enter(expr)
	visitor.Exit(expr)
}

type StringConst struct {
	expression
	SourceLine

	Value Symbol
}

func (expr *StringConst) Walk(visitor Visitor) {
	visitor.Enter(expr)
	visitor.Exit(expr)
}

type BoolConst struct {
	expression
	SourceLine

	Value bool
}

func (expr *BoolConst) Walk(visitor Visitor) {
	visitor.Enter(expr)
	visitor.Exit(expr)
}

type Object struct {
	expression
	SourceLine

	Name Symbol
}

func (expr *Object) Walk(visitor Visitor) {
	visitor.Enter(expr)
	visitor.Exit(expr)
}

type Assign struct {
	expression
	SourceLine

	Name  Symbol
	Value Expression
}

func (expr *Assign) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Value.Walk(visitor)
	visitor.Exit(expr)
}

type Dispatch struct {
	expression
	SourceLine

	Receiver Expression // *Object(self) for implicit receivers
	Method   Symbol
	Args     []Expression
}

func (expr *Dispatch) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Receiver.Walk(visitor)
	for _, arg := range expr.Args {
		arg.Walk(visitor)
	}
	visitor.Exit(expr)
}

type StaticDispatch struct {
	expression
	SourceLine

	Receiver Expression
	Type     Symbol
	Method   Symbol
	Args     []Expression
}

func (expr *StaticDispatch) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Receiver.Walk(visitor)
	for _, arg := range expr.Args {
		arg.Walk(visitor)
	}
	visitor.Exit(expr)
}

type Conditional struct {
	expression
	SourceLine

	Test Expression
	Then Expression
	Else Expression
}

func (expr *Conditional) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Test.Walk(visitor)
	expr.Then.Walk(visitor)
	expr.Else.Walk(visitor)
	visitor.Exit(expr)
}

type Loop struct {
	expression
	SourceLine

	Test Expression
	Body Expression
}

func (expr *Loop) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Test.Walk(visitor)
	expr.Body.Walk(visitor)
	visitor.Exit(expr)
}

type Block struct {
	expression
	SourceLine

	Body []Expression // never empty
}

var _ Validator = &Block{}

func (expr *Block) Walk(visitor Visitor) {
	visitor.Enter(expr)
	for _, stmt := range expr.Body {
		stmt.Walk(visitor)
	}
	visitor.Exit(expr)
}

func (expr *Block) Validate(fileName string, emitter *parseutil.Emitter) {
	if len(expr.Body) == 0 {
		emitter.Emit(
			location(fileName, expr),
			"block must contain at least one expression")
	}
}

// Single binding let.  `let a:A, b:B in e` is represented as
// Let(a, A, Let(b, B, e)).
type Let struct {
	expression
	SourceLine

	Name Symbol
	Type Symbol
	Init Expression // *NoExpr when not initialized
	Body Expression
}

var _ Validator = &Let{}

func (expr *Let) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Init.Walk(visitor)
	expr.Body.Walk(visitor)
	visitor.Exit(expr)
}

func (expr *Let) Validate(fileName string, emitter *parseutil.Emitter) {
	if expr.Name == "" || expr.Type == "" {
		emitter.Emit(
			location(fileName, expr),
			"let binding (%s : %s) must be named and typed",
			expr.Name,
			expr.Type)
	}
}

type Case struct {
	expression
	SourceLine

	Scrutinee Expression
	Branches  []*Branch // never empty
}

var _ Validator = &Case{}

func (expr *Case) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Scrutinee.Walk(visitor)
	for _, branch := range expr.Branches {
		branch.Walk(visitor)
	}
	visitor.Exit(expr)
}

func (expr *Case) Validate(fileName string, emitter *parseutil.Emitter) {
	if len(expr.Branches) == 0 {
		emitter.Emit(
			location(fileName, expr),
			"case must have at least one branch")
	}
}

type Branch struct {
	SourceLine

	Name Symbol
	Type Symbol
	Body Expression
}

var _ Node = &Branch{}
var _ Validator = &Branch{}

func (branch *Branch) Walk(visitor Visitor) {
	visitor.Enter(branch)
	branch.Body.Walk(visitor)
	visitor.Exit(branch)
}

func (branch *Branch) Validate(fileName string, emitter *parseutil.Emitter) {
	if branch.Name == "" || branch.Type == "" {
		emitter.Emit(
			location(fileName, branch),
			"case branch (%s : %s) must be named and typed",
			branch.Name,
			branch.Type)
	}
}

type New struct {
	expression
	SourceLine

	Type Symbol
}

func (expr *New) Walk(visitor Visitor) {
	visitor.Enter(expr)
	visitor.Exit(expr)
}

type IsVoid struct {
	expression
	SourceLine

	Operand Expression
}

func (expr *IsVoid) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Operand.Walk(visitor)
	visitor.Exit(expr)
}

type Unary struct {
	expression
	SourceLine

	Op      UnaryOperator
	Operand Expression
}

func (expr *Unary) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Operand.Walk(visitor)
	visitor.Exit(expr)
}

type Binary struct {
	expression
	SourceLine

	Left  Expression
	Op    BinaryOperator
	Right Expression
}

func (expr *Binary) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.Left.Walk(visitor)
	expr.Right.Walk(visitor)
	visitor.Exit(expr)
}

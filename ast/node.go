package ast

import (
	"github.com/pattyshack/gt/parseutil"
)

const (
	// The universal base class.  Classes without an inherits clause use this
	// as their parent.
	ObjectClassName = Symbol("Object")

	// Receiver name used by dispatches without an explicit receiver.
	SelfName = Symbol("self")
)

// Canonical handle produced by the symbol interner.  Names, type names,
// string literals, and integer literal text are all stored as symbols.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// The representative source line of a node.  Set at construction and never
// revised.
type SourceLine int

func (line SourceLine) Line() int {
	return int(line)
}

type Node interface {
	Line() int
	Walk(Visitor)
}

type Visitor interface {
	Enter(Node)
	Exit(Node)
}

type Validator interface {
	Validate(fileName string, emitter *parseutil.Emitter)
}

type Feature interface {
	Node
	isFeature()
}

type feature struct{}

func (feature) isFeature() {}

type Expression interface {
	Node
	isExpression()
}

type expression struct{}

func (expression) isExpression() {}

package ast

import (
	"github.com/pattyshack/gt/parseutil"
)

type Program struct {
	SourceLine

	Classes []*Class
}

var _ Node = &Program{}
var _ Validator = &Program{}

func (program *Program) Walk(visitor Visitor) {
	visitor.Enter(program)
	for _, class := range program.Classes {
		class.Walk(visitor)
	}
	visitor.Exit(program)
}

func (program *Program) Validate(fileName string, emitter *parseutil.Emitter) {
	if len(program.Classes) == 0 {
		emitter.Emit(
			location(fileName, program),
			"program must define at least one class")
	}
}

type Class struct {
	SourceLine

	Name     Symbol
	Parent   Symbol // ObjectClassName when no inherits clause is given
	FileName Symbol

	Features []Feature
}

var _ Node = &Class{}
var _ Validator = &Class{}

func (class *Class) Walk(visitor Visitor) {
	visitor.Enter(class)
	for _, feature := range class.Features {
		feature.Walk(visitor)
	}
	visitor.Exit(class)
}

func (class *Class) Validate(fileName string, emitter *parseutil.Emitter) {
	if class.Name == "" {
		emitter.Emit(location(fileName, class), "empty class name")
	}
	if class.Parent == "" {
		emitter.Emit(
			location(fileName, class),
			"class (%s) has empty parent name",
			class.Name)
	}
}

type Attribute struct {
	feature
	SourceLine

	Name Symbol
	Type Symbol
	Init Expression // *NoExpr when not initialized
}

var _ Feature = &Attribute{}
var _ Validator = &Attribute{}

func (attr *Attribute) Walk(visitor Visitor) {
	visitor.Enter(attr)
	if attr.Init != nil {
		attr.Init.Walk(visitor)
	}
	visitor.Exit(attr)
}

func (attr *Attribute) Validate(fileName string, emitter *parseutil.Emitter) {
	if attr.Name == "" {
		emitter.Emit(location(fileName, attr), "empty attribute name")
	}
	if attr.Type == "" {
		emitter.Emit(
			location(fileName, attr),
			"attribute (%s) has empty type name",
			attr.Name)
	}
	if attr.Init == nil {
		emitter.Emit(
			location(fileName, attr),
			"attribute (%s) has nil initializer",
			attr.Name)
	}
}

type Method struct {
	feature
	SourceLine

	Name       Symbol
	Formals    []*Formal
	ReturnType Symbol
	Body       Expression
}

var _ Feature = &Method{}
var _ Validator = &Method{}

func (method *Method) Walk(visitor Visitor) {
	visitor.Enter(method)
	for _, formal := range method.Formals {
		formal.Walk(visitor)
	}
	if method.Body != nil {
		method.Body.Walk(visitor)
	}
	visitor.Exit(method)
}

func (method *Method) Validate(fileName string, emitter *parseutil.Emitter) {
	if method.Name == "" {
		emitter.Emit(location(fileName, method), "empty method name")
	}
	if method.ReturnType == "" {
		emitter.Emit(
			location(fileName, method),
			"method (%s) has empty return type",
			method.Name)
	}
	if method.Body == nil {
		emitter.Emit(
			location(fileName, method),
			"method (%s) has nil body",
			method.Name)
	}
}

type Formal struct {
	SourceLine

	Name Symbol
	Type Symbol
}

var _ Node = &Formal{}
var _ Validator = &Formal{}

func (formal *Formal) Walk(visitor Visitor) {
	visitor.Enter(formal)
	visitor.Exit(formal)
}

func (formal *Formal) Validate(fileName string, emitter *parseutil.Emitter) {
	if formal.Name == "" || formal.Type == "" {
		emitter.Emit(
			location(fileName, formal),
			"formal parameter (%s : %s) must be named and typed",
			formal.Name,
			formal.Type)
	}
}

func location(fileName string, node Node) parseutil.Location {
	return parseutil.Location{
		FileName: fileName,
		Line:     node.Line(),
	}
}

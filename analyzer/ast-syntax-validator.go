package analyzer

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/coolparse/ast"
)

// Reports structural invariant violations (empty lists, missing names,
// non-positive lines) which a correct parse never produces.
type astSyntaxValidator struct {
	*parseutil.Emitter

	// Taken from the enclosing class.
	fileName string
}

func ValidateAstSyntax(emitter *parseutil.Emitter, program *ast.Program) {
	validator := &astSyntaxValidator{
		Emitter: emitter,
	}
	if len(program.Classes) > 0 {
		validator.fileName = string(program.Classes[0].FileName)
	}
	program.Walk(validator)
}

func (validator *astSyntaxValidator) Enter(n ast.Node) {
	class, ok := n.(*ast.Class)
	if ok {
		validator.fileName = string(class.FileName)
	}

	if n.Line() <= 0 {
		validator.Emit(
			parseutil.Location{FileName: validator.fileName},
			"node (%T) has non-positive line number (%d)",
			n,
			n.Line())
	}

	validatable, ok := n.(ast.Validator)
	if ok {
		validatable.Validate(validator.fileName, validator.Emitter)
	}
}

func (validator *astSyntaxValidator) Exit(node ast.Node) {
}

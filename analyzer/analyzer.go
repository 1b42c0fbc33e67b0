package analyzer

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/coolparse/ast"
)

// Analyze validates each program in parallel.  Every program gets its own
// emitter; the diagnostics are merged into emitter in input order.
func Analyze(
	programs []*ast.Program,
	emitter *parseutil.Emitter,
) {
	programEmitters := make([]*parseutil.Emitter, len(programs))

	ParallelProcess(
		programs,
		func(idx int, program *ast.Program) {
			programEmitter := &parseutil.Emitter{}
			ValidateAstSyntax(programEmitter, program)
			programEmitters[idx] = programEmitter
		})

	for _, programEmitter := range programEmitters {
		emitter.EmitErrors(programEmitter.Errors()...)
	}
}

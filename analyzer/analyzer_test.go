package analyzer

import (
	"strings"
	"testing"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/coolparse/ast"
)

func validProgram(fileName string) *ast.Program {
	return &ast.Program{
		SourceLine: 1,
		Classes: []*ast.Class{
			{
				SourceLine: 1,
				Name:       "Main",
				Parent:     ast.ObjectClassName,
				FileName:   ast.Symbol(fileName),
				Features: []ast.Feature{
					&ast.Method{
						SourceLine: 2,
						Name:       "main",
						ReturnType: "Object",
						Body: &ast.Block{
							SourceLine: 2,
							Body: []ast.Expression{
								&ast.IntConst{SourceLine: 3, Value: "1"},
							},
						},
					},
				},
			},
		},
	}
}

func TestAnalyzeValidProgram(t *testing.T) {
	emitter := &parseutil.Emitter{}
	Analyze([]*ast.Program{validProgram("a.cl"), validProgram("b.cl")}, emitter)

	if emitter.HasErrors() {
		t.Errorf("unexpected errors: %v", emitter.Errors())
	}
}

func TestAnalyzeMalformedPrograms(t *testing.T) {
	first := validProgram("a.cl")
	first.Classes[0].Features[0].(*ast.Method).Body = &ast.Block{SourceLine: 2}

	second := validProgram("b.cl")
	second.Classes[0].Features = append(
		second.Classes[0].Features,
		&ast.Attribute{
			Name: "x",
			Type: "Int",
			Init: &ast.NoExpr{},
		})

	emitter := &parseutil.Emitter{}
	Analyze([]*ast.Program{first, second, validProgram("c.cl")}, emitter)

	errs := emitter.Errors()
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}

	if !strings.Contains(errs[0].Error(), "block must contain at least one expression") {
		t.Errorf("unexpected first error: %s", errs[0])
	}

	for _, err := range errs[1:] {
		if !strings.Contains(err.Error(), "non-positive line number") {
			t.Errorf("unexpected error: %s", err)
		}
	}
}

func TestParallelProcessVisitsEveryItem(t *testing.T) {
	items := []int{3, 1, 4, 1, 5}
	doubled := make([]int, len(items))

	ParallelProcess(
		items,
		func(idx int, item int) {
			doubled[idx] = 2 * item
		})

	for idx, item := range items {
		if doubled[idx] != 2*item {
			t.Errorf("doubled[%d] = %d, want %d", idx, doubled[idx], 2*item)
		}
	}
}

func TestValidateAstSyntax(t *testing.T) {
	program := validProgram("a.cl")
	program.Classes[0].Features[0].(*ast.Method).Body = &ast.Block{SourceLine: 2}

	emitter := &parseutil.Emitter{}
	ValidateAstSyntax(emitter, program)

	errs := emitter.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

package ast

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/pattyshack/gt/parseutil"
	"gopkg.in/yaml.v3"
)

func sampleProgram() *Program {
	return &Program{
		SourceLine: 1,
		Classes: []*Class{
			{
				SourceLine: 1,
				Name:       "A",
				Parent:     ObjectClassName,
				FileName:   "t.cl",
				Features: []Feature{
					&Attribute{
						SourceLine: 2,
						Name:       "x",
						Type:       "Int",
						Init:       &NoExpr{SourceLine: 2},
					},
					&Method{
						SourceLine: 3,
						Name:       "f",
						Formals: []*Formal{
							{SourceLine: 3, Name: "y", Type: "Bool"},
						},
						ReturnType: "Object",
						Body: &Binary{
							SourceLine: 4,
							Left:       &Object{SourceLine: 4, Name: "x"},
							Op:         Plus,
							Right:      &IntConst{SourceLine: 4, Value: "1"},
						},
					},
				},
			},
		},
	}
}

func TestTreeString(t *testing.T) {
	expected := `[Program: Line=1
  Class0=[Class: Name=A Parent=Object FileName="t.cl" Line=1
    Feature0=[Attribute: Name=x Type=Int Line=2
      Init=[NoExpr]
    ]
    Feature1=[Method: Name=f ReturnType=Object Line=3
      Formal0=[Formal: Name=y Type=Bool]
      Body=[Binary: Op=+ Line=4
        Left=[Object: Name=x]
        Right=[IntConst: Value=1]
      ]
    ]
  ]
]`

	actual := TreeString(sampleProgram(), "")
	if actual != expected {
		t.Errorf("TreeString mismatch.\ngot:\n%s\nwant:\n%s", actual, expected)
	}
}

func TestDumpCool(t *testing.T) {
	expected := strings.Join(
		[]string{
			`#1`,
			`_program`,
			`  #1`,
			`  _class`,
			`    A`,
			`    Object`,
			`    "t.cl"`,
			`    (`,
			`    #2`,
			`    _attr`,
			`      x`,
			`      Int`,
			`      #2`,
			`      _no_expr`,
			`      : _no_type`,
			`    #3`,
			`    _method`,
			`      f`,
			`      #3`,
			`      _formal`,
			`        y`,
			`        Bool`,
			`      Object`,
			`      #4`,
			`      _plus`,
			`        #4`,
			`        _object`,
			`          x`,
			`        : _no_type`,
			`        #4`,
			`        _int`,
			`          1`,
			`        : _no_type`,
			`      : _no_type`,
			`    )`,
			``,
		},
		"\n")

	actual := DumpCoolString(sampleProgram())
	if actual != expected {
		t.Errorf("DumpCool mismatch.\ngot:\n%s\nwant:\n%s", actual, expected)
	}
}

func TestDumpCoolExpressions(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want []string
	}{
		{
			"bool",
			&BoolConst{SourceLine: 5, Value: false},
			[]string{"#5", "_bool", "  0", ": _no_type"},
		},
		{
			"string",
			&StringConst{SourceLine: 5, Value: "a\"b\n"},
			[]string{"#5", "_string", `  "a\"b\n"`, ": _no_type"},
		},
		{
			"complement",
			&Unary{SourceLine: 6, Op: Not, Operand: &BoolConst{SourceLine: 6, Value: true}},
			[]string{"#6", "_comp", "  #6", "  _bool", "    1", "  : _no_type", ": _no_type"},
		},
		{
			"static_dispatch",
			&StaticDispatch{
				SourceLine: 7,
				Receiver:   &Object{SourceLine: 7, Name: "self"},
				Type:       "A",
				Method:     "f",
			},
			[]string{
				"#7",
				"_static_dispatch",
				"  #7",
				"  _object",
				"    self",
				"  : _no_type",
				"  A",
				"  f",
				"  (",
				"  )",
				": _no_type",
			},
		},
		{
			"case",
			&Case{
				SourceLine: 8,
				Scrutinee:  &New{SourceLine: 8, Type: "B"},
				Branches: []*Branch{
					{
						SourceLine: 9,
						Name:       "b",
						Type:       "B",
						Body:       &IsVoid{SourceLine: 9, Operand: &Object{SourceLine: 9, Name: "b"}},
					},
				},
			},
			[]string{
				"#8",
				"_typcase",
				"  #8",
				"  _new",
				"    B",
				"  : _no_type",
				"  #9",
				"  _branch",
				"    b",
				"    B",
				"    #9",
				"    _isvoid",
				"      #9",
				"      _object",
				"        b",
				"      : _no_type",
				"    : _no_type",
				": _no_type",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dumper := &coolDumper{writer: &bytes.Buffer{}}
			dumper.node(tt.expr, 0)

			expected := strings.Join(tt.want, "\n") + "\n"
			actual := dumper.writer.(*bytes.Buffer).String()
			if actual != expected {
				t.Errorf("dump mismatch.\ngot:\n%s\nwant:\n%s", actual, expected)
			}
		})
	}
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{`a"b`, `a\"b`},
		{`a\b`, `a\\b`},
		{"\n\t\b\f", `\n\t\b\f`},
		{"\x01\x1b\x7f", `\001\033\177`},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			got := EscapeString(tt.input)
			if got != tt.want {
				t.Errorf("EscapeString(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestMarshalYAML(t *testing.T) {
	content, err := MarshalYAML(sampleProgram())
	if err != nil {
		t.Fatal(err)
	}

	decoded := map[string]interface{}{}
	err = yaml.Unmarshal(content, &decoded)
	if err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, content)
	}

	if decoded["kind"] != "program" || decoded["line"] != 1 {
		t.Errorf("program = %v", decoded)
	}

	classes, ok := decoded["classes"].([]interface{})
	if !ok || len(classes) != 1 {
		t.Fatalf("classes = %v", decoded["classes"])
	}

	class := classes[0].(map[string]interface{})
	if class["name"] != "A" || class["parent"] != "Object" || class["file"] != "t.cl" {
		t.Errorf("class = %v", class)
	}

	features := class["features"].([]interface{})
	method := features[1].(map[string]interface{})
	body := method["body"].(map[string]interface{})
	if method["kind"] != "method" || body["kind"] != "binary" {
		t.Errorf("method = %v", method)
	}
}

func TestFprintYAML(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := FprintYAML(buffer, sampleProgram())
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buffer.String(), "kind: program") {
		t.Errorf("unexpected output:\n%s", buffer.String())
	}
}

type recordingVisitor struct {
	events []string
}

func (visitor *recordingVisitor) Enter(node Node) {
	visitor.events = append(visitor.events, fmt.Sprintf("+%T", node))
}

func (visitor *recordingVisitor) Exit(node Node) {
	visitor.events = append(visitor.events, fmt.Sprintf("-%T", node))
}

func TestWalkOrder(t *testing.T) {
	visitor := &recordingVisitor{}
	sampleProgram().Walk(visitor)

	expected := []string{
		"+*ast.Program",
		"+*ast.Class",
		"+*ast.Attribute",
		"+*ast.NoExpr",
		"-*ast.NoExpr",
		"-*ast.Attribute",
		"+*ast.Method",
		"+*ast.Formal",
		"-*ast.Formal",
		"+*ast.Binary",
		"+*ast.Object",
		"-*ast.Object",
		"+*ast.IntConst",
		"-*ast.IntConst",
		"-*ast.Binary",
		"-*ast.Method",
		"-*ast.Class",
		"-*ast.Program",
	}

	if strings.Join(visitor.events, " ") != strings.Join(expected, " ") {
		t.Errorf("walk order:\n%v\nwant:\n%v", visitor.events, expected)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		node      Validator
		numErrors int
	}{
		{"empty_program", &Program{SourceLine: 1}, 1},
		{"valid_class", sampleProgram().Classes[0], 0},
		{"empty_block", &Block{SourceLine: 2}, 1},
		{"empty_case", &Case{SourceLine: 3, Scrutinee: &NoExpr{SourceLine: 3}}, 1},
		{"unnamed_attribute", &Attribute{SourceLine: 4, Init: &NoExpr{SourceLine: 4}}, 2},
		{"bodiless_method", &Method{SourceLine: 5, Name: "f", ReturnType: "Int"}, 1},
		{"untyped_formal", &Formal{SourceLine: 6, Name: "x"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emitter := &parseutil.Emitter{}
			tt.node.Validate("t.cl", emitter)

			if len(emitter.Errors()) != tt.numErrors {
				t.Errorf(
					"got %d errors, want %d: %v",
					len(emitter.Errors()),
					tt.numErrors,
					emitter.Errors())
			}
		})
	}
}

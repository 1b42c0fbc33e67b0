package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DumpCool writes the program in the line-oriented format produced by the
// reference COOL parser, which downstream COOL semantic analyzers read.
// Expression types are not known at this stage and print as _no_type.
func DumpCool(output io.Writer, program *Program) error {
	dumper := &coolDumper{writer: output}
	dumper.node(program, 0)
	return dumper.err
}

func DumpCoolString(program *Program) string {
	buffer := &bytes.Buffer{}
	_ = DumpCool(buffer, program)
	return buffer.String()
}

type coolDumper struct {
	writer io.Writer
	err    error
}

func (dumper *coolDumper) printf(pad int, format string, args ...interface{}) {
	if dumper.err != nil {
		return
	}
	_, dumper.err = fmt.Fprintf(
		dumper.writer,
		strings.Repeat(" ", pad)+format+"\n",
		args...)
}

func (dumper *coolDumper) header(pad int, node Node, name string) {
	dumper.printf(pad, "#%d", node.Line())
	dumper.printf(pad, "%s", name)
}

func (dumper *coolDumper) symbol(pad int, symbol Symbol) {
	dumper.printf(pad, "%s", symbol)
}

func (dumper *coolDumper) noType(pad int) {
	dumper.printf(pad, ": _no_type")
}

func (dumper *coolDumper) actuals(pad int, args []Expression) {
	dumper.printf(pad, "(")
	for _, arg := range args {
		dumper.node(arg, pad)
	}
	dumper.printf(pad, ")")
}

func (dumper *coolDumper) node(n Node, pad int) {
	switch node := n.(type) {
	case *Program:
		dumper.header(pad, node, "_program")
		for _, class := range node.Classes {
			dumper.node(class, pad+2)
		}
		return
	case *Class:
		dumper.header(pad, node, "_class")
		dumper.symbol(pad+2, node.Name)
		dumper.symbol(pad+2, node.Parent)
		dumper.printf(pad+2, "\"%s\"", EscapeString(string(node.FileName)))
		dumper.printf(pad+2, "(")
		for _, feature := range node.Features {
			dumper.node(feature, pad+2)
		}
		dumper.printf(pad+2, ")")
		return
	case *Attribute:
		dumper.header(pad, node, "_attr")
		dumper.symbol(pad+2, node.Name)
		dumper.symbol(pad+2, node.Type)
		dumper.node(node.Init, pad+2)
		return
	case *Method:
		dumper.header(pad, node, "_method")
		dumper.symbol(pad+2, node.Name)
		for _, formal := range node.Formals {
			dumper.node(formal, pad+2)
		}
		dumper.symbol(pad+2, node.ReturnType)
		dumper.node(node.Body, pad+2)
		return
	case *Formal:
		dumper.header(pad, node, "_formal")
		dumper.symbol(pad+2, node.Name)
		dumper.symbol(pad+2, node.Type)
		return
	case *Branch:
		dumper.header(pad, node, "_branch")
		dumper.symbol(pad+2, node.Name)
		dumper.symbol(pad+2, node.Type)
		dumper.node(node.Body, pad+2)
		return

	case *NoExpr:
		dumper.header(pad, node, "_no_expr")
	case *IntConst:
		dumper.header(pad, node, "_int")
		dumper.symbol(pad+2, node.Value)
	case *StringConst:
		dumper.header(pad, node, "_string")
		dumper.printf(pad+2, "\"%s\"", EscapeString(string(node.Value)))
	case *BoolConst:
		dumper.header(pad, node, "_bool")
		if node.Value {
			dumper.printf(pad+2, "1")
		} else {
			dumper.printf(pad+2, "0")
		}
	case *Object:
		dumper.header(pad, node, "_object")
		dumper.symbol(pad+2, node.Name)
	case *Assign:
		dumper.header(pad, node, "_assign")
		dumper.symbol(pad+2, node.Name)
		dumper.node(node.Value, pad+2)
	case *Dispatch:
		dumper.header(pad, node, "_dispatch")
		dumper.node(node.Receiver, pad+2)
		dumper.symbol(pad+2, node.Method)
		dumper.actuals(pad+2, node.Args)
	case *StaticDispatch:
		dumper.header(pad, node, "_static_dispatch")
		dumper.node(node.Receiver, pad+2)
		dumper.symbol(pad+2, node.Type)
		dumper.symbol(pad+2, node.Method)
		dumper.actuals(pad+2, node.Args)
	case *Conditional:
		dumper.header(pad, node, "_cond")
		dumper.node(node.Test, pad+2)
		dumper.node(node.Then, pad+2)
		dumper.node(node.Else, pad+2)
	case *Loop:
		dumper.header(pad, node, "_loop")
		dumper.node(node.Test, pad+2)
		dumper.node(node.Body, pad+2)
	case *Block:
		dumper.header(pad, node, "_block")
		for _, stmt := range node.Body {
			dumper.node(stmt, pad+2)
		}
	case *Let:
		dumper.header(pad, node, "_let")
		dumper.symbol(pad+2, node.Name)
		dumper.symbol(pad+2, node.Type)
		dumper.node(node.Init, pad+2)
		dumper.node(node.Body, pad+2)
	case *Case:
		dumper.header(pad, node, "_typcase")
		dumper.node(node.Scrutinee, pad+2)
		for _, branch := range node.Branches {
			dumper.node(branch, pad+2)
		}
	case *New:
		dumper.header(pad, node, "_new")
		dumper.symbol(pad+2, node.Type)
	case *IsVoid:
		dumper.header(pad, node, "_isvoid")
		dumper.node(node.Operand, pad+2)
	case *Unary:
		if node.Op == Not {
			dumper.header(pad, node, "_comp")
		} else {
			dumper.header(pad, node, "_neg")
		}
		dumper.node(node.Operand, pad+2)
	case *Binary:
		dumper.header(pad, node, binaryDumpNames[node.Op])
		dumper.node(node.Left, pad+2)
		dumper.node(node.Right, pad+2)
	default:
		dumper.printf(pad, "unhandled node: %v", n)
		return
	}

	dumper.noType(pad)
}

var binaryDumpNames = map[BinaryOperator]string{
	Plus:      "_plus",
	Sub:       "_sub",
	Mul:       "_mul",
	Divide:    "_divide",
	Less:      "_lt",
	LessEqual: "_leq",
	Equal:     "_eq",
}

package ast

import (
	"bytes"
	"fmt"
	"io"
)

const (
	indent = "  "
)

func TreeString(node Node, indent string) string {
	buffer := &bytes.Buffer{}
	_ = PrintTree(buffer, node, indent)
	return buffer.String()
}

func PrintTree(output io.Writer, node Node, indent string) error {
	printer := &treePrinter{
		indent:     indent,
		labelStack: []string{},
		writer:     output,
	}
	node.Walk(printer)
	return printer.err
}

type treePrinter struct {
	indent     string
	labelStack []string
	writer     io.Writer
	err        error
}

func (printer *treePrinter) write(format string, args ...interface{}) {
	if printer.err != nil {
		return
	}

	if len(args) == 0 {
		_, printer.err = printer.writer.Write([]byte(format))
	} else {
		_, printer.err = fmt.Fprintf(printer.writer, format, args...)
	}
}

func (printer *treePrinter) writeLabel() {
	label := ""
	if len(printer.labelStack) > 0 {
		label = printer.labelStack[len(printer.labelStack)-1]
		printer.labelStack = printer.labelStack[:len(printer.labelStack)-1]
	}

	if len(label) > 0 {
		printer.write("\n")
		printer.write(printer.indent)
		printer.write(label)
	} else {
		printer.write(printer.indent)
	}
}

func (printer *treePrinter) endNode() {
	printer.indent = printer.indent[:len(printer.indent)-len(indent)]
	printer.write("\n")
	printer.write(printer.indent)
	printer.write("]")
}

func (printer *treePrinter) push(labels ...string) {
	printer.indent += indent

	for len(labels) > 0 {
		last := labels[len(labels)-1]
		labels = labels[:len(labels)-1]

		printer.labelStack = append(printer.labelStack, last)
	}
}

func indexedLabels(labels []string, elementType string, size int) []string {
	for i := 0; i < size; i++ {
		labels = append(labels, fmt.Sprintf("%s%d=", elementType, i))
	}
	return labels
}

func (printer *treePrinter) Enter(n Node) {
	printer.writeLabel()

	switch node := n.(type) {
	case *Program:
		printer.write("[Program: Line=%d", node.Line())
		printer.push(indexedLabels(nil, "Class", len(node.Classes))...)
	case *Class:
		printer.write(
			"[Class: Name=%s Parent=%s FileName=%q Line=%d",
			node.Name,
			node.Parent,
			node.FileName,
			node.Line())
		printer.push(indexedLabels(nil, "Feature", len(node.Features))...)
	case *Attribute:
		printer.write(
			"[Attribute: Name=%s Type=%s Line=%d",
			node.Name,
			node.Type,
			node.Line())
		printer.push("Init=")
	case *Method:
		printer.write(
			"[Method: Name=%s ReturnType=%s Line=%d",
			node.Name,
			node.ReturnType,
			node.Line())
		labels := indexedLabels(nil, "Formal", len(node.Formals))
		printer.push(append(labels, "Body=")...)
	case *Formal:
		printer.write("[Formal: Name=%s Type=%s]", node.Name, node.Type)

	case *NoExpr:
		printer.write("[NoExpr]")
	case *IntConst:
		printer.write("[IntConst: Value=%s]", node.Value)
	case *StringConst:
		printer.write("[StringConst: Value=\"%s\"]", EscapeString(string(node.Value)))
	case *BoolConst:
		printer.write("[BoolConst: Value=%v]", node.Value)
	case *Object:
		printer.write("[Object: Name=%s]", node.Name)
	case *New:
		printer.write("[New: Type=%s]", node.Type)

	case *Assign:
		printer.write("[Assign: Name=%s Line=%d", node.Name, node.Line())
		printer.push("Value=")
	case *Dispatch:
		printer.write("[Dispatch: Method=%s Line=%d", node.Method, node.Line())
		printer.push(indexedLabels([]string{"Receiver="}, "Arg", len(node.Args))...)
	case *StaticDispatch:
		printer.write(
			"[StaticDispatch: Type=%s Method=%s Line=%d",
			node.Type,
			node.Method,
			node.Line())
		printer.push(indexedLabels([]string{"Receiver="}, "Arg", len(node.Args))...)
	case *Conditional:
		printer.write("[Conditional: Line=%d", node.Line())
		printer.push("Test=", "Then=", "Else=")
	case *Loop:
		printer.write("[Loop: Line=%d", node.Line())
		printer.push("Test=", "Body=")
	case *Block:
		printer.write("[Block: Line=%d", node.Line())
		printer.push(indexedLabels(nil, "Expression", len(node.Body))...)
	case *Let:
		printer.write(
			"[Let: Name=%s Type=%s Line=%d",
			node.Name,
			node.Type,
			node.Line())
		printer.push("Init=", "Body=")
	case *Case:
		printer.write("[Case: Line=%d", node.Line())
		printer.push(indexedLabels([]string{"Scrutinee="}, "Branch", len(node.Branches))...)
	case *Branch:
		printer.write(
			"[Branch: Name=%s Type=%s Line=%d",
			node.Name,
			node.Type,
			node.Line())
		printer.push("Body=")
	case *IsVoid:
		printer.write("[IsVoid: Line=%d", node.Line())
		printer.push("Operand=")
	case *Unary:
		printer.write("[Unary: Op=%s Line=%d", node.Op, node.Line())
		printer.push("Operand=")
	case *Binary:
		printer.write("[Binary: Op=%s Line=%d", node.Op, node.Line())
		printer.push("Left=", "Right=")

	default:
		printer.write("unhandled node: %v", n)
	}
}

func (printer *treePrinter) Exit(n Node) {
	switch n.(type) {
	case *Program, *Class, *Attribute, *Method,
		*Assign, *Dispatch, *StaticDispatch, *Conditional, *Loop, *Block,
		*Let, *Case, *Branch, *IsVoid, *Unary, *Binary:

		printer.endNode()
	}
}

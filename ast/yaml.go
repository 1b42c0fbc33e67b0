package ast

import (
	"io"

	"gopkg.in/yaml.v3"
)

// FprintYAML writes a YAML representation of the AST to output.
func FprintYAML(output io.Writer, node Node) error {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	err := encoder.Encode(toYAML(node))
	if err != nil {
		return err
	}
	return encoder.Close()
}

func MarshalYAML(node Node) ([]byte, error) {
	return yaml.Marshal(toYAML(node))
}

func toYAML(node Node) interface{} {
	if node == nil {
		return nil
	}

	m := map[string]interface{}{
		"line": node.Line(),
	}

	switch n := node.(type) {
	case *Program:
		m["kind"] = "program"
		m["classes"] = mapSlice(n.Classes)
	case *Class:
		m["kind"] = "class"
		m["name"] = string(n.Name)
		m["parent"] = string(n.Parent)
		m["file"] = string(n.FileName)
		m["features"] = mapSlice(n.Features)
	case *Attribute:
		m["kind"] = "attribute"
		m["name"] = string(n.Name)
		m["type"] = string(n.Type)
		m["init"] = toYAML(n.Init)
	case *Method:
		m["kind"] = "method"
		m["name"] = string(n.Name)
		m["formals"] = mapSlice(n.Formals)
		m["return_type"] = string(n.ReturnType)
		m["body"] = toYAML(n.Body)
	case *Formal:
		m["kind"] = "formal"
		m["name"] = string(n.Name)
		m["type"] = string(n.Type)

	case *NoExpr:
		m["kind"] = "no_expr"
	case *IntConst:
		m["kind"] = "int"
		m["value"] = string(n.Value)
	case *StringConst:
		m["kind"] = "string"
		m["value"] = string(n.Value)
	case *BoolConst:
		m["kind"] = "bool"
		m["value"] = n.Value
	case *Object:
		m["kind"] = "object"
		m["name"] = string(n.Name)
	case *New:
		m["kind"] = "new"
		m["type"] = string(n.Type)
	case *Assign:
		m["kind"] = "assign"
		m["name"] = string(n.Name)
		m["value"] = toYAML(n.Value)
	case *Dispatch:
		m["kind"] = "dispatch"
		m["receiver"] = toYAML(n.Receiver)
		m["method"] = string(n.Method)
		m["args"] = mapSlice(n.Args)
	case *StaticDispatch:
		m["kind"] = "static_dispatch"
		m["receiver"] = toYAML(n.Receiver)
		m["type"] = string(n.Type)
		m["method"] = string(n.Method)
		m["args"] = mapSlice(n.Args)
	case *Conditional:
		m["kind"] = "cond"
		m["test"] = toYAML(n.Test)
		m["then"] = toYAML(n.Then)
		m["else"] = toYAML(n.Else)
	case *Loop:
		m["kind"] = "loop"
		m["test"] = toYAML(n.Test)
		m["body"] = toYAML(n.Body)
	case *Block:
		m["kind"] = "block"
		m["body"] = mapSlice(n.Body)
	case *Let:
		m["kind"] = "let"
		m["name"] = string(n.Name)
		m["type"] = string(n.Type)
		m["init"] = toYAML(n.Init)
		m["body"] = toYAML(n.Body)
	case *Case:
		m["kind"] = "case"
		m["scrutinee"] = toYAML(n.Scrutinee)
		m["branches"] = mapSlice(n.Branches)
	case *Branch:
		m["kind"] = "branch"
		m["name"] = string(n.Name)
		m["type"] = string(n.Type)
		m["body"] = toYAML(n.Body)
	case *IsVoid:
		m["kind"] = "isvoid"
		m["operand"] = toYAML(n.Operand)
	case *Unary:
		m["kind"] = "unary"
		m["op"] = string(n.Op)
		m["operand"] = toYAML(n.Operand)
	case *Binary:
		m["kind"] = "binary"
		m["op"] = string(n.Op)
		m["left"] = toYAML(n.Left)
		m["right"] = toYAML(n.Right)
	default:
		m["kind"] = "unknown"
	}

	return m
}

func mapSlice[T Node](nodes []T) []interface{} {
	result := make([]interface{}, 0, len(nodes))
	for _, node := range nodes {
		result = append(result, toYAML(node))
	}
	return result
}

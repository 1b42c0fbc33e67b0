package ast

import (
	"fmt"
	"strings"
)

// EscapeString renders a string constant's content the way COOL tools print
// it: common control characters as backslash escapes, other non-printable
// bytes as three digit octal escapes.
func EscapeString(value string) string {
	builder := strings.Builder{}
	for i := 0; i < len(value); i++ {
		char := value[i]
		switch char {
		case '\\':
			builder.WriteString("\\\\")
		case '"':
			builder.WriteString("\\\"")
		case '\n':
			builder.WriteString("\\n")
		case '\t':
			builder.WriteString("\\t")
		case '\b':
			builder.WriteString("\\b")
		case '\f':
			builder.WriteString("\\f")
		default:
			if ' ' <= char && char <= '~' {
				builder.WriteByte(char)
			} else {
				builder.WriteString(fmt.Sprintf("\\%03o", char))
			}
		}
	}
	return builder.String()
}

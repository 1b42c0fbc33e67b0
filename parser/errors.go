package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pattyshack/coolparse/parser/grammar"
)

const (
	DefaultMaxErrors = 50
)

var (
	// Returned when the token stream ended while discarding tokens during
	// error recovery.  No program is produced.
	ErrIncomplete = errors.New("unexpected end of input while recovering from syntax errors")

	// Wrapped by the error returned when the program was recovered but
	// diagnostics were emitted.
	ErrSyntax = errors.New("syntax errors")
)

// A single diagnostic for an unexpected token.
type SyntaxError struct {
	FileName string
	Line     int

	// Surface text of the offending token.
	Near string

	// Tokens which would have been accepted in place of the offending token.
	Expected []grammar.SymbolId
}

func (err *SyntaxError) Error() string {
	builder := strings.Builder{}
	builder.WriteString(
		fmt.Sprintf("\"%s\", line %d: syntax error", err.FileName, err.Line))

	if len(err.Expected) > 0 {
		builder.WriteString(", expecting ")
		for idx, id := range err.Expected {
			if idx > 0 {
				builder.WriteString(" or ")
			}
			builder.WriteString(id.String())
		}
	}

	builder.WriteString(" at or near ")
	builder.WriteString(err.Near)
	return builder.String()
}

// Fatal stop once the number of diagnostics exceeds the configured ceiling.
type TooManyErrorsError struct {
	Limit int
}

func (err *TooManyErrorsError) Error() string {
	return fmt.Sprintf("More than %d errors", err.Limit)
}

// Unwinds the parse stack to the nearest synchronization point.
type bailout struct{}

// Unwinds the entire parse.
type abort struct {
	err error
}

package grammar

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/coolparse/ast"
)

type Token = parseutil.Token[SymbolId]
type TokenValue = parseutil.TokenValue[SymbolId]

type Lexer = parseutil.Lexer[Token]

// The following temporary structs are used only for parsing

// A single `name : Type [<- init]` binding of a let expression.  Multi-binding
// lets are folded into nested single binding ast.Let nodes once the body is
// known.
type ParsedLetBinding struct {
	ast.SourceLine

	Name ast.Symbol
	Type ast.Symbol
	Init ast.Expression // *ast.NoExpr when not initialized
}

func NewLocation(fileName string, line int) parseutil.Location {
	return parseutil.Location{
		FileName: fileName,
		Line:     line,
	}
}

func Line(token Token) int {
	return token.Loc().Line
}

// TokenText returns the token's surface text as printed in diagnostics.
func TokenText(token *TokenValue) string {
	switch token.SymbolId {
	case ObjectIdToken, TypeIdToken, IntegerLiteralToken, BoolLiteralToken:
		return token.SymbolId.String() + " = " + token.Value
	case StringLiteralToken, ErrorToken:
		return token.SymbolId.String() + " = \"" + ast.EscapeString(token.Value) + "\""
	default:
		return token.SymbolId.String()
	}
}

package lexer

import (
	"github.com/pattyshack/gt/parseutil"
	"github.com/pattyshack/gt/stringutil"

	"github.com/pattyshack/coolparse/parser/grammar"
)

// NewLexer returns a COOL token source.  Whitespace and comments are
// dropped.  Lexical faults are returned as grammar.ErrorToken values whose
// Value holds the error message.  A nil pool allocates a fresh pool.
func NewLexer(
	reader parseutil.BufferedByteLocationReader,
	pool *stringutil.InternPool,
) grammar.Lexer {
	return parseutil.NewTrimTokenLexer(
		NewRawLexer(reader, pool),
		spacesToken,
		newlinesToken,
		commentToken)
}

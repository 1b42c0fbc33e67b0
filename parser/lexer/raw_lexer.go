package lexer

import (
	"bytes"
	"io"
	"strings"

	"github.com/pattyshack/gt/parseutil"
	"github.com/pattyshack/gt/stringutil"

	"github.com/pattyshack/coolparse/parser/grammar"
)

const (
	initialPeekWindowSize = 64

	// Longest string constant content, in bytes.
	MaxStringLength = 1024
)

// Trivia tokens.  These are dropped by NewLexer and never reach the parser.
const (
	spacesToken = grammar.SymbolId(512 + iota)
	newlinesToken
	commentToken
)

const (
	eofInComment        = "EOF in comment"
	unmatchedComment    = "Unmatched *)"
	eofInString         = "EOF in string constant"
	unterminatedString  = "Unterminated string constant"
	stringTooLong       = "String constant too long"
	nullCharacterString = "String contains null character."
	escapedNullString   = "String contains escaped null character."
)

type RawLexer struct {
	parseutil.BufferedByteLocationReader
	*stringutil.InternPool
}

func NewRawLexer(
	reader parseutil.BufferedByteLocationReader,
	pool *stringutil.InternPool,
) *RawLexer {
	if pool == nil {
		pool = stringutil.NewInternPool()
	}

	return &RawLexer{
		BufferedByteLocationReader: reader,
		InternPool:                 pool,
	}
}

func (lexer *RawLexer) CurrentLocation() parseutil.Location {
	return lexer.Location
}

func (lexer *RawLexer) peek(n int) ([]byte, error) {
	peeked, err := lexer.Peek(n)
	if len(peeked) > 0 && err == io.EOF {
		err = nil
	}
	return peeked, err
}

func isDigit(char byte) bool {
	return '0' <= char && char <= '9'
}

func isLetter(char byte) bool {
	return ('a' <= char && char <= 'z') || ('A' <= char && char <= 'Z')
}

func (lexer *RawLexer) peekNextToken() (grammar.SymbolId, string, error) {
	peeked, err := lexer.peek(2)
	if err != nil {
		return 0, "", err
	}

	char := peeked[0]
	if isLetter(char) {
		return grammar.ObjectIdToken, "", nil
	}

	if isDigit(char) {
		return grammar.IntegerLiteralToken, "", nil
	}

	var next byte
	if len(peeked) > 1 {
		next = peeked[1]
	}

	switch char {
	case ' ', '\t', '\f', '\v':
		return spacesToken, "", nil
	case '\r', '\n':
		return newlinesToken, "", nil
	case '"':
		return grammar.StringLiteralToken, "", nil
	case '<':
		if next == '-' {
			return grammar.AssignToken, "<-", nil
		} else if next == '=' {
			return grammar.LessEqualToken, "<=", nil
		}
		return grammar.LessToken, "<", nil
	case '=':
		if next == '>' {
			return grammar.DarrowToken, "=>", nil
		}
		return grammar.EqualToken, "=", nil
	case '-':
		if next == '-' {
			return commentToken, "", nil
		}
		return grammar.MinusToken, "-", nil
	case '(':
		if next == '*' {
			return commentToken, "", nil
		}
		return grammar.LparenToken, "(", nil
	case '*':
		if next == ')' {
			return grammar.ErrorToken, "*)", nil
		}
		return grammar.StarToken, "*", nil
	case '+', '/', '~', '@', '.', ';', '{', '}', ':', ')', ',':
		return grammar.SymbolId(char), string(char), nil
	}

	return grammar.ErrorToken, string([]byte{char}), nil
}

func (lexer *RawLexer) newToken(
	symbolId grammar.SymbolId,
	start parseutil.Location,
	value string,
) *grammar.TokenValue {
	return &grammar.TokenValue{
		SymbolId:    symbolId,
		StartEndPos: parseutil.NewStartEndPos(start, lexer.Location),
		Value:       value,
	}
}

func (lexer *RawLexer) discard(n int) {
	_, err := lexer.Discard(n)
	if err != nil {
		panic("should never happen")
	}
}

func (lexer *RawLexer) lexSpacesToken() (grammar.Token, error) {
	peeked, err := lexer.peek(1)
	if err != nil {
		return nil, err
	}

	// gt's space tokenizer only covers ' ' and '\t'
	if peeked[0] == '\f' || peeked[0] == '\v' {
		start := lexer.Location
		lexer.discard(1)
		return lexer.newToken(spacesToken, start, ""), nil
	}

	token, err := parseutil.MaybeTokenizeSpaces(
		lexer.BufferedByteLocationReader,
		initialPeekWindowSize,
		spacesToken)
	if err != nil {
		return nil, err
	}

	if token == nil {
		panic("should never happen")
	}

	return token, nil
}

// Lone carriage returns are ordinary whitespace in COOL.
func (lexer *RawLexer) lexNewlinesToken() (grammar.Token, error) {
	token, _, err := parseutil.MaybeTokenizeNewlines(
		lexer.BufferedByteLocationReader,
		initialPeekWindowSize,
		newlinesToken)
	if err != nil {
		return nil, err
	}

	if token == nil {
		panic("should never happen")
	}

	return token, nil
}

func (lexer *RawLexer) lexLineComment() (grammar.Token, error) {
	start := lexer.Location
	lexer.discard(2)

	for {
		peeked, err := lexer.peek(initialPeekWindowSize)
		if err == io.EOF {
			return lexer.newToken(commentToken, start, ""), nil
		} else if err != nil {
			return nil, err
		}

		idx := bytes.IndexByte(peeked, '\n')
		if idx >= 0 {
			lexer.discard(idx)
			return lexer.newToken(commentToken, start, ""), nil
		}

		lexer.discard(len(peeked))
	}
}

// COOL block comments nest.
func (lexer *RawLexer) lexBlockComment() (grammar.Token, error) {
	start := lexer.Location
	lexer.discard(2)

	depth := 1
	for depth > 0 {
		peeked, err := lexer.peek(2)
		if err == io.EOF {
			return lexer.newToken(grammar.ErrorToken, start, eofInComment), nil
		} else if err != nil {
			return nil, err
		}

		if len(peeked) > 1 {
			if peeked[0] == '(' && peeked[1] == '*' {
				depth++
				lexer.discard(2)
				continue
			} else if peeked[0] == '*' && peeked[1] == ')' {
				depth--
				lexer.discard(2)
				continue
			}
		}

		lexer.discard(1)
	}

	return lexer.newToken(commentToken, start, ""), nil
}

func (lexer *RawLexer) lexComment() (grammar.Token, error) {
	peeked, err := lexer.peek(2)
	if err != nil {
		return nil, err
	}

	if peeked[0] == '-' {
		return lexer.lexLineComment()
	}
	return lexer.lexBlockComment()
}

func (lexer *RawLexer) lexIntegerLiteralToken() (grammar.Token, error) {
	start := lexer.Location

	digits := []byte{}
	for {
		peeked, err := lexer.peek(initialPeekWindowSize)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		count := 0
		for count < len(peeked) && isDigit(peeked[count]) {
			count++
		}

		digits = append(digits, peeked[:count]...)
		lexer.discard(count)

		if count < len(peeked) {
			break
		}
	}

	return lexer.newToken(
		grammar.IntegerLiteralToken,
		start,
		lexer.Intern(string(digits))), nil
}

func (lexer *RawLexer) lexIdentifierOrKeyword() (grammar.Token, error) {
	token, err := parseutil.MaybeTokenizeIdentifier(
		lexer.BufferedByteLocationReader,
		initialPeekWindowSize,
		lexer.InternPool,
		grammar.ObjectIdToken)
	if err != nil {
		return nil, err
	}

	if token == nil {
		panic("should never happen")
	}

	lowered := strings.ToLower(token.Value)

	kwSymbolId, ok := grammar.Keywords[lowered]
	if ok {
		token.SymbolId = kwSymbolId
		return token, nil
	}

	// Boolean constants must begin with a lower case letter; the remaining
	// letters are case insensitive.
	if (lowered == "true" || lowered == "false") && token.Value[0] == lowered[0] {
		token.SymbolId = grammar.BoolLiteralToken
		token.Value = lowered
		return token, nil
	}

	if 'A' <= token.Value[0] && token.Value[0] <= 'Z' {
		token.SymbolId = grammar.TypeIdToken
	}

	return token, nil
}

// Discards the remainder of a malformed string constant, up to and
// including the closing quote or the first unescaped newline.
func (lexer *RawLexer) skipString() error {
	for {
		peeked, err := lexer.peek(2)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		switch peeked[0] {
		case '"', '\n':
			lexer.discard(1)
			return nil
		case '\\':
			lexer.discard(len(peeked))
		default:
			lexer.discard(1)
		}
	}
}

func (lexer *RawLexer) lexStringLiteralToken() (grammar.Token, error) {
	start := lexer.Location
	lexer.discard(1) // opening quote

	fail := func(errMsg string, skipRest bool) (grammar.Token, error) {
		if skipRest {
			err := lexer.skipString()
			if err != nil {
				return nil, err
			}
		}
		return lexer.newToken(grammar.ErrorToken, start, errMsg), nil
	}

	content := []byte{}
	for {
		peeked, err := lexer.peek(2)
		if err == io.EOF {
			return fail(eofInString, false)
		} else if err != nil {
			return nil, err
		}

		char := peeked[0]
		switch char {
		case '"':
			lexer.discard(1)
			return lexer.newToken(
				grammar.StringLiteralToken,
				start,
				lexer.Intern(string(content))), nil
		case '\n':
			lexer.discard(1)
			return fail(unterminatedString, false)
		case 0:
			return fail(nullCharacterString, true)
		case '\\':
			if len(peeked) < 2 {
				lexer.discard(1)
				return fail(eofInString, false)
			}

			escaped := peeked[1]
			switch escaped {
			case 'n':
				char = '\n'
			case 't':
				char = '\t'
			case 'b':
				char = '\b'
			case 'f':
				char = '\f'
			case 0:
				return fail(escapedNullString, true)
			default:
				char = escaped
			}

			lexer.discard(2)
		default:
			lexer.discard(1)
		}

		content = append(content, char)
		if len(content) > MaxStringLength {
			return fail(stringTooLong, true)
		}
	}
}

func (lexer *RawLexer) Next() (grammar.Token, error) {
	symbolId, value, err := lexer.peekNextToken()
	if err != nil {
		return nil, err
	}

	// fixed length token (including single character errors)
	size := len(value)
	if size > 0 {
		start := lexer.Location
		lexer.discard(size)

		if symbolId == grammar.ErrorToken && value == "*)" {
			value = unmatchedComment
		}

		return lexer.newToken(symbolId, start, value), nil
	}

	// variable length token
	switch symbolId {
	case spacesToken:
		return lexer.lexSpacesToken()
	case newlinesToken:
		return lexer.lexNewlinesToken()
	case commentToken:
		return lexer.lexComment()
	case grammar.IntegerLiteralToken:
		return lexer.lexIntegerLiteralToken()
	case grammar.StringLiteralToken:
		return lexer.lexStringLiteralToken()
	case grammar.ObjectIdToken:
		return lexer.lexIdentifierOrKeyword()
	}

	panic("unhandled variable length token")
}

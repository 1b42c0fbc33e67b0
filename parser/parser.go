package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pattyshack/gt/parseutil"
	"github.com/pattyshack/gt/stringutil"

	"github.com/pattyshack/coolparse/ast"
	"github.com/pattyshack/coolparse/parser/grammar"
	"github.com/pattyshack/coolparse/parser/reducer"
)

type Options struct {
	// The parse aborts once the number of reported syntax errors exceeds
	// this limit.  Defaults to DefaultMaxErrors when non-positive.
	MaxErrors int

	// Debug level trace of error reports, discarded tokens and
	// resynchronization.  nil disables tracing.
	Logger *slog.Logger
}

// Parser is a single use recursive descent parser for one token stream.
type Parser struct {
	lexer   grammar.Lexer
	reducer grammar.Reducer
	emitter *parseutil.Emitter
	options Options
	logger  *slog.Logger

	lookahead *grammar.TokenValue
	endOfFile bool

	numErrors int

	// Set after resynchronization.  Syntax errors are not reported until
	// the next token is shifted.
	quiet bool

	// Level of a non-associative operator which was just reduced and may not
	// be chained with the lookahead.  Zero when there is no such operator.
	unchainable int
}

func NewParser(
	lexer grammar.Lexer,
	reducer grammar.Reducer,
	emitter *parseutil.Emitter,
	options Options,
) *Parser {
	if options.MaxErrors <= 0 {
		options.MaxErrors = DefaultMaxErrors
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Parser{
		lexer:   lexer,
		reducer: reducer,
		emitter: emitter,
		options: options,
		logger:  logger,
	}
}

// Parse consumes the entire token stream.  On success, the program is
// returned with a nil error.  When syntax errors were recovered, the
// partially built program is returned along with an error wrapping
// ErrSyntax.  When the parse stops unsuccessfully (too many errors, or end
// of input while recovering), the program is nil.
func (parser *Parser) Parse() (program *ast.Program, err error) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		stop, ok := recovered.(abort)
		if !ok {
			panic(recovered)
		}

		program = nil
		err = stop.err
		parser.logger.Debug("parse stopped", "error", err)
	}()

	program = parser.parseProgram()
	if parser.numErrors > 0 {
		return program, fmt.Errorf("%w: %d error(s)", ErrSyntax, parser.numErrors)
	}
	return program, nil
}

// Number of syntax errors reported so far.
func (parser *Parser) NumErrors() int {
	return parser.numErrors
}

func (parser *Parser) read() *grammar.TokenValue {
	if parser.endOfFile {
		return parser.endMarker()
	}

	token, err := parser.lexer.Next()
	if err != nil {
		parser.endOfFile = true
		if errors.Is(err, io.EOF) {
			return parser.endMarker()
		}

		// Any other lexer failure is unrecoverable for the token source, and is
		// surfaced as a single lexical fault followed by end of input.
		loc := parser.lexer.CurrentLocation()
		return &grammar.TokenValue{
			SymbolId:    grammar.ErrorToken,
			StartEndPos: parseutil.NewStartEndPos(loc, loc),
			Value:       err.Error(),
		}
	}

	value, ok := token.(*grammar.TokenValue)
	if ok {
		return value
	}

	return &grammar.TokenValue{
		SymbolId:    token.Id(),
		StartEndPos: parseutil.NewStartEndPos(token.Loc(), token.Loc()),
	}
}

func (parser *Parser) endMarker() *grammar.TokenValue {
	loc := parser.lexer.CurrentLocation()
	return &grammar.TokenValue{
		SymbolId:    grammar.EndMarker,
		StartEndPos: parseutil.NewStartEndPos(loc, loc),
	}
}

func (parser *Parser) current() *grammar.TokenValue {
	if parser.lookahead == nil {
		parser.lookahead = parser.read()
	}
	return parser.lookahead
}

func (parser *Parser) peek() grammar.SymbolId {
	return parser.current().SymbolId
}

func (parser *Parser) shift() *grammar.TokenValue {
	token := parser.current()
	parser.lookahead = nil
	parser.unchainable = 0
	parser.quiet = false
	return token
}

// Discards the current token without clearing the quiet flag.
func (parser *Parser) discard() {
	token := parser.current()
	parser.logger.Debug(
		"discarding token",
		"line", grammar.Line(token),
		"token", grammar.TokenText(token))
	parser.lookahead = nil
	parser.unchainable = 0
}

func (parser *Parser) expect(id grammar.SymbolId) *grammar.TokenValue {
	if parser.peek() != id {
		parser.fail(id)
	}
	return parser.shift()
}

// Tokens which may follow a complete expression: any operator which extends
// it, followed by the enclosing construct's terminators.
func (parser *Parser) continuations(
	terminators ...grammar.SymbolId,
) []grammar.SymbolId {
	expected := grammar.OperatorsAbove(parser.unchainable)
	expected = append(expected, grammar.DotToken, grammar.AtToken)
	return append(expected, terminators...)
}

// Like expect, but the current token follows a complete expression.
func (parser *Parser) expectAfterExpression(
	id grammar.SymbolId,
) *grammar.TokenValue {
	if parser.peek() != id {
		parser.fail(parser.continuations(id)...)
	}
	return parser.shift()
}

func Parse(
	lexer grammar.Lexer,
	emitter *parseutil.Emitter,
	options Options,
) (
	*ast.Program,
	error,
) {
	parser := NewParser(
		lexer,
		reducer.NewReducer(stringutil.NewInternPool()),
		emitter,
		options)
	return parser.Parse()
}

package parser

import (
	"github.com/pattyshack/coolparse/parser/grammar"
)

// fail reports the current token as unexpected (unless the parser is still
// quiet from a previous resynchronization) and unwinds to the nearest
// synchronization point.
func (parser *Parser) fail(expected ...grammar.SymbolId) {
	token := parser.current()
	if !parser.quiet {
		parser.numErrors++

		err := &SyntaxError{
			FileName: token.Loc().FileName,
			Line:     grammar.Line(token),
			Near:     grammar.TokenText(token),
			Expected: expected,
		}
		parser.emitter.EmitErrors(err)
		parser.logger.Debug("syntax error", "error", err.Error())

		if parser.numErrors > parser.options.MaxErrors {
			panic(abort{err: &TooManyErrorsError{Limit: parser.options.MaxErrors}})
		}
	}

	panic(bailout{})
}

type syncResult int

const (
	// Resume parsing at the current synchronization point.
	resume = syncResult(iota)

	// The current token belongs to an outer synchronization point.
	propagate
)

// catch runs parse.  On syntax error, the unwound partial parse is dropped
// and sync discards tokens until it finds a synchronization point.  Returns
// true if parse completed without error.
func (parser *Parser) catch(
	level string,
	parse func(),
	sync func() syncResult,
) (
	ok bool,
) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		_, isBailout := recovered.(bailout)
		if !isBailout {
			panic(recovered)
		}

		ok = false
		parser.quiet = true

		result := sync()
		token := parser.current()
		if result == propagate {
			parser.logger.Debug(
				"propagating error",
				"level", level,
				"line", grammar.Line(token),
				"token", grammar.TokenText(token))
			panic(bailout{})
		}

		parser.logger.Debug(
			"resynchronized",
			"level", level,
			"line", grammar.Line(token),
			"token", grammar.TokenText(token))
	}()

	parse()
	return true
}

func (parser *Parser) incomplete() {
	panic(abort{err: ErrIncomplete})
}

// Discards until the next CLASS keyword (not consumed).
func (parser *Parser) syncClass() syncResult {
	for {
		switch parser.peek() {
		case grammar.EndMarker:
			parser.incomplete()
		case grammar.ClassToken:
			return resume
		}
		parser.discard()
	}
}

// Discards through the next ';'.  CLASS belongs to the class level.
func (parser *Parser) syncFeature() syncResult {
	for {
		switch parser.peek() {
		case grammar.EndMarker:
			parser.incomplete()
		case grammar.ClassToken:
			return propagate
		case grammar.SemicolonToken:
			parser.discard()
			return resume
		}
		parser.discard()
	}
}

// Discards through the next ';' outside of nested braces, or until the
// block's closing '}' (not consumed).
func (parser *Parser) syncStatement() syncResult {
	depth := 0
	for {
		switch parser.peek() {
		case grammar.EndMarker:
			parser.incomplete()
		case grammar.ClassToken:
			return propagate
		case grammar.LbraceToken:
			depth++
		case grammar.RbraceToken:
			if depth == 0 {
				return resume
			}
			depth--
		case grammar.SemicolonToken:
			if depth == 0 {
				parser.discard()
				return resume
			}
		}
		parser.discard()
	}
}

// Discards until the next ',' (consumed) or IN (not consumed) outside of
// nested braces.  Statement and class delimiters belong to outer levels.
func (parser *Parser) syncLetBinding() syncResult {
	depth := 0
	for {
		switch parser.peek() {
		case grammar.EndMarker:
			parser.incomplete()
		case grammar.ClassToken:
			return propagate
		case grammar.LbraceToken:
			depth++
		case grammar.RbraceToken:
			if depth == 0 {
				return propagate
			}
			depth--
		case grammar.SemicolonToken:
			if depth == 0 {
				return propagate
			}
		case grammar.CommaToken:
			if depth == 0 {
				parser.discard()
				return resume
			}
		case grammar.InToken:
			if depth == 0 {
				return resume
			}
		}
		parser.discard()
	}
}

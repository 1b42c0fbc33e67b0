package lexer

import (
	"io"
	"strings"
	"testing"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/coolparse/parser/grammar"
)

type lexedToken struct {
	id    grammar.SymbolId
	value string
	line  int
}

func lex(t *testing.T, src string) []lexedToken {
	t.Helper()

	lexer := NewLexer(
		parseutil.NewBufferedByteLocationReaderFromSlice("test.cl", []byte(src)),
		nil)

	result := []lexedToken{}
	for {
		token, err := lexer.Next()
		if err == io.EOF {
			return result
		} else if err != nil {
			t.Fatalf("Next() error = %v", err)
		}

		value, ok := token.(*grammar.TokenValue)
		if !ok {
			t.Fatalf("token is %T, want *grammar.TokenValue", token)
		}

		if value.Loc().FileName != "test.cl" {
			t.Errorf("token file name = %q", value.Loc().FileName)
		}

		result = append(
			result,
			lexedToken{
				id:    value.SymbolId,
				value: value.Value,
				line:  value.Loc().Line,
			})
	}
}

func expectTokens(t *testing.T, got []lexedToken, want []lexedToken) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(want), want)
	}

	for idx, expected := range want {
		actual := got[idx]
		if actual.id != expected.id {
			t.Errorf("token %d: id = %s, want %s", idx, actual.id, expected.id)
		}
		if expected.value != "" && actual.value != expected.value {
			t.Errorf("token %d: value = %q, want %q", idx, actual.value, expected.value)
		}
		if expected.line != 0 && actual.line != expected.line {
			t.Errorf("token %d: line = %d, want %d", idx, actual.line, expected.line)
		}
	}
}

func TestKeywords(t *testing.T) {
	got := lex(t, "CLASS Inherits iF then ElSe fi while LOOP pool let In case of esac new isVoid NOT")
	expectTokens(
		t,
		got,
		[]lexedToken{
			{id: grammar.ClassToken},
			{id: grammar.InheritsToken},
			{id: grammar.IfToken},
			{id: grammar.ThenToken},
			{id: grammar.ElseToken},
			{id: grammar.FiToken},
			{id: grammar.WhileToken},
			{id: grammar.LoopToken},
			{id: grammar.PoolToken},
			{id: grammar.LetToken},
			{id: grammar.InToken},
			{id: grammar.CaseToken},
			{id: grammar.OfToken},
			{id: grammar.EsacToken},
			{id: grammar.NewToken},
			{id: grammar.IsVoidToken},
			{id: grammar.NotToken},
		})
}

func TestIdentifiersAndConstants(t *testing.T) {
	got := lex(t, "Foo foo_bar x1 SELF_TYPE self true fALSE True 007 42")
	expectTokens(
		t,
		got,
		[]lexedToken{
			{grammar.TypeIdToken, "Foo", 1},
			{grammar.ObjectIdToken, "foo_bar", 1},
			{grammar.ObjectIdToken, "x1", 1},
			{grammar.TypeIdToken, "SELF_TYPE", 1},
			{grammar.ObjectIdToken, "self", 1},
			{grammar.BoolLiteralToken, "true", 1},
			{grammar.BoolLiteralToken, "false", 1},
			{grammar.TypeIdToken, "True", 1},
			{grammar.IntegerLiteralToken, "007", 1},
			{grammar.IntegerLiteralToken, "42", 1},
		})
}

func TestOperators(t *testing.T) {
	got := lex(t, "<- <= => < = + - * / ~ @ . ; { } : ( ) ,")
	expectTokens(
		t,
		got,
		[]lexedToken{
			{grammar.AssignToken, "<-", 1},
			{grammar.LessEqualToken, "<=", 1},
			{grammar.DarrowToken, "=>", 1},
			{grammar.LessToken, "<", 1},
			{grammar.EqualToken, "=", 1},
			{grammar.PlusToken, "+", 1},
			{grammar.MinusToken, "-", 1},
			{grammar.StarToken, "*", 1},
			{grammar.SlashToken, "/", 1},
			{grammar.TildeToken, "~", 1},
			{grammar.AtToken, "@", 1},
			{grammar.DotToken, ".", 1},
			{grammar.SemicolonToken, ";", 1},
			{grammar.LbraceToken, "{", 1},
			{grammar.RbraceToken, "}", 1},
			{grammar.ColonToken, ":", 1},
			{grammar.LparenToken, "(", 1},
			{grammar.RparenToken, ")", 1},
			{grammar.CommaToken, ",", 1},
		})
}

func TestAdjacentOperators(t *testing.T) {
	got := lex(t, "x<-y<=z")
	expectTokens(
		t,
		got,
		[]lexedToken{
			{grammar.ObjectIdToken, "x", 1},
			{grammar.AssignToken, "<-", 1},
			{grammar.ObjectIdToken, "y", 1},
			{grammar.LessEqualToken, "<=", 1},
			{grammar.ObjectIdToken, "z", 1},
		})
}

func TestLinesAndComments(t *testing.T) {
	got := lex(
		t,
		"a -- line comment\n"+
			"b (* block (* nested *)\n"+
			"   still comment *) c\n"+
			"\n"+
			"\td\f\v--trailing")
	expectTokens(
		t,
		got,
		[]lexedToken{
			{grammar.ObjectIdToken, "a", 1},
			{grammar.ObjectIdToken, "b", 2},
			{grammar.ObjectIdToken, "c", 3},
			{grammar.ObjectIdToken, "d", 5},
		})
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", `"hello world"`, "hello world"},
		{"empty", `""`, ""},
		{"escapes", `"a\nb\tc\bd\fe"`, "a\nb\tc\bd\fe"},
		{"escaped_quote", `"say \"hi\""`, `say "hi"`},
		{"escaped_backslash", `"a\\b"`, `a\b`},
		{"escaped_letter", `"\q\x"`, "qx"},
		{"escaped_newline", "\"a\\\nb\"", "a\nb"},
		{"max_length", `"` + strings.Repeat("a", MaxStringLength) + `"`, strings.Repeat("a", MaxStringLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lex(t, tt.src)
			if len(got) != 1 {
				t.Fatalf("got %d tokens %v, want 1", len(got), got)
			}
			if got[0].id != grammar.StringLiteralToken {
				t.Fatalf("id = %s, want STR_CONST (%q)", got[0].id, got[0].value)
			}
			if got[0].value != tt.want {
				t.Errorf("value = %q, want %q", got[0].value, tt.want)
			}
		})
	}
}

func TestMultiLineStringLocation(t *testing.T) {
	got := lex(t, "x \"a\\\nb\" y")
	expectTokens(
		t,
		got,
		[]lexedToken{
			{grammar.ObjectIdToken, "x", 1},
			{grammar.StringLiteralToken, "a\nb", 1},
			{grammar.ObjectIdToken, "y", 2},
		})
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []lexedToken
	}{
		{
			"eof_in_string",
			`x "abc`,
			[]lexedToken{
				{grammar.ObjectIdToken, "x", 1},
				{grammar.ErrorToken, eofInString, 1},
			},
		},
		{
			"unterminated_string",
			"\"abc\nx",
			[]lexedToken{
				{grammar.ErrorToken, unterminatedString, 1},
				{grammar.ObjectIdToken, "x", 2},
			},
		},
		{
			"null_character",
			"\"a\x00b\" x",
			[]lexedToken{
				{grammar.ErrorToken, nullCharacterString, 1},
				{grammar.ObjectIdToken, "x", 1},
			},
		},
		{
			"escaped_null_character",
			"\"a\\\x00b\" x",
			[]lexedToken{
				{grammar.ErrorToken, escapedNullString, 1},
				{grammar.ObjectIdToken, "x", 1},
			},
		},
		{
			"too_long",
			`"` + strings.Repeat("a", MaxStringLength+1) + `" x`,
			[]lexedToken{
				{grammar.ErrorToken, stringTooLong, 1},
				{grammar.ObjectIdToken, "x", 1},
			},
		},
		{
			"eof_in_comment",
			"x (* never closed",
			[]lexedToken{
				{grammar.ObjectIdToken, "x", 1},
				{grammar.ErrorToken, eofInComment, 1},
			},
		},
		{
			"unmatched_comment_close",
			"x *) y",
			[]lexedToken{
				{grammar.ObjectIdToken, "x", 1},
				{grammar.ErrorToken, unmatchedComment, 1},
				{grammar.ObjectIdToken, "y", 1},
			},
		},
		{
			"invalid_characters",
			"a # $ _b",
			[]lexedToken{
				{grammar.ObjectIdToken, "a", 1},
				{grammar.ErrorToken, "#", 1},
				{grammar.ErrorToken, "$", 1},
				{grammar.ErrorToken, "_", 1},
				{grammar.ObjectIdToken, "b", 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, lex(t, tt.src), tt.want)
		})
	}
}

func TestRawLexerDefaultPool(t *testing.T) {
	src := "foo foo"
	lexer := NewRawLexer(
		parseutil.NewBufferedByteLocationReaderFromSlice("test.cl", []byte(src)),
		nil)

	if lexer.InternPool == nil {
		t.Fatal("nil intern pool")
	}

	count := 0
	for {
		token, err := lexer.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Next() error = %v", err)
		}

		if token.Id() == grammar.ObjectIdToken {
			count++
		}
	}

	if count != 2 {
		t.Errorf("got %d identifiers, want 2", count)
	}
}

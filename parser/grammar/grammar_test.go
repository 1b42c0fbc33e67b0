package grammar

import (
	"reflect"
	"testing"

	"github.com/pattyshack/gt/parseutil"
)

func TestTokenText(t *testing.T) {
	loc := NewLocation("t.cl", 1)
	pos := parseutil.NewStartEndPos(loc, loc)

	tests := []struct {
		token *TokenValue
		want  string
	}{
		{&TokenValue{SymbolId: ObjectIdToken, StartEndPos: pos, Value: "x"}, "OBJECTID = x"},
		{&TokenValue{SymbolId: TypeIdToken, StartEndPos: pos, Value: "Int"}, "TYPEID = Int"},
		{&TokenValue{SymbolId: IntegerLiteralToken, StartEndPos: pos, Value: "12"}, "INT_CONST = 12"},
		{&TokenValue{SymbolId: BoolLiteralToken, StartEndPos: pos, Value: "true"}, "BOOL_CONST = true"},
		{&TokenValue{SymbolId: StringLiteralToken, StartEndPos: pos, Value: "a\nb"}, `STR_CONST = "a\nb"`},
		{&TokenValue{SymbolId: ErrorToken, StartEndPos: pos, Value: "#"}, `ERROR = "#"`},
		{&TokenValue{SymbolId: ClassToken, StartEndPos: pos, Value: "CLASS"}, "CLASS"},
		{&TokenValue{SymbolId: AssignToken, StartEndPos: pos, Value: "<-"}, "ASSIGN"},
		{&TokenValue{SymbolId: SemicolonToken, StartEndPos: pos, Value: ";"}, "';'"},
		{&TokenValue{SymbolId: EndMarker, StartEndPos: pos}, "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := TokenText(tt.token)
			if got != tt.want {
				t.Errorf("TokenText() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOperatorsAbove(t *testing.T) {
	got := OperatorsAbove(ComparisonLevel)
	want := []SymbolId{PlusToken, MinusToken, StarToken, SlashToken}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OperatorsAbove(ComparisonLevel) = %v, want %v", got, want)
	}

	if len(OperatorsAbove(MultiplicativeLevel)) != 0 {
		t.Error("nothing binds tighter than multiplication")
	}
}

func TestKeywordsAreLowerCase(t *testing.T) {
	for keyword, id := range Keywords {
		if id.String() == "" || keyword == "" {
			t.Errorf("bad keyword entry %q => %d", keyword, id)
		}
		for _, char := range keyword {
			if char < 'a' || char > 'z' {
				t.Errorf("keyword %q is not lower case", keyword)
			}
		}
	}
}

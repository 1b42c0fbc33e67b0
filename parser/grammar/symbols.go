package grammar

import (
	"fmt"
)

type SymbolId int

// Single character punctuation use their character code as symbol id.
const (
	LessToken      = SymbolId('<')
	EqualToken     = SymbolId('=')
	PlusToken      = SymbolId('+')
	MinusToken     = SymbolId('-')
	StarToken      = SymbolId('*')
	SlashToken     = SymbolId('/')
	TildeToken     = SymbolId('~')
	AtToken        = SymbolId('@')
	DotToken       = SymbolId('.')
	SemicolonToken = SymbolId(';')
	LbraceToken    = SymbolId('{')
	RbraceToken    = SymbolId('}')
	ColonToken     = SymbolId(':')
	LparenToken    = SymbolId('(')
	RparenToken    = SymbolId(')')
	CommaToken     = SymbolId(',')
)

const (
	ClassToken          = SymbolId(256)
	ElseToken           = SymbolId(257)
	FiToken             = SymbolId(258)
	IfToken             = SymbolId(259)
	InToken             = SymbolId(260)
	InheritsToken       = SymbolId(261)
	LetToken            = SymbolId(262)
	LoopToken           = SymbolId(263)
	PoolToken           = SymbolId(264)
	ThenToken           = SymbolId(265)
	WhileToken          = SymbolId(266)
	CaseToken           = SymbolId(267)
	EsacToken           = SymbolId(268)
	OfToken             = SymbolId(269)
	NewToken            = SymbolId(270)
	IsVoidToken         = SymbolId(271)
	NotToken            = SymbolId(272)
	IntegerLiteralToken = SymbolId(273)
	StringLiteralToken  = SymbolId(274)
	BoolLiteralToken    = SymbolId(275)
	TypeIdToken         = SymbolId(276)
	ObjectIdToken       = SymbolId(277)
	AssignToken         = SymbolId(278)
	LessEqualToken      = SymbolId(279)
	DarrowToken         = SymbolId(280)

	// Lexical fault surfaced by the token source.  The token's value holds
	// the error message.
	ErrorToken = SymbolId(281)
)

const (
	EndMarker = SymbolId(0)
)

var (
	Keywords = map[string]SymbolId{
		"class":    ClassToken,
		"else":     ElseToken,
		"fi":       FiToken,
		"if":       IfToken,
		"in":       InToken,
		"inherits": InheritsToken,
		"isvoid":   IsVoidToken,
		"let":      LetToken,
		"loop":     LoopToken,
		"pool":     PoolToken,
		"then":     ThenToken,
		"while":    WhileToken,
		"case":     CaseToken,
		"esac":     EsacToken,
		"new":      NewToken,
		"of":       OfToken,
		"not":      NotToken,
	}

	// Tokens which may begin an expression.
	ExpressionStart = []SymbolId{
		IfToken,
		LetToken,
		WhileToken,
		CaseToken,
		NewToken,
		IsVoidToken,
		NotToken,
		IntegerLiteralToken,
		StringLiteralToken,
		BoolLiteralToken,
		ObjectIdToken,
		TildeToken,
		LbraceToken,
		LparenToken,
	}
)

func (i SymbolId) String() string {
	switch i {
	case EndMarker:
		return "EOF"
	case ClassToken:
		return "CLASS"
	case ElseToken:
		return "ELSE"
	case FiToken:
		return "FI"
	case IfToken:
		return "IF"
	case InToken:
		return "IN"
	case InheritsToken:
		return "INHERITS"
	case LetToken:
		return "LET"
	case LoopToken:
		return "LOOP"
	case PoolToken:
		return "POOL"
	case ThenToken:
		return "THEN"
	case WhileToken:
		return "WHILE"
	case CaseToken:
		return "CASE"
	case EsacToken:
		return "ESAC"
	case OfToken:
		return "OF"
	case NewToken:
		return "NEW"
	case IsVoidToken:
		return "ISVOID"
	case NotToken:
		return "NOT"
	case IntegerLiteralToken:
		return "INT_CONST"
	case StringLiteralToken:
		return "STR_CONST"
	case BoolLiteralToken:
		return "BOOL_CONST"
	case TypeIdToken:
		return "TYPEID"
	case ObjectIdToken:
		return "OBJECTID"
	case AssignToken:
		return "ASSIGN"
	case LessEqualToken:
		return "LE"
	case DarrowToken:
		return "DARROW"
	case ErrorToken:
		return "ERROR"
	case LessToken, EqualToken, PlusToken, MinusToken, StarToken, SlashToken,
		TildeToken, AtToken, DotToken, SemicolonToken, LbraceToken, RbraceToken,
		ColonToken, LparenToken, RparenToken, CommaToken:
		return fmt.Sprintf("'%c'", rune(i))
	default:
		return fmt.Sprintf("?unknown symbol %d?", int(i))
	}
}

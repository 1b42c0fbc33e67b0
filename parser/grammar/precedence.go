package grammar

type Associativity int

const (
	LeftAssociative = Associativity(iota)
	RightAssociative
	NonAssociative
)

// Precedence levels, weakest binding first.
const (
	AssignLevel = 1 + iota
	NotLevel
	ComparisonLevel
	AdditiveLevel
	MultiplicativeLevel
	IsVoidLevel
	NegateLevel
	StaticDispatchLevel
	DispatchLevel
)

type Precedence struct {
	Level int
	Associativity
}

var (
	BinaryOperators = map[SymbolId]Precedence{
		LessToken:      {ComparisonLevel, NonAssociative},
		LessEqualToken: {ComparisonLevel, NonAssociative},
		EqualToken:     {ComparisonLevel, NonAssociative},
		PlusToken:      {AdditiveLevel, LeftAssociative},
		MinusToken:     {AdditiveLevel, LeftAssociative},
		StarToken:      {MultiplicativeLevel, LeftAssociative},
		SlashToken:     {MultiplicativeLevel, LeftAssociative},
	}

	PrefixOperators = map[SymbolId]int{
		NotToken:    NotLevel,
		IsVoidToken: IsVoidLevel,
		TildeToken:  NegateLevel,
	}
)

// Binary operators (in declaration order) which bind tighter than level.
func OperatorsAbove(level int) []SymbolId {
	result := []SymbolId{}
	for _, id := range []SymbolId{
		LessToken, LessEqualToken, EqualToken,
		PlusToken, MinusToken,
		StarToken, SlashToken,
	} {
		if BinaryOperators[id].Level > level {
			result = append(result, id)
		}
	}
	return result
}

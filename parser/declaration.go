package parser

import (
	"github.com/pattyshack/coolparse/ast"
	"github.com/pattyshack/coolparse/parser/grammar"
)

// must unwraps a reducer result.  Reducer failures are not syntax errors
// and stop the parse.
func must[T any](value T, err error) T {
	if err != nil {
		panic(abort{err: err})
	}
	return value
}

// program -> class_list
//
// class_list -> new: class
// class_list -> add: class_list class
func (parser *Parser) parseProgram() *ast.Program {
	var classes []*ast.Class
	for {
		var class *ast.Class
		ok := parser.catch(
			"class",
			func() { class = parser.parseClass() },
			parser.syncClass)

		if ok {
			if len(classes) == 0 {
				classes = must(parser.reducer.NewToClassList(class))
			} else {
				classes = must(parser.reducer.AddToClassList(classes, class))
			}

			// A failed class always resynchronizes at the next CLASS keyword, so
			// the end marker is only observable after a successful class.
			if parser.peek() == grammar.EndMarker {
				break
			}
		}
	}

	return must(parser.reducer.ToProgram(classes))
}

// class -> implicit: CLASS TYPEID '{' feature_list '}' ';'
// class -> inherits: CLASS TYPEID INHERITS TYPEID '{' feature_list '}' ';'
func (parser *Parser) parseClass() *ast.Class {
	classKW := parser.expect(grammar.ClassToken)
	name := parser.expect(grammar.TypeIdToken)

	var inherits *grammar.TokenValue
	var parent *grammar.TokenValue
	switch parser.peek() {
	case grammar.InheritsToken:
		inherits = parser.shift()
		parent = parser.expect(grammar.TypeIdToken)
	case grammar.LbraceToken:
	default:
		parser.fail(grammar.InheritsToken, grammar.LbraceToken)
	}

	lbrace := parser.expect(grammar.LbraceToken)
	features := parser.parseFeatureList()
	rbrace := parser.expect(grammar.RbraceToken)
	semicolon := parser.expect(grammar.SemicolonToken)

	if inherits == nil {
		return must(
			parser.reducer.ImplicitToClass(
				classKW,
				name,
				lbrace,
				features,
				rbrace,
				semicolon))
	}

	return must(
		parser.reducer.InheritsToClass(
			classKW,
			name,
			inherits,
			parent,
			lbrace,
			features,
			rbrace,
			semicolon))
}

// feature_list -> nil:
// feature_list -> add: feature_list feature ';'
func (parser *Parser) parseFeatureList() []ast.Feature {
	features := must(parser.reducer.NilToFeatureList())
	for parser.peek() != grammar.RbraceToken {
		var feature ast.Feature
		var semicolon *grammar.TokenValue
		ok := parser.catch(
			"feature",
			func() {
				feature = parser.parseFeature()
				semicolon = parser.expect(grammar.SemicolonToken)
			},
			parser.syncFeature)

		if ok {
			features = must(
				parser.reducer.AddToFeatureList(features, feature, semicolon))
		}
	}

	return features
}

// feature -> attribute: OBJECTID ':' TYPEID
// feature -> initialized_attribute: OBJECTID ':' TYPEID ASSIGN expr
// feature -> method: OBJECTID '(' formal_list ')' ':' TYPEID '{' expr '}'
func (parser *Parser) parseFeature() ast.Feature {
	if parser.peek() != grammar.ObjectIdToken {
		parser.fail(grammar.ObjectIdToken, grammar.RbraceToken)
	}
	name := parser.shift()

	switch parser.peek() {
	case grammar.ColonToken:
		colon := parser.shift()
		typeId := parser.expect(grammar.TypeIdToken)

		switch parser.peek() {
		case grammar.AssignToken:
			assign := parser.shift()
			init := parser.parseExpression()
			if parser.peek() != grammar.SemicolonToken {
				parser.fail(parser.continuations(grammar.SemicolonToken)...)
			}
			return must(
				parser.reducer.InitializedAttributeToFeature(
					name,
					colon,
					typeId,
					assign,
					init))
		case grammar.SemicolonToken:
			return must(parser.reducer.AttributeToFeature(name, colon, typeId))
		default:
			parser.fail(grammar.AssignToken, grammar.SemicolonToken)
			return nil
		}

	case grammar.LparenToken:
		lparen := parser.shift()
		formals := parser.parseFormalList()
		rparen := parser.expect(grammar.RparenToken)
		colon := parser.expect(grammar.ColonToken)
		returnType := parser.expect(grammar.TypeIdToken)
		lbrace := parser.expect(grammar.LbraceToken)
		body := parser.parseExpression()
		rbrace := parser.expectAfterExpression(grammar.RbraceToken)

		return must(
			parser.reducer.MethodToFeature(
				name,
				lparen,
				formals,
				rparen,
				colon,
				returnType,
				lbrace,
				body,
				rbrace))

	default:
		parser.fail(grammar.ColonToken, grammar.LparenToken)
		return nil
	}
}

// formal_list -> nil:
// formal_list -> new: formal
// formal_list -> add: formal_list ',' formal
func (parser *Parser) parseFormalList() []*ast.Formal {
	switch parser.peek() {
	case grammar.RparenToken:
		return must(parser.reducer.NilToFormalList())
	case grammar.ObjectIdToken:
	default:
		parser.fail(grammar.ObjectIdToken, grammar.RparenToken)
	}

	formals := must(parser.reducer.NewToFormalList(parser.parseFormal()))
	for {
		switch parser.peek() {
		case grammar.CommaToken:
			comma := parser.shift()
			formal := parser.parseFormal()
			formals = must(parser.reducer.AddToFormalList(formals, comma, formal))
		case grammar.RparenToken:
			return formals
		default:
			parser.fail(grammar.CommaToken, grammar.RparenToken)
		}
	}
}

// formal -> OBJECTID ':' TYPEID
func (parser *Parser) parseFormal() *ast.Formal {
	name := parser.expect(grammar.ObjectIdToken)
	colon := parser.expect(grammar.ColonToken)
	typeId := parser.expect(grammar.TypeIdToken)
	return must(parser.reducer.ToFormal(name, colon, typeId))
}

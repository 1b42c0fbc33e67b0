package grammar

import (
	"github.com/pattyshack/coolparse/ast"
)

type ProgramReducer interface {
	// program -> class_list
	ToProgram(Classes_ []*ast.Class) (*ast.Program, error)
}

type ClassListReducer interface {
	// class_list -> new: class
	NewToClassList(Class_ *ast.Class) ([]*ast.Class, error)

	// class_list -> add: class_list class
	AddToClassList(ClassList_ []*ast.Class, Class_ *ast.Class) ([]*ast.Class, error)
}

type ClassReducer interface {
	// class -> implicit: CLASS TYPEID '{' feature_list '}' ';'
	ImplicitToClass(Class_ *TokenValue, TypeId_ *TokenValue, Lbrace_ *TokenValue, FeatureList_ []ast.Feature, Rbrace_ *TokenValue, Semicolon_ *TokenValue) (*ast.Class, error)

	// class -> inherits: CLASS TYPEID INHERITS TYPEID '{' feature_list '}' ';'
	InheritsToClass(Class_ *TokenValue, TypeId_ *TokenValue, Inherits_ *TokenValue, TypeId_2 *TokenValue, Lbrace_ *TokenValue, FeatureList_ []ast.Feature, Rbrace_ *TokenValue, Semicolon_ *TokenValue) (*ast.Class, error)
}

type FeatureListReducer interface {
	// feature_list -> nil:
	NilToFeatureList() ([]ast.Feature, error)

	// feature_list -> add: feature_list feature ';'
	AddToFeatureList(FeatureList_ []ast.Feature, Feature_ ast.Feature, Semicolon_ *TokenValue) ([]ast.Feature, error)
}

type FeatureReducer interface {
	// feature -> attribute: OBJECTID ':' TYPEID
	AttributeToFeature(ObjectId_ *TokenValue, Colon_ *TokenValue, TypeId_ *TokenValue) (ast.Feature, error)

	// feature -> initialized_attribute: OBJECTID ':' TYPEID ASSIGN expr
	InitializedAttributeToFeature(ObjectId_ *TokenValue, Colon_ *TokenValue, TypeId_ *TokenValue, Assign_ *TokenValue, Expr_ ast.Expression) (ast.Feature, error)

	// feature -> method: OBJECTID '(' formal_list ')' ':' TYPEID '{' expr '}'
	MethodToFeature(ObjectId_ *TokenValue, Lparen_ *TokenValue, FormalList_ []*ast.Formal, Rparen_ *TokenValue, Colon_ *TokenValue, TypeId_ *TokenValue, Lbrace_ *TokenValue, Expr_ ast.Expression, Rbrace_ *TokenValue) (ast.Feature, error)
}

type FormalListReducer interface {
	// formal_list -> nil:
	NilToFormalList() ([]*ast.Formal, error)

	// formal_list -> new: formal
	NewToFormalList(Formal_ *ast.Formal) ([]*ast.Formal, error)

	// formal_list -> add: formal_list ',' formal
	AddToFormalList(FormalList_ []*ast.Formal, Comma_ *TokenValue, Formal_ *ast.Formal) ([]*ast.Formal, error)
}

type FormalReducer interface {
	// formal -> OBJECTID ':' TYPEID
	ToFormal(ObjectId_ *TokenValue, Colon_ *TokenValue, TypeId_ *TokenValue) (*ast.Formal, error)
}

type ExpressionReducer interface {
	// expr -> integer: INT_CONST
	IntegerToExpression(IntegerLiteral_ *TokenValue) (ast.Expression, error)

	// expr -> string: STR_CONST
	StringToExpression(StringLiteral_ *TokenValue) (ast.Expression, error)

	// expr -> bool: BOOL_CONST
	BoolToExpression(BoolLiteral_ *TokenValue) (ast.Expression, error)

	// expr -> identifier: OBJECTID
	IdentifierToExpression(ObjectId_ *TokenValue) (ast.Expression, error)

	// expr -> paren: '(' expr ')'
	ParenToExpression(Lparen_ *TokenValue, Expr_ ast.Expression, Rparen_ *TokenValue) (ast.Expression, error)

	// expr -> assign: OBJECTID ASSIGN expr
	AssignToExpression(ObjectId_ *TokenValue, Assign_ *TokenValue, Expr_ ast.Expression) (ast.Expression, error)

	// expr -> conditional: IF expr THEN expr ELSE expr FI
	ConditionalToExpression(If_ *TokenValue, Expr_ ast.Expression, Then_ *TokenValue, Expr_2 ast.Expression, Else_ *TokenValue, Expr_3 ast.Expression, Fi_ *TokenValue) (ast.Expression, error)

	// expr -> loop: WHILE expr LOOP expr POOL
	LoopToExpression(While_ *TokenValue, Expr_ ast.Expression, Loop_ *TokenValue, Expr_2 ast.Expression, Pool_ *TokenValue) (ast.Expression, error)

	// expr -> block: '{' statement_list '}'
	BlockToExpression(Lbrace_ *TokenValue, StatementList_ []ast.Expression, Rbrace_ *TokenValue) (ast.Expression, error)

	// expr -> new: NEW TYPEID
	NewToExpression(New_ *TokenValue, TypeId_ *TokenValue) (ast.Expression, error)
}

type DispatchReducer interface {
	// expr -> explicit_dispatch: expr '.' OBJECTID '(' argument_list ')'
	ExplicitDispatchToExpression(Expr_ ast.Expression, Dot_ *TokenValue, ObjectId_ *TokenValue, Lparen_ *TokenValue, ArgumentList_ []ast.Expression, Rparen_ *TokenValue) (ast.Expression, error)

	// expr -> implicit_dispatch: OBJECTID '(' argument_list ')'
	ImplicitDispatchToExpression(ObjectId_ *TokenValue, Lparen_ *TokenValue, ArgumentList_ []ast.Expression, Rparen_ *TokenValue) (ast.Expression, error)

	// expr -> static_dispatch: expr '@' TYPEID '.' OBJECTID '(' argument_list ')'
	StaticDispatchToExpression(Expr_ ast.Expression, At_ *TokenValue, TypeId_ *TokenValue, Dot_ *TokenValue, ObjectId_ *TokenValue, Lparen_ *TokenValue, ArgumentList_ []ast.Expression, Rparen_ *TokenValue) (ast.Expression, error)
}

type StatementListReducer interface {
	// statement_list -> new: expr ';'
	NewToStatementList(Expr_ ast.Expression, Semicolon_ *TokenValue) ([]ast.Expression, error)

	// statement_list -> add: statement_list expr ';'
	AddToStatementList(StatementList_ []ast.Expression, Expr_ ast.Expression, Semicolon_ *TokenValue) ([]ast.Expression, error)
}

type ArgumentListReducer interface {
	// argument_list -> nil:
	NilToArgumentList() ([]ast.Expression, error)

	// argument_list -> new: expr
	NewToArgumentList(Expr_ ast.Expression) ([]ast.Expression, error)

	// argument_list -> add: argument_list ',' expr
	AddToArgumentList(ArgumentList_ []ast.Expression, Comma_ *TokenValue, Expr_ ast.Expression) ([]ast.Expression, error)
}

type LetReducer interface {
	// let_binding -> uninitialized: OBJECTID ':' TYPEID
	UninitializedToLetBinding(ObjectId_ *TokenValue, Colon_ *TokenValue, TypeId_ *TokenValue) (*ParsedLetBinding, error)

	// let_binding -> initialized: OBJECTID ':' TYPEID ASSIGN expr
	InitializedToLetBinding(ObjectId_ *TokenValue, Colon_ *TokenValue, TypeId_ *TokenValue, Assign_ *TokenValue, Expr_ ast.Expression) (*ParsedLetBinding, error)

	// let_binding_list -> new: let_binding
	NewToLetBindingList(LetBinding_ *ParsedLetBinding) ([]*ParsedLetBinding, error)

	// let_binding_list -> add: let_binding_list ',' let_binding
	AddToLetBindingList(LetBindingList_ []*ParsedLetBinding, Comma_ *TokenValue, LetBinding_ *ParsedLetBinding) ([]*ParsedLetBinding, error)

	// expr -> let: LET let_binding_list IN expr
	LetToExpression(Let_ *TokenValue, LetBindingList_ []*ParsedLetBinding, In_ *TokenValue, Expr_ ast.Expression) (ast.Expression, error)
}

type CaseReducer interface {
	// branch -> OBJECTID ':' TYPEID DARROW expr ';'
	ToBranch(ObjectId_ *TokenValue, Colon_ *TokenValue, TypeId_ *TokenValue, Darrow_ *TokenValue, Expr_ ast.Expression, Semicolon_ *TokenValue) (*ast.Branch, error)

	// branch_list -> new: branch
	NewToBranchList(Branch_ *ast.Branch) ([]*ast.Branch, error)

	// branch_list -> add: branch_list branch
	AddToBranchList(BranchList_ []*ast.Branch, Branch_ *ast.Branch) ([]*ast.Branch, error)

	// expr -> case: CASE expr OF branch_list ESAC
	CaseToExpression(Case_ *TokenValue, Expr_ ast.Expression, Of_ *TokenValue, BranchList_ []*ast.Branch, Esac_ *TokenValue) (ast.Expression, error)
}

type OperatorReducer interface {
	// expr -> isvoid: ISVOID expr
	IsVoidToExpression(IsVoid_ *TokenValue, Expr_ ast.Expression) (ast.Expression, error)

	// expr -> unary: (NOT | '~') expr
	UnaryToExpression(Op_ *TokenValue, Expr_ ast.Expression) (ast.Expression, error)

	// expr -> binary: expr ('+' | '-' | '*' | '/' | '<' | LE | '=') expr
	BinaryToExpression(Expr_ ast.Expression, Op_ *TokenValue, Expr_2 ast.Expression) (ast.Expression, error)
}

type Reducer interface {
	ProgramReducer
	ClassListReducer
	ClassReducer
	FeatureListReducer
	FeatureReducer
	FormalListReducer
	FormalReducer
	ExpressionReducer
	DispatchReducer
	StatementListReducer
	ArgumentListReducer
	LetReducer
	CaseReducer
	OperatorReducer
}

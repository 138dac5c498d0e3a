package token

const (
	Undetermined Token = iota

	Illegal
	Eof
	Newline // line break, only produced when newlines are significant

	String
	Number
	RegExp

	Semicolon    // ;
	Comma        // ,
	Assign       // = and every compound assignment
	QuestionMark // ?
	Colon        // :

	LogicalOr  // ||
	LogicalAnd // &&

	Or          // |
	ExclusiveOr // ^
	And         // &

	Equal          // ==
	NotEqual       // !=
	StrictEqual    // ===
	StrictNotEqual // !==

	Less           // <
	LessOrEqual    // <=
	GreaterOrEqual // >=
	Greater        // >

	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %

	Not        // !
	BitwiseNot // ~
	UnaryPlus  // + in operand position
	UnaryMinus // - in operand position

	Increment // ++
	Decrement // --

	Period // .

	LeftBracket      // [
	RightBracket     // ]
	LeftBrace        // {
	RightBrace       // }
	LeftParenthesis  // (
	RightParenthesis // )

	// Markers pushed on the operator stack of the expression parser.
	// They never come out of the scanner.
	Call
	Index
	Group
	NewWithArgs

	Identifier
	Boolean
	Null

	Break
	Case
	Catch
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Enum
	Finally
	For
	Function
	If
	In
	InstanceOf
	New
	Return
	Switch
	This
	Throw
	Try
	Typeof
	Var
	Void
	While
	With
)

var token2string = [...]string{
	Illegal:            "Illegal",
	Eof:                "Eof",
	Newline:            "Newline",
	String:             "String",
	Number:             "Number",
	RegExp:             "RegExp",
	Semicolon:          ";",
	Comma:              ",",
	Assign:             "=",
	QuestionMark:       "?",
	Colon:              ":",
	LogicalOr:          "||",
	LogicalAnd:         "&&",
	Or:                 "|",
	ExclusiveOr:        "^",
	And:                "&",
	Equal:              "==",
	NotEqual:           "!=",
	StrictEqual:        "===",
	StrictNotEqual:     "!==",
	Less:               "<",
	LessOrEqual:        "<=",
	GreaterOrEqual:     ">=",
	Greater:            ">",
	ShiftLeft:          "<<",
	ShiftRight:         ">>",
	UnsignedShiftRight: ">>>",
	Plus:               "+",
	Minus:              "-",
	Multiply:           "*",
	Slash:              "/",
	Remainder:          "%",
	Not:                "!",
	BitwiseNot:         "~",
	UnaryPlus:          "+",
	UnaryMinus:         "-",
	Increment:          "++",
	Decrement:          "--",
	Period:             ".",
	LeftBracket:        "[",
	RightBracket:       "]",
	LeftBrace:          "{",
	RightBrace:         "}",
	LeftParenthesis:    "(",
	RightParenthesis:   ")",
	Call:               "Call",
	Index:              "Index",
	Group:              "Group",
	NewWithArgs:        "NewWithArgs",
	Identifier:         "Identifier",
	Boolean:            "Boolean",
	Null:               "null",
	Break:              "break",
	Case:               "case",
	Catch:              "catch",
	Const:              "const",
	Continue:           "continue",
	Debugger:           "debugger",
	Default:            "default",
	Delete:             "delete",
	Do:                 "do",
	Else:               "else",
	Enum:               "enum",
	Finally:            "finally",
	For:                "for",
	Function:           "function",
	If:                 "if",
	In:                 "in",
	InstanceOf:         "instanceof",
	New:                "new",
	Return:             "return",
	Switch:             "switch",
	This:               "this",
	Throw:              "throw",
	Try:                "try",
	Typeof:             "typeof",
	Var:                "var",
	Void:               "void",
	While:              "while",
	With:               "with",
}

var keywordTable = map[string]Token{
	"break":      Break,
	"case":       Case,
	"catch":      Catch,
	"const":      Const,
	"continue":   Continue,
	"debugger":   Debugger,
	"default":    Default,
	"delete":     Delete,
	"do":         Do,
	"else":       Else,
	"enum":       Enum,
	"false":      Boolean,
	"finally":    Finally,
	"for":        For,
	"function":   Function,
	"if":         If,
	"in":         In,
	"instanceof": InstanceOf,
	"new":        New,
	"null":       Null,
	"return":     Return,
	"switch":     Switch,
	"this":       This,
	"throw":      Throw,
	"true":       Boolean,
	"try":        Try,
	"typeof":     Typeof,
	"var":        Var,
	"void":       Void,
	"while":      While,
	"with":       With,
}

// operatorTable lists every punctuator the scanner recognizes.
var operatorTable = []struct {
	literal string
	token   Token
}{
	{";", Semicolon},
	{",", Comma},
	{"?", QuestionMark},
	{":", Colon},
	{"||", LogicalOr},
	{"&&", LogicalAnd},
	{"|", Or},
	{"^", ExclusiveOr},
	{"&", And},
	{"===", StrictEqual},
	{"==", Equal},
	{"=", Assign},
	{"!==", StrictNotEqual},
	{"!=", NotEqual},
	{"<<", ShiftLeft},
	{"<=", LessOrEqual},
	{"<", Less},
	{">>>", UnsignedShiftRight},
	{">>", ShiftRight},
	{">=", GreaterOrEqual},
	{">", Greater},
	{"++", Increment},
	{"--", Decrement},
	{"+", Plus},
	{"-", Minus},
	{"*", Multiply},
	{"/", Slash},
	{"%", Remainder},
	{"!", Not},
	{"~", BitwiseNot},
	{".", Period},
	{"[", LeftBracket},
	{"]", RightBracket},
	{"{", LeftBrace},
	{"}", RightBrace},
	{"(", LeftParenthesis},
	{")", RightParenthesis},
}

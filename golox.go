package golox

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token.
type TokType int

// Token categories of Lox.
const (
	EOF TokType = iota
	// single-character tokens
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	// one or two character tokens
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual
	// literals
	Identifier
	String
	Number
	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

var tokTypeNames = [...]string{
	"EOF", "(", ")", "{", "}", ",", ".", "-", "+", ";", "/", "*",
	"!", "!=", "=", "==", ">", ">=", "<", "<=",
	"Identifier", "String", "Number",
	"and", "class", "else", "false", "fun", "for", "if", "nil", "or",
	"print", "return", "super", "this", "true", "var", "while",
}

func (tt TokType) String() string {
	if tt < 0 || int(tt) >= len(tokTypeNames) {
		return fmt.Sprintf("TokType(%d)", int(tt))
	}
	return tokTypeNames[tt]
}

// Keywords maps reserved words to their token category.
var Keywords = map[string]TokType{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// TokenID is a unique identity of a token. Two tokens with equal lexemes
// at different source positions have different IDs.
type TokenID uint64

// Token represents an input token. Tokens are produced by the scanner and
// are never modified afterwards.
//
// An example would be a token for a number:
//
//    Kind    = Number      // category
//    Lexeme  = "3.1416"    // lexeme as it appeared in the input
//    Literal = 3.1416      // a float64 value
//    Line    = 7           // source line
//    Span    = 67…73       // byte offsets in the input
//
type Token struct {
	Kind    TokType
	Lexeme  string
	Literal interface{} // float64 for numbers, string for strings, nil otherwise
	Line    int
	ID      TokenID
	Span    Span
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("<%s %q %v @%d>", t.Kind, t.Lexeme, t.Literal, t.Line)
	}
	return fmt.Sprintf("<%s %q @%d>", t.Kind, t.Lexeme, t.Line)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

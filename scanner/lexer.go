package scanner

import (
	"strings"
	"sync"

	"github.com/npillmayer/golox"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Pseudo token types which never leave the scanner.
const (
	tokKeywordOrIdent = -1 - iota
	tokUnterminated
)

// The tokens representing literal one- and two-char lexemes
var literals = []struct {
	lexeme string
	kind   golox.TokType
}{
	{"(", golox.LeftParen}, {")", golox.RightParen},
	{"{", golox.LeftBrace}, {"}", golox.RightBrace},
	{",", golox.Comma}, {".", golox.Dot}, {"-", golox.Minus},
	{"+", golox.Plus}, {";", golox.Semicolon}, {"/", golox.Slash},
	{"*", golox.Star},
	{"!", golox.Bang}, {"!=", golox.BangEqual},
	{"=", golox.Equal}, {"==", golox.EqualEqual},
	{">", golox.Greater}, {">=", golox.GreaterEqual},
	{"<", golox.Less}, {"<=", golox.LessEqual},
}

var (
	initOnce sync.Once // monitors one-time compilation of the DFA
	lexer    *lexmachine.Lexer
	lexerErr error
)

// loxLexer returns the compiled lexer, shared by all scans.
func loxLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`//[^\n]*`), skip) // skip comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`\"[^"]*\"`), makeToken(int(golox.String)))
		lexer.Add([]byte(`\"[^"]*`), makeToken(tokUnterminated))
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(int(golox.Number)))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(tokKeywordOrIdent))
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit.lexeme, ""), "\\")
			lexer.Add([]byte(r), makeToken(int(lit.kind)))
		}
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a lexmachine token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

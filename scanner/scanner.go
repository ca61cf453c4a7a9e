package scanner

import (
	"sort"
	"strconv"
	"sync/atomic"
	"unicode/utf8"

	"github.com/npillmayer/golox"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// serial hands out token IDs. IDs are unique across scans, which lets a
// long-lived interpreter keep binding distances of earlier REPL lines.
var serial uint64

func nextID() golox.TokenID {
	return golox.TokenID(atomic.AddUint64(&serial, 1))
}

// Scanner tokenizes a single source text.
type Scanner struct {
	source   []byte
	newlines []int // offsets of '\n' in source
	Error    func(error)
	errors   golox.Errors
}

// New creates a scanner for a source text.
func New(source string) *Scanner {
	sc := &Scanner{source: []byte(source), Error: logError}
	for i, b := range sc.source {
		if b == '\n' {
			sc.newlines = append(sc.newlines, i)
		}
	}
	return sc
}

// SetErrorHandler sets an error handler for the scanner. Every diagnostic
// is passed to it as a *golox.Error.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		sc.Error = logError
		return
	}
	sc.Error = h
}

// Scan converts the source into a token sequence, terminated by an EOF token.
// Scanning never stops at a diagnostic. If any diagnostics have been reported,
// Scan returns them as golox.Errors together with the tokens it could build.
func (sc *Scanner) Scan() ([]golox.Token, error) {
	lx, err := loxLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner(sc.source)
	if err != nil {
		return nil, err
	}
	var tokens []golox.Token
	tok, err, eof := s.Next()
	for !eof {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				sc.unexpected(s, ui.StartTC)
			} else {
				return tokens, err
			}
		} else if t, ok := sc.convert(tok.(*lexmachine.Token)); ok {
			tracer().Debugf("token %v", t)
			tokens = append(tokens, t)
		}
		tok, err, eof = s.Next()
	}
	tokens = append(tokens, golox.Token{
		Kind: golox.EOF,
		Line: len(sc.newlines) + 1,
		ID:   nextID(),
		Span: golox.Span{uint64(len(sc.source)), uint64(len(sc.source))},
	})
	tracer().Infof("scanned %d tokens", len(tokens))
	return tokens, sc.errors.Err()
}

// unexpected reports a character no pattern matches and skips it.
func (sc *Scanner) unexpected(s *lexmachine.Scanner, at int) {
	_, width := utf8.DecodeRune(sc.source[at:])
	if width < 1 {
		width = 1
	}
	sc.report(golox.NewError(golox.ScanError, sc.lineAt(at), "Unexpected character."))
	s.TC = at + width
}

func (sc *Scanner) convert(lt *lexmachine.Token) (golox.Token, bool) {
	lexeme := string(lt.Lexeme)
	end := lt.TC + len(lt.Lexeme)
	t := golox.Token{
		Kind:   golox.TokType(lt.Type),
		Lexeme: lexeme,
		Line:   sc.lineAt(end - 1),
		Span:   golox.Span{uint64(lt.TC), uint64(end)},
	}
	switch lt.Type {
	case tokUnterminated:
		sc.report(golox.NewError(golox.ScanError, len(sc.newlines)+1, "Unterminated string."))
		return t, false
	case tokKeywordOrIdent:
		t.Kind = golox.Identifier
		if kw, ok := golox.Keywords[lexeme]; ok {
			t.Kind = kw
		}
	case int(golox.String):
		t.Literal = lexeme[1 : len(lexeme)-1]
	case int(golox.Number):
		n, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			sc.report(golox.NewError(golox.ScanError, t.Line, "Invalid number."))
			return t, false
		}
		t.Literal = n
	}
	t.ID = nextID()
	return t, true
}

// lineAt returns the 1-based line of a byte offset.
func (sc *Scanner) lineAt(offset int) int {
	return sort.SearchInts(sc.newlines, offset) + 1
}

func (sc *Scanner) report(err *golox.Error) {
	sc.errors = append(sc.errors, err)
	sc.Error(err)
}

func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Scan is a shortcut to tokenize a source text, reporting diagnostics to h
// (which may be nil).
func Scan(source string, h func(error)) ([]golox.Token, error) {
	sc := New(source)
	sc.SetErrorHandler(h)
	return sc.Scan()
}

package scanner

import (
	"fmt"

	"github.com/npillmayer/bnfgram"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a right-hand side
// scanner. In addition to the rules of SpaceTokenizer, it recognizes quoted
// symbols:
//
//    "a b"   ⇒  symbol named a b
//    "|"     ⇒  symbol named |
//    \"      ⇒  symbol named "
//
// Quotes are removed from symbol names. An empty pair of quotes is skipped.
// Unquoted symbols may not start with '"' or '\'; a lone '"' or '\' which
// does not start one of the forms above is a symbol of its own:
//
//    \"x     ⇒  symbols " and x
//    "abc    ⇒  symbols " and abc
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter for quoted symbols.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter() (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte(`\\"`), MakeToken(Symbol, unescapeQuote))
	adapter.Lexer.Add([]byte(`"[^"]*"`), MakeToken(Symbol, unquote))
	adapter.Lexer.Add([]byte(`\|`), MakeToken(Bar, identity))
	adapter.Lexer.Add([]byte(`[^ |\\"][^ |]*`), MakeToken(Symbol, identity))
	adapter.Lexer.Add([]byte(`\\`), MakeToken(Symbol, identity))
	adapter.Lexer.Add([]byte(`"`), MakeToken(Symbol, identity))
	adapter.Lexer.Add([]byte(` +`), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// Tokenizer creates a scanner for a right-hand side and matches Factory.
// If no scanner can be created, the error is reported and the returned tokenizer
// produces EOF only.
func (lm *LMAdapter) Tokenizer(rhs string) Tokenizer {
	lms, err := lm.Scanner(rhs)
	if err != nil {
		logError(fmt.Errorf("cannot create lexmachine scanner: %w", err))
	}
	return lms
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface. Input the lexer cannot match is reported to an error
// handler and skipped.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() bnfgram.Token {
	if lms.scanner == nil {
		return MakeDefaultToken(EOF, "", bnfgram.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		pos := uint64(lms.scanner.TC)
		return MakeDefaultToken(EOF, "", bnfgram.Span{pos, pos})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return MakeDefaultToken(
		bnfgram.TokType(token.Type),
		token.Value.(string),
		bnfgram.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
// The token's value is the match, converted by name. If name returns an empty
// string, the match is skipped.
func MakeToken(typ bnfgram.TokType, name func(string) string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		n := name(string(m.Bytes))
		if n == "" {
			return nil, nil
		}
		return s.Token(int(typ), n, m), nil
	}
}

func identity(lexeme string) string {
	return lexeme
}

func unquote(lexeme string) string {
	return lexeme[1 : len(lexeme)-1]
}

func unescapeQuote(string) string {
	return `"`
}

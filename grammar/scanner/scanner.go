/*
Package scanner splits the right-hand side of a production rule into tokens.

Two scanner implementations are provided: (1) SpaceTokenizer, which implements the
canonical scanning rule, where symbols are separated by spaces and alternatives by
'|', and (2) an adapter for lexmachine, which additionally understands quoted symbols.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/bnfgram"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bnfgram.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("bnfgram.scanner")
}

// Token types produced by the scanners of this package.
const (
	EOF    bnfgram.TokType = -1 // end of right-hand side
	Symbol bnfgram.TokType = 1  // a grammar symbol, lexeme is its name
	Bar    bnfgram.TokType = 2  // '|', closes the current alternative
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() bnfgram.Token
}

// Factory creates a tokenizer for a right-hand side.
type Factory func(rhs string) Tokenizer

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the space tokenizer
// as well as the LexMachine scanner.
type DefaultToken struct {
	kind   bnfgram.TokType
	lexeme string
	span   bnfgram.Span
}

func MakeDefaultToken(typ bnfgram.TokType, lexeme string, span bnfgram.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() bnfgram.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() bnfgram.Span {
	return t.span
}

// --- Space tokenizer -------------------------------------------------------

// SpaceTokenizer scans a right-hand side one character at a time. A space
// closes the current symbol, a '|' closes the current symbol and is then
// reported as a Bar token. Every other character belongs to a symbol.
// Empty symbols (consecutive separators) are never reported.
//
// Only the space character ' ' separates symbols; tabs are part of a symbol name.
// Every input is valid, so there is no error handler.
type SpaceTokenizer struct {
	input string
	pos   int
}

var _ Tokenizer = (*SpaceTokenizer)(nil)

// Spaces creates a space tokenizer for a right-hand side. Its signature
// matches Factory.
func Spaces(rhs string) Tokenizer {
	return &SpaceTokenizer{input: rhs}
}

// NextToken is part of the Tokenizer interface.
func (t *SpaceTokenizer) NextToken() bnfgram.Token {
	start := t.pos
	for t.pos < len(t.input) {
		switch t.input[t.pos] {
		case ' ':
			if t.pos > start {
				tok := t.symbol(start, t.pos)
				t.pos++
				return tok
			}
			t.pos++
			start = t.pos
		case '|':
			if t.pos > start { // report the bar with the next call
				return t.symbol(start, t.pos)
			}
			t.pos++
			return MakeDefaultToken(Bar, "|", bnfgram.Span{uint64(start), uint64(t.pos)})
		default:
			t.pos++
		}
	}
	if t.pos > start {
		return t.symbol(start, t.pos)
	}
	return MakeDefaultToken(EOF, "", bnfgram.Span{uint64(t.pos), uint64(t.pos)})
}

func (t *SpaceTokenizer) symbol(from, to int) DefaultToken {
	return MakeDefaultToken(Symbol, t.input[from:to], bnfgram.Span{uint64(from), uint64(to)})
}

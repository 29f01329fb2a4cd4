package bnfgram

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Tokens represent input tokens of a right-hand side. They are produced by a
// scanner and reflect either grammar symbols or structural markers, like the
// '|' separating alternatives.
//
// An example would be a token for a symbol:
//
//    TokType = Symbol      // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "Expr"      // name of the symbol, with quotes removed
//    Span    = 4…8         // occured from position 4 in the right-hand side
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. Scanners use it
// for byte positions within a right-hand side, the rule parser uses it for the
// source lines a rule has been read from. A span denotes a start position and the
// position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the first position of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the position just behind a span.
func (s Span) To() uint64 {
	return s[1]
}

// IsNull is true for the zero span, which scanners and parsers use for
// "no position known".
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

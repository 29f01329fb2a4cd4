/*
Package grammar implements the in-memory representation of a grammar, built
from BNF-like rule descriptions.

Symbols

Symbols are kept in a symbol table, keyed by name. Every symbol carries an ID of
type SymID. The sign of an ID encodes the kind of symbol:

    id >= 1   terminal
    id <= -1  non-terminal
    id == 0   no symbol

IDs are allocated from two counters owned by the symbol table. The k-th terminal
allocation receives ID k, the k-th non-terminal allocation receives ID -k.
Counters never move backwards, therefore an ID is never handed out twice.

Building a Grammar

Rules are added line by line, with the left-hand side and the right-hand side of a
rule given as strings. Symbols of the right-hand side are separated by spaces,
alternatives are separated by '|':

    g := grammar.New("G")
    g.AddProduction("S", "a S b | eps")   // S   ->  a S b | eps
    g.AddProduction("eps", "")            // eps ->

A symbol first seen on a right-hand side is registered as a terminal. As soon as it
appears on a left-hand side, it is re-classified as a non-terminal: it receives a
fresh non-terminal ID and every alternative referencing the old terminal ID is
rewritten. For the example above this results in

   g.Dump()

    -1: [S] ::= [a S b]
    -1: [S] ::= [eps]
    -2: [eps] ::= []

Adding a rule for a left-hand side which already has rules replaces the existing
alternatives.

The Axiom

The axiom of a grammar is the first non-terminal ever declared, i.e. the one with
ID -1, unless it has been set explicitly with SetAxiom. A grammar without any
non-terminal has no axiom; AxiomName will return ErrUndefinedAxiom.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bnfgram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("bnfgram.grammar")
}

/*
Package rules reads grammar descriptions, one production rule per line.

Every line consists of a left-hand side and a right-hand side, separated by a
delimiter (default "->"):

    Expr   -> Expr SumOp Term | Term
    SumOp  -> + | -

The first occurence of the delimiter splits a line. Spaces are removed from the
left-hand side; the right-hand side is handed to the grammar, which splits it into
symbols and alternatives. Lines are never rejected: a line without a delimiter is
taken as a left-hand side with an empty right-hand side, and a line with an empty
left-hand side is skipped.

    g := rules.Parse(text, rules.Delimiter("::="))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bnfgram.rules'.
func tracer() tracing.Trace {
	return tracing.Select("bnfgram.rules")
}

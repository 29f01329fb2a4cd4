/*
Package bnfc/main provides a command line tool to load grammar descriptions
and inspect the resulting grammar.

    bnfc [flags] [grammar-file]

If no grammar file is given, bnfc prompts for a file path and for the delimiter
used in the file. After loading, bnfc prints axiom, non-terminals, terminals and
rules. With flag --interactive it then accepts queries:

    axiom             print the axiom
    nt   <name>       ID of a non-terminal
    t    <name>       ID of a terminal
    rules <name>      alternatives of a non-terminal
    symbols           all symbols, sorted by name
    hash              fingerprint of the grammar
    quit              leave

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bnfgram.cli'
func tracer() tracing.Trace {
	return tracing.Select("bnfgram.cli")
}
